/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package ruleimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/clan-chest-service/internal/system/constants"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

func TestMain(m *testing.M) {

	log.Init("ERROR")
	m.Run()
}

// ---------------------------------------------------------------------------
// Validation rule files
// ---------------------------------------------------------------------------

func TestParse_ValidationDefaults(t *testing.T) {

	result := Parse(ValidationRules, constants.FieldChest, strings.NewReader("Golden Chest\n"))

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "chest", result.Entries[0].Field)
	assert.Equal(t, "Golden Chest", result.Entries[0].MatchValue)
	assert.Equal(t, constants.StatusValid, result.Entries[0].Status)
}

func TestParse_ValidationWithStatus(t *testing.T) {

	result := Parse(ValidationRules, constants.FieldSource, strings.NewReader("Old Mine,invalid\n"))

	require.Len(t, result.Entries, 1)
	assert.Equal(t, constants.StatusInvalid, result.Entries[0].Status)
}

func TestParse_HeaderRowIsSkipped(t *testing.T) {

	input := "value,status\nGolden Chest,valid\n"
	result := Parse(ValidationRules, constants.FieldChest, strings.NewReader(input))

	require.Len(t, result.Entries, 1)
	assert.Equal(t, 1, result.Lines)
	assert.Equal(t, "Golden Chest", result.Entries[0].MatchValue)
}

func TestParse_HeaderOnlyOnFirstLine(t *testing.T) {

	// A row whose first token looks like a header past line 1 is data.
	input := "Golden Chest\nvalue\n"
	result := Parse(ValidationRules, constants.FieldChest, strings.NewReader(input))

	require.Len(t, result.Entries, 2)
}

func TestParse_SemicolonPreferredOverComma(t *testing.T) {

	// When a line carries both separators, ';' wins and ',' stays literal.
	input := "Chest, rare;valid\n"
	result := Parse(ValidationRules, constants.FieldChest, strings.NewReader(input))

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Chest, rare", result.Entries[0].MatchValue)
	assert.Equal(t, constants.StatusValid, result.Entries[0].Status)
}

func TestParse_ErrorsAreLineIndexedAndNonFatal(t *testing.T) {

	input := "Golden Chest\n,\nSilver Chest,bogus\nWooden Chest\n"
	result := Parse(ValidationRules, constants.FieldChest, strings.NewReader(input))

	require.Len(t, result.Entries, 2)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].Line)
	assert.Equal(t, 3, result.Errors[1].Line)
	assert.Contains(t, result.Errors[1].Message, "unknown status")
	assert.Equal(t, "line 3: unknown status \"bogus\"", result.Errors[1].String())
	assert.Equal(t, 2, result.Skipped)
}

func TestParse_BlankLinesIgnored(t *testing.T) {

	input := "\nGolden Chest\n\n\nSilver Chest\n"
	result := Parse(ValidationRules, constants.FieldChest, strings.NewReader(input))

	assert.Len(t, result.Entries, 2)
	assert.Equal(t, 2, result.Lines)
}

func TestParse_WithinFileDedup_KeepsFirst(t *testing.T) {

	input := "Foo,valid\nfoo,invalid\nBar,valid\n"
	result := Parse(ValidationRules, constants.FieldChest, strings.NewReader(input))

	require.Len(t, result.Entries, 2)
	assert.Equal(t, "Foo", result.Entries[0].MatchValue)
	assert.Equal(t, constants.StatusValid, result.Entries[0].Status, "first occurrence wins")
	assert.Equal(t, "Bar", result.Entries[1].MatchValue)
	assert.Equal(t, 1, result.Duplicates)
}

// ---------------------------------------------------------------------------
// Correction rule files
// ---------------------------------------------------------------------------

func TestParse_CorrectionDefaults(t *testing.T) {

	result := Parse(CorrectionRules, constants.FieldChest, strings.NewReader("Golden Chst;Golden Chest\n"))

	require.Len(t, result.Entries, 1)
	entry := result.Entries[0]
	assert.Equal(t, "Golden Chst", entry.MatchValue)
	assert.Equal(t, "Golden Chest", entry.ReplacementValue)
	assert.Equal(t, "chest", entry.Field)
	assert.Equal(t, constants.StatusActive, entry.Status)
}

func TestParse_CorrectionWithFieldAndStatus(t *testing.T) {

	result := Parse(CorrectionRules, constants.FieldChest,
		strings.NewReader("Mne;Mine;source;inactive\n"))

	require.Len(t, result.Entries, 1)
	entry := result.Entries[0]
	assert.Equal(t, "source", entry.Field)
	assert.Equal(t, constants.StatusInactive, entry.Status)
}

func TestParse_CorrectionMissingReplacement(t *testing.T) {

	result := Parse(CorrectionRules, constants.FieldChest, strings.NewReader("Golden Chst\n"))

	assert.Empty(t, result.Entries)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Line)
	assert.Contains(t, result.Errors[0].Message, "missing match or replacement")
}

func TestParse_CorrectionUnknownField(t *testing.T) {

	result := Parse(CorrectionRules, constants.FieldChest,
		strings.NewReader("Mne;Mine;score\n"))

	assert.Empty(t, result.Entries)
	assert.Len(t, result.Errors, 1)
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestExport_RoundTripsThroughParse(t *testing.T) {

	entries := []Entry{
		{Field: "chest", MatchValue: "Golden Chst", ReplacementValue: "Golden Chest", Status: "active"},
		{Field: "source", MatchValue: "Mne", ReplacementValue: "Mine", Status: "inactive"},
	}

	var buf strings.Builder
	require.NoError(t, Export(CorrectionRules, entries, &buf))

	result := Parse(CorrectionRules, constants.FieldChest, strings.NewReader(buf.String()))
	require.Empty(t, result.Errors)
	assert.Equal(t, entries, result.Entries)
}

func TestExport_ValidationHeader(t *testing.T) {

	var buf strings.Builder
	require.NoError(t, Export(ValidationRules, []Entry{{Field: "chest", MatchValue: "Golden Chest", Status: "valid"}}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "value,status", lines[0])
	assert.Equal(t, "Golden Chest,valid", lines[1])
}
