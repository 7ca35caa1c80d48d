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
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/clan-chest-service/internal/system/constants"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
)

// fakeApplier records calls and can be primed with persisted entries or a
// failure.
type fakeApplier struct {
	existing  []Entry
	inserted  []Entry
	deleted   bool
	insertErr error
	deleteErr error
}

func (f *fakeApplier) Existing(clanId, field string) ([]Entry, error) {
	return f.existing, nil
}

func (f *fakeApplier) DeleteField(clanId, field string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

func (f *fakeApplier) Insert(clanId string, entries []Entry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, entries...)
	return nil
}

func parsedPipeline(t *testing.T, input string) *Pipeline {
	t.Helper()

	p := NewPipeline(ValidationRules, "clan-1", constants.FieldChest)
	p.ChooseFile("rules.csv")
	result := p.Parse(strings.NewReader(input))
	require.NotEmpty(t, result.Entries)
	return p
}

func appendOpts(ignoreDuplicates bool) Options {
	return Options{
		ClanId:           "clan-1",
		Field:            constants.FieldChest,
		Mode:             constants.ImportModeAppend,
		IgnoreDuplicates: ignoreDuplicates,
	}
}

// ---------------------------------------------------------------------------
// Append mode
// ---------------------------------------------------------------------------

func TestApply_AppendInsertsAllEntries(t *testing.T) {

	p := parsedPipeline(t, "Golden Chest\nSilver Chest\n")
	applier := &fakeApplier{}

	summary, err := p.Apply(applier, appendOpts(false))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, Idle, p.State(), "successful apply clears the pipeline")
	assert.Empty(t, p.FileName())
}

func TestApply_AppendSkipsPersistedDuplicates(t *testing.T) {

	// "foo" already exists as "Foo"; the persisted-state dedup pass is
	// case-insensitive, so nothing survives.
	p := parsedPipeline(t, "foo\n")
	applier := &fakeApplier{
		existing: []Entry{{Field: "chest", MatchValue: "Foo", Status: "valid"}},
	}

	summary, err := p.Apply(applier, appendOpts(true))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Inserted)
	assert.Equal(t, 1, summary.SkippedExisting)
	assert.Empty(t, applier.inserted)
}

func TestApply_AppendWithoutIgnoreInsertsDuplicates(t *testing.T) {

	p := parsedPipeline(t, "foo\n")
	applier := &fakeApplier{
		existing: []Entry{{Field: "chest", MatchValue: "Foo", Status: "valid"}},
	}

	summary, err := p.Apply(applier, appendOpts(false))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
}

// ---------------------------------------------------------------------------
// Replace mode and the confirmation gate
// ---------------------------------------------------------------------------

func replaceOpts() Options {
	return Options{
		ClanId: "clan-1",
		Field:  constants.FieldChest,
		Mode:   constants.ImportModeReplace,
	}
}

func TestApply_ReplaceBlockedWithoutConfirmation(t *testing.T) {

	p := parsedPipeline(t, "Golden Chest\n")
	applier := &fakeApplier{}

	_, err := p.Apply(applier, replaceOpts())
	require.Error(t, err)
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrConfirmationRequired.Code, clientErr.Code)
	assert.False(t, applier.deleted, "nothing is deleted before confirmation")
	assert.Equal(t, Parsed, p.State())
}

func TestApply_ReplaceRunsAfterFullConfirmationFlow(t *testing.T) {

	p := parsedPipeline(t, "Golden Chest\n")
	applier := &fakeApplier{}

	p.Confirmation().Open()
	require.NoError(t, p.Confirmation().Proceed())
	require.NoError(t, p.Confirmation().SubmitPhrase(constants.ReplaceConfirmationPhrase))

	summary, err := p.Apply(applier, replaceOpts())
	require.NoError(t, err)
	assert.True(t, applier.deleted)
	assert.Equal(t, 1, summary.Inserted)
}

func TestConfirmation_WrongPhraseBlocksAndAllowsRetry(t *testing.T) {

	c := NewConfirmation(constants.ReplaceConfirmationPhrase)
	c.Open()
	require.NoError(t, c.Proceed())

	err := c.SubmitPhrase("replace")
	require.Error(t, err)
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrConfirmationPhrase.Code, clientErr.Code)
	assert.Equal(t, AwaitingPhrase, c.State(), "gate stays open for a retry")
	assert.False(t, c.Confirmed())

	require.NoError(t, c.SubmitPhrase(constants.ReplaceConfirmationPhrase))
	assert.True(t, c.Confirmed())
}

func TestConfirmation_CannotSkipSteps(t *testing.T) {

	c := NewConfirmation(constants.ReplaceConfirmationPhrase)
	assert.Error(t, c.SubmitPhrase(constants.ReplaceConfirmationPhrase))
	assert.Error(t, c.Proceed())

	c.Open()
	assert.Error(t, c.SubmitPhrase(constants.ReplaceConfirmationPhrase), "phrase before proceed is rejected")
}

func TestConfirmation_ReopenResetsPriorConfirmation(t *testing.T) {

	c := NewConfirmation(constants.ReplaceConfirmationPhrase)
	c.Open()
	require.NoError(t, c.Proceed())
	require.NoError(t, c.SubmitPhrase(constants.ReplaceConfirmationPhrase))
	require.True(t, c.Confirmed())

	c.Open()
	assert.False(t, c.Confirmed())
}

// ---------------------------------------------------------------------------
// Failure handling
// ---------------------------------------------------------------------------

func TestApply_StoreErrorSurfacesVerbatimAndKeepsState(t *testing.T) {

	p := parsedPipeline(t, "Golden Chest\n")
	storeErr := fmt.Errorf("insert failed: connection reset")
	applier := &fakeApplier{insertErr: storeErr}

	_, err := p.Apply(applier, appendOpts(false))
	require.ErrorIs(t, err, storeErr)
	assert.Equal(t, Parsed, p.State(), "a failed apply can be retried")
	assert.Equal(t, "rules.csv", p.FileName())
}

func TestApply_DeleteErrorAbortsBeforeInsert(t *testing.T) {

	p := parsedPipeline(t, "Golden Chest\n")
	storeErr := fmt.Errorf("delete failed")
	applier := &fakeApplier{deleteErr: storeErr}

	p.Confirmation().Open()
	require.NoError(t, p.Confirmation().Proceed())
	require.NoError(t, p.Confirmation().SubmitPhrase(constants.ReplaceConfirmationPhrase))

	_, err := p.Apply(applier, replaceOpts())
	require.ErrorIs(t, err, storeErr)
	assert.Empty(t, applier.inserted)
	assert.Equal(t, Parsed, p.State())
}

func TestApply_InvalidMode(t *testing.T) {

	p := parsedPipeline(t, "Golden Chest\n")

	_, err := p.Apply(&fakeApplier{}, Options{ClanId: "clan-1", Field: "chest", Mode: "merge"})
	require.Error(t, err)
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrInvalidImportMode.Code, clientErr.Code)
}

func TestApply_RequiresParsedState(t *testing.T) {

	p := NewPipeline(ValidationRules, "clan-1", constants.FieldChest)

	_, err := p.Apply(&fakeApplier{}, appendOpts(false))
	require.Error(t, err)
	assert.Equal(t, Idle, p.State())
}

// ---------------------------------------------------------------------------
// Scope binding
// ---------------------------------------------------------------------------

func TestApply_RejectsMismatchedField(t *testing.T) {

	// Parsed for chest; applying against source must not touch the store.
	p := parsedPipeline(t, "Golden Chest\n")
	applier := &fakeApplier{}

	p.Confirmation().Open()
	require.NoError(t, p.Confirmation().Proceed())
	require.NoError(t, p.Confirmation().SubmitPhrase(constants.ReplaceConfirmationPhrase))

	_, err := p.Apply(applier, Options{
		ClanId: "clan-1",
		Field:  constants.FieldSource,
		Mode:   constants.ImportModeReplace,
	})
	require.Error(t, err)
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrImportScopeMismatch.Code, clientErr.Code)
	assert.False(t, applier.deleted)
	assert.Empty(t, applier.inserted)
	assert.Equal(t, Parsed, p.State())
}

func TestApply_RejectsMismatchedClan(t *testing.T) {

	p := parsedPipeline(t, "Golden Chest\n")
	applier := &fakeApplier{}

	_, err := p.Apply(applier, Options{
		ClanId: "clan-2",
		Field:  constants.FieldChest,
		Mode:   constants.ImportModeAppend,
	})
	require.Error(t, err)
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrImportScopeMismatch.Code, clientErr.Code)
	assert.Empty(t, applier.inserted)
}

func TestPipeline_ConfirmationsAreIndependentPerPipeline(t *testing.T) {

	// Completing one import's confirmation must not unlock another's replace.
	confirmed := parsedPipeline(t, "Golden Chest\n")
	confirmed.Confirmation().Open()
	require.NoError(t, confirmed.Confirmation().Proceed())
	require.NoError(t, confirmed.Confirmation().SubmitPhrase(constants.ReplaceConfirmationPhrase))

	other := NewPipeline(ValidationRules, "clan-2", constants.FieldChest)
	other.ChooseFile("other.csv")
	other.Parse(strings.NewReader("Silver Chest\n"))

	applier := &fakeApplier{}
	_, err := other.Apply(applier, Options{
		ClanId: "clan-2",
		Field:  constants.FieldChest,
		Mode:   constants.ImportModeReplace,
	})
	require.Error(t, err)
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrConfirmationRequired.Code, clientErr.Code)
	assert.False(t, applier.deleted)
}

func TestPipeline_ConcurrentParsesAreSafe(t *testing.T) {

	p := NewPipeline(ValidationRules, "clan-1", constants.FieldChest)
	p.ChooseFile("rules.csv")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Parse(strings.NewReader("Golden Chest\nSilver Chest\n"))
		}()
	}
	wg.Wait()

	assert.Equal(t, Parsed, p.State())
	assert.Len(t, p.Result().Entries, 2)
}
