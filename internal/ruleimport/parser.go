/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

// Package ruleimport parses uploaded rule files, reconciles them against the
// persisted rule set, and applies them in append or replace mode. Parse
// errors are collected per line and never abort the whole import.
package ruleimport

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wso2/clan-chest-service/internal/system/constants"
)

// RuleType selects the parsing contract for an import file.
type RuleType string

const (
	ValidationRules RuleType = "validation"
	CorrectionRules RuleType = "correction"
)

// Entry is one parsed rule row, not yet persisted.
type Entry struct {
	Field            string `json:"field"`
	MatchValue       string `json:"match_value"`
	ReplacementValue string `json:"replacement_value,omitempty"`
	Status           string `json:"status"`
}

// Key is the case-insensitive natural key used for deduplication.
func (e Entry) Key() string {
	return strings.ToLower(e.Field) + "|" + strings.ToLower(e.MatchValue)
}

// ParseError is one rejected input line.
type ParseError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (e ParseError) String() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseResult carries the entries, per-line errors and running counts of one
// parse pass. All three channels are populated in a single pass.
type ParseResult struct {
	Entries    []Entry      `json:"entries"`
	Errors     []ParseError `json:"errors"`
	Lines      int          `json:"lines"`
	Skipped    int          `json:"skipped"`
	Duplicates int          `json:"duplicates"`
}

// headerTokens are first tokens that mark a line as a header row.
var headerTokens = map[string]bool{
	"value":       true,
	"match":       true,
	"match_value": true,
}

// Parse reads a newline-delimited rule file. Fields are separated by ';' or
// ','; there is no quoting or escaping support. An optional header row is
// auto-detected by its first token. Lines that cannot be parsed yield a
// line-indexed error and are skipped; within-batch duplicates are silently
// dropped, keeping the first occurrence.
func Parse(ruleType RuleType, defaultField string, r io.Reader) ParseResult {

	result := ParseResult{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.Lines++

		tokens := splitLine(line)
		if lineNo == 1 && len(tokens) > 0 && headerTokens[strings.ToLower(tokens[0])] {
			result.Lines--
			continue
		}

		entry, err := parseEntry(ruleType, defaultField, tokens)
		if err != nil {
			result.Errors = append(result.Errors, ParseError{Line: lineNo, Message: err.Error()})
			result.Skipped++
			continue
		}

		if seen[entry.Key()] {
			result.Duplicates++
			continue
		}
		seen[entry.Key()] = true
		result.Entries = append(result.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		result.Errors = append(result.Errors, ParseError{Line: lineNo + 1, Message: fmt.Sprintf("read error: %v", err)})
	}

	return result
}

// splitLine splits on ';' when present, otherwise on ','. The format has no
// quoting support; this is a documented limitation of the file format, not an
// oversight.
func splitLine(line string) []string {

	sep := ","
	if strings.Contains(line, ";") {
		sep = ";"
	}
	parts := strings.Split(line, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseEntry(ruleType RuleType, defaultField string, tokens []string) (Entry, error) {

	switch ruleType {
	case ValidationRules:
		return parseValidationEntry(defaultField, tokens)
	case CorrectionRules:
		return parseCorrectionEntry(defaultField, tokens)
	default:
		return Entry{}, fmt.Errorf("unsupported rule type %q", ruleType)
	}
}

// parseValidationEntry expects: value[,status]
func parseValidationEntry(defaultField string, tokens []string) (Entry, error) {

	if len(tokens) == 0 || tokens[0] == "" {
		return Entry{}, fmt.Errorf("missing value")
	}

	entry := Entry{
		Field:      defaultField,
		MatchValue: tokens[0],
		Status:     constants.StatusValid,
	}

	if len(tokens) > 1 && tokens[1] != "" {
		status := strings.ToLower(tokens[1])
		if !constants.AllowedValidationStatuses[status] {
			return Entry{}, fmt.Errorf("unknown status %q", tokens[1])
		}
		entry.Status = status
	}

	return entry, nil
}

// parseCorrectionEntry expects: match,replacement[,field][,status]
func parseCorrectionEntry(defaultField string, tokens []string) (Entry, error) {

	if len(tokens) < 2 || tokens[0] == "" || tokens[1] == "" {
		return Entry{}, fmt.Errorf("missing match or replacement value")
	}

	entry := Entry{
		Field:            defaultField,
		MatchValue:       tokens[0],
		ReplacementValue: tokens[1],
		Status:           constants.StatusActive,
	}

	if len(tokens) > 2 && tokens[2] != "" {
		field := strings.ToLower(tokens[2])
		if !constants.AllowedRuleFields[field] {
			return Entry{}, fmt.Errorf("unknown field %q", tokens[2])
		}
		entry.Field = field
	}

	if len(tokens) > 3 && tokens[3] != "" {
		status := strings.ToLower(tokens[3])
		if !constants.AllowedCorrectionStatuses[status] {
			return Entry{}, fmt.Errorf("unknown status %q", tokens[3])
		}
		entry.Status = status
	}

	return entry, nil
}
