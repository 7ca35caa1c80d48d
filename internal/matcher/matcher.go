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

// Package matcher evaluates a single chest report against a clan's rule
// collections: corrections normalize field values, validation rules flag the
// record, and scoring rules assign a score via a first-match-wins scan.
package matcher

import (
	"sort"
	"strconv"
	"strings"

	correctionModel "github.com/wso2/clan-chest-service/internal/correction_rules/model"
	scoringModel "github.com/wso2/clan-chest-service/internal/scoring_rules/model"
	validationModel "github.com/wso2/clan-chest-service/internal/validation_rules/model"
)

// Report is the matcher's view of one incoming chest report.
type Report struct {
	Player string
	Chest  string
	Source string
	Clan   string
	Level  *int
}

// Result is the outcome of evaluating one report.
type Result struct {
	IsValid         bool
	CorrectedFields map[string]string
	Score           *int
}

// Evaluate runs corrections, then validation on the corrected values, then
// scoring. The input report is not modified.
func Evaluate(report Report, validationRules []validationModel.ValidationRule,
	correctionRules []correctionModel.CorrectionRule, scoringRules []scoringModel.ScoringRule) Result {

	corrected := Correct(report, correctionRules)

	applied := report
	if v, ok := corrected["player"]; ok {
		applied.Player = v
	}
	if v, ok := corrected["chest"]; ok {
		applied.Chest = v
	}
	if v, ok := corrected["source"]; ok {
		applied.Source = v
	}
	if v, ok := corrected["clan"]; ok {
		applied.Clan = v
	}

	return Result{
		IsValid:         Validate(applied, validationRules),
		CorrectedFields: corrected,
		Score:           Score(applied, scoringRules),
	}
}

// Correct returns the fields whose values were rewritten by an active
// correction rule. At most one replacement is applied per field; the first
// matching rule in load order wins.
func Correct(report Report, rules []correctionModel.CorrectionRule) map[string]string {

	corrected := make(map[string]string)
	for field, value := range reportFields(report) {
		for _, rule := range rules {
			if rule.Status != "active" || rule.Field != field {
				continue
			}
			if strings.EqualFold(rule.MatchValue, value) {
				corrected[field] = rule.ReplacementValue
				break
			}
		}
	}
	return corrected
}

// Validate checks each field against the validation rules recorded for it.
// A field with zero rules is always valid; with rules present, the value must
// match a rule with status "valid". A match on an "invalid" rule, or no match
// at all, flags the record.
func Validate(report Report, rules []validationModel.ValidationRule) bool {

	for field, value := range reportFields(report) {
		hasRules := false
		valid := false
		for _, rule := range rules {
			if rule.Field != field {
				continue
			}
			hasRules = true
			if strings.EqualFold(rule.MatchValue, value) {
				valid = rule.Status == "valid"
				break
			}
		}
		if hasRules && !valid {
			return false
		}
	}
	return true
}

// Score scans scoring rules in ascending rule order and returns the score of
// the first matching rule, or nil when no rule matches.
func Score(report Report, rules []scoringModel.ScoringRule) *int {

	ordered := make([]scoringModel.ScoringRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RuleOrder < ordered[j].RuleOrder
	})

	for _, rule := range ordered {
		if !PatternMatches(rule.ChestMatch, report.Chest) {
			continue
		}
		if !PatternMatches(rule.SourceMatch, report.Source) {
			continue
		}
		if !levelInBounds(report.Level, rule.MinLevel, rule.MaxLevel) {
			continue
		}
		score := rule.Score
		return &score
	}
	return nil
}

// PatternMatches reports whether a value satisfies a rule pattern. An empty
// pattern matches everything; '*' wildcards match any run of characters;
// everything else is a case-insensitive exact match.
func PatternMatches(pattern, value string) bool {

	if pattern == "" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return strings.EqualFold(pattern, value)
	}

	p := strings.ToLower(pattern)
	v := strings.ToLower(value)

	segments := strings.Split(p, "*")
	if !strings.HasPrefix(v, segments[0]) {
		return false
	}
	v = v[len(segments[0]):]

	last := segments[len(segments)-1]
	for _, segment := range segments[1 : len(segments)-1] {
		if segment == "" {
			continue
		}
		idx := strings.Index(v, segment)
		if idx < 0 {
			return false
		}
		v = v[idx+len(segment):]
	}

	return strings.HasSuffix(v, last)
}

// ParseLevel parses a free-text level value. Malformed or empty values are
// treated as "no level", which matches any bounds.
func ParseLevel(raw string) *int {

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	level, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &level
}

// levelInBounds treats a nil bound as unbounded on that side and a nil level
// as matching any bounds.
func levelInBounds(level, minLevel, maxLevel *int) bool {

	if level == nil {
		return true
	}
	if minLevel != nil && *level < *minLevel {
		return false
	}
	if maxLevel != nil && *level > *maxLevel {
		return false
	}
	return true
}

func reportFields(report Report) map[string]string {

	return map[string]string{
		"player": report.Player,
		"chest":  report.Chest,
		"source": report.Source,
		"clan":   report.Clan,
	}
}
