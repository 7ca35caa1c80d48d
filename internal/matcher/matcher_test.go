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

package matcher

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	correctionModel "github.com/wso2/clan-chest-service/internal/correction_rules/model"
	scoringModel "github.com/wso2/clan-chest-service/internal/scoring_rules/model"
	validationModel "github.com/wso2/clan-chest-service/internal/validation_rules/model"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func intPtr(v int) *int { return &v }

func scoringRule(order, score int, chest, source string, minLevel, maxLevel *int) scoringModel.ScoringRule {
	return scoringModel.ScoringRule{
		ChestMatch:  chest,
		SourceMatch: source,
		MinLevel:    minLevel,
		MaxLevel:    maxLevel,
		Score:       score,
		RuleOrder:   order,
	}
}

// ---------------------------------------------------------------------------
// Score
// ---------------------------------------------------------------------------

func TestScore_FirstMatchWins(t *testing.T) {
	rules := []scoringModel.ScoringRule{
		scoringRule(20, 500, "", "", nil, nil),
		scoringRule(10, 100, "Golden Chest", "", nil, nil),
	}
	report := Report{Chest: "Golden Chest", Source: "Crypt"}

	score := Score(report, rules)
	require.NotNil(t, score)
	assert.Equal(t, 100, *score, "lower rule_order must be tried first")
}

func TestScore_OverlappingRanges_OnlyFirstMatters(t *testing.T) {
	rules := []scoringModel.ScoringRule{
		scoringRule(1, 50, "", "", intPtr(1), intPtr(20)),
		scoringRule(2, 999, "", "", intPtr(1), intPtr(20)),
	}
	report := Report{Chest: "Any", Level: intPtr(10)}

	score := Score(report, rules)
	require.NotNil(t, score)
	assert.Equal(t, 50, *score)
}

func TestScore_NoMatch_ReturnsNil(t *testing.T) {
	rules := []scoringModel.ScoringRule{
		scoringRule(1, 100, "Golden Chest", "", nil, nil),
	}
	report := Report{Chest: "Wooden Chest"}

	assert.Nil(t, Score(report, rules))
}

func TestScore_OpenMinBound(t *testing.T) {
	rules := []scoringModel.ScoringRule{
		scoringRule(1, 100, "", "", nil, intPtr(30)),
	}

	assert.NotNil(t, Score(Report{Level: intPtr(1)}, rules))
	assert.NotNil(t, Score(Report{Level: intPtr(30)}, rules))
	assert.Nil(t, Score(Report{Level: intPtr(31)}, rules))
}

func TestScore_BothBoundsOpen_MatchesEveryLevel(t *testing.T) {
	rules := []scoringModel.ScoringRule{
		scoringRule(1, 100, "", "", nil, nil),
	}

	for _, level := range []int{1, 15, 45, 100} {
		assert.NotNil(t, Score(Report{Level: intPtr(level)}, rules))
	}
}

func TestScore_NilLevel_IsOpenMatch(t *testing.T) {
	rules := []scoringModel.ScoringRule{
		scoringRule(1, 100, "", "", intPtr(10), intPtr(20)),
	}

	score := Score(Report{}, rules)
	require.NotNil(t, score)
	assert.Equal(t, 100, *score)
}

func TestScore_WildcardChestMatch(t *testing.T) {
	rules := []scoringModel.ScoringRule{
		scoringRule(1, 250, "*Crypt*", "", nil, nil),
	}

	assert.NotNil(t, Score(Report{Chest: "Ancient Crypt Chest"}, rules))
	assert.Nil(t, Score(Report{Chest: "Wooden Chest"}, rules))
}

// ---------------------------------------------------------------------------
// PatternMatches
// ---------------------------------------------------------------------------

func TestPatternMatches_EmptyPattern(t *testing.T) {
	assert.True(t, PatternMatches("", "anything"))
}

func TestPatternMatches_ExactCaseInsensitive(t *testing.T) {
	assert.True(t, PatternMatches("Golden Chest", "golden chest"))
	assert.False(t, PatternMatches("Golden Chest", "Golden"))
}

func TestPatternMatches_PrefixWildcard(t *testing.T) {
	assert.True(t, PatternMatches("Golden*", "Golden Chest"))
	assert.False(t, PatternMatches("Golden*", "Old Golden"))
}

func TestPatternMatches_SuffixWildcard(t *testing.T) {
	assert.True(t, PatternMatches("*Chest", "Golden Chest"))
	assert.False(t, PatternMatches("*Chest", "Chest of Gold"))
}

func TestPatternMatches_Star_MatchesEverything(t *testing.T) {
	assert.True(t, PatternMatches("*", ""))
	assert.True(t, PatternMatches("*", "whatever"))
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestValidate_NoRulesForField_AlwaysValid(t *testing.T) {
	report := Report{Player: "Ragnar", Chest: "Unknown Chest", Source: "Nowhere", Clan: "TC"}

	assert.True(t, Validate(report, nil), "a field with zero rules is permissive")
}

func TestValidate_MatchingValidRule(t *testing.T) {
	rules := []validationModel.ValidationRule{
		{Field: "chest", MatchValue: "Golden Chest", Status: "valid"},
	}
	report := Report{Chest: "golden chest"}

	assert.True(t, Validate(report, rules))
}

func TestValidate_RulesExistButNoMatch_Invalid(t *testing.T) {
	rules := []validationModel.ValidationRule{
		{Field: "chest", MatchValue: "Golden Chest", Status: "valid"},
	}
	report := Report{Chest: "Wooden Chest"}

	assert.False(t, Validate(report, rules))
}

func TestValidate_MatchingInvalidRule(t *testing.T) {
	rules := []validationModel.ValidationRule{
		{Field: "player", MatchValue: "Cheater", Status: "invalid"},
	}
	report := Report{Player: "Cheater"}

	assert.False(t, Validate(report, rules))
}

func TestValidate_RulesOnOtherFieldsDoNotApply(t *testing.T) {
	rules := []validationModel.ValidationRule{
		{Field: "source", MatchValue: "Crypt", Status: "valid"},
	}
	report := Report{Source: "Crypt", Chest: "Anything At All"}

	assert.True(t, Validate(report, rules))
}

// ---------------------------------------------------------------------------
// Correct
// ---------------------------------------------------------------------------

func TestCorrect_ActiveRuleRewritesValue(t *testing.T) {
	rules := []correctionModel.CorrectionRule{
		{Field: "chest", MatchValue: "golden chst", ReplacementValue: "Golden Chest", Status: "active"},
	}
	report := Report{Chest: "Golden Chst"}

	corrected := Correct(report, rules)
	assert.Equal(t, "Golden Chest", corrected["chest"])
}

func TestCorrect_InactiveRuleIsInert(t *testing.T) {
	rules := []correctionModel.CorrectionRule{
		{Field: "chest", MatchValue: "golden chst", ReplacementValue: "Golden Chest", Status: "inactive"},
	}
	report := Report{Chest: "Golden Chst"}

	corrected := Correct(report, rules)
	assert.Empty(t, corrected)
}

func TestCorrect_FirstMatchWins_OnePerField(t *testing.T) {
	rules := []correctionModel.CorrectionRule{
		{Field: "source", MatchValue: "crpyt", ReplacementValue: "Crypt", Status: "active"},
		{Field: "source", MatchValue: "crpyt", ReplacementValue: "Cavern", Status: "active"},
	}
	report := Report{Source: "Crpyt"}

	corrected := Correct(report, rules)
	assert.Equal(t, "Crypt", corrected["source"])
}

func TestCorrect_Idempotent(t *testing.T) {
	rules := []correctionModel.CorrectionRule{
		{Field: "chest", MatchValue: "golden chst", ReplacementValue: "Golden Chest", Status: "active"},
	}

	first := Correct(Report{Chest: "Golden Chst"}, rules)
	require.Equal(t, "Golden Chest", first["chest"])

	// Applying again to the already-corrected value is a no-op.
	second := Correct(Report{Chest: first["chest"]}, rules)
	assert.Empty(t, second)
}

// ---------------------------------------------------------------------------
// ParseLevel
// ---------------------------------------------------------------------------

func TestParseLevel_Valid(t *testing.T) {
	level := ParseLevel(" 25 ")
	require.NotNil(t, level)
	assert.Equal(t, 25, *level)
}

func TestParseLevel_MalformedIsNil(t *testing.T) {
	assert.Nil(t, ParseLevel("twenty"))
	assert.Nil(t, ParseLevel(""))
	assert.Nil(t, ParseLevel("12.5"))
}

// ---------------------------------------------------------------------------
// Evaluate
// ---------------------------------------------------------------------------

func TestEvaluate_CorrectionFeedsValidationAndScoring(t *testing.T) {
	correctionRules := []correctionModel.CorrectionRule{
		{Field: "chest", MatchValue: "golden chst", ReplacementValue: "Golden Chest", Status: "active"},
	}
	validationRules := []validationModel.ValidationRule{
		{Field: "chest", MatchValue: "Golden Chest", Status: "valid"},
	}
	scoringRules := []scoringModel.ScoringRule{
		scoringRule(1, 100, "Golden Chest", "", nil, nil),
	}

	result := Evaluate(Report{Chest: "Golden Chst", Level: intPtr(10)},
		validationRules, correctionRules, scoringRules)

	assert.True(t, result.IsValid)
	assert.Equal(t, "Golden Chest", result.CorrectedFields["chest"])
	require.NotNil(t, result.Score)
	assert.Equal(t, 100, *result.Score)
}

func TestEvaluate_UnscoredReport(t *testing.T) {
	result := Evaluate(Report{Chest: "Wooden Chest"}, nil, nil, nil)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.CorrectedFields)
	assert.Nil(t, result.Score)
}
