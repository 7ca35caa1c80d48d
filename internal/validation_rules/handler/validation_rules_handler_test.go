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

package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/clan-chest-service/internal/system/pagination"
	ruleModel "github.com/wso2/clan-chest-service/internal/validation_rules/model"
)

func listRows() []ruleModel.ValidationRule {
	return []ruleModel.ValidationRule{
		{RuleId: "r1", Field: "chest", MatchValue: "Golden Chest", Status: "valid", CreatedAt: 30},
		{RuleId: "r2", Field: "chest", MatchValue: "Wooden Chest", Status: "invalid", CreatedAt: 10},
		{RuleId: "r3", Field: "source", MatchValue: "Crypt Level 10", Status: "valid", CreatedAt: 20},
	}
}

func viewRules(t *testing.T, view map[string]interface{}) []ruleModel.ValidationRule {
	t.Helper()
	rules, ok := view["rules"].([]ruleModel.ValidationRule)
	require.True(t, ok)
	return rules
}

func TestListValidationRules_FiltersAreConjunctive(t *testing.T) {

	q := url.Values{}
	q.Set("search", "chest")
	q.Set("status", "valid")

	rules := viewRules(t, listValidationRules(listRows(), q, 1, 25))
	require.Len(t, rules, 1)
	assert.Equal(t, "r1", rules[0].RuleId)
}

func TestListValidationRules_FieldFilter(t *testing.T) {

	q := url.Values{}
	q.Set("field", "source")

	view := listValidationRules(listRows(), q, 1, 25)
	rules := viewRules(t, view)
	require.Len(t, rules, 1)
	assert.Equal(t, "Crypt Level 10", rules[0].MatchValue)
	assert.Equal(t, 1, view["pagination"].(pagination.Pagination).Count)
}

func TestListValidationRules_SortByCreatedAtDescending(t *testing.T) {

	q := url.Values{}
	q.Set("sort_by", "created_at")
	q.Set("sort_dir", "desc")

	rules := viewRules(t, listValidationRules(listRows(), q, 1, 25))
	require.Len(t, rules, 3)
	assert.Equal(t, "r1", rules[0].RuleId)
	assert.Equal(t, "r3", rules[1].RuleId)
	assert.Equal(t, "r2", rules[2].RuleId)
}

func TestListValidationRules_DefaultSortIsCollatedMatchValue(t *testing.T) {

	rules := viewRules(t, listValidationRules(listRows(), url.Values{}, 1, 25))
	require.Len(t, rules, 3)
	assert.Equal(t, "Crypt Level 10", rules[0].MatchValue)
	assert.Equal(t, "Golden Chest", rules[1].MatchValue)
	assert.Equal(t, "Wooden Chest", rules[2].MatchValue)
}

func TestListValidationRules_PageBeyondLastClampsToFirst(t *testing.T) {

	view := listValidationRules(listRows(), url.Values{}, 9, 2)
	rules := viewRules(t, view)
	require.Len(t, rules, 2, "clamped back to the first page")
	assert.Equal(t, 1, view["pagination"].(pagination.Pagination).Page)
	assert.Equal(t, 2, view["page_count"])
}

func TestListValidationRules_EmptyViewIsNotNil(t *testing.T) {

	q := url.Values{}
	q.Set("search", "no such rule")

	view := listValidationRules(listRows(), q, 1, 25)
	rules := viewRules(t, view)
	assert.NotNil(t, rules)
	assert.Empty(t, rules)
	assert.Equal(t, 1, view["page_count"])
}
