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

package model

// ValidationRule is an exact-match allow/deny assertion for one field value.
// A field with no rules at all is treated as always valid.
type ValidationRule struct {
	RuleId     string `json:"rule_id,omitempty"`
	ClanId     string `json:"clan_id,omitempty"`
	Field      string `json:"field"`
	MatchValue string `json:"match_value"`
	Status     string `json:"status"` // valid, invalid
	CreatedAt  int64  `json:"created_at,omitempty"`
	UpdatedAt  int64  `json:"updated_at,omitempty"`
}

// RowID identifies the rule in a reconciler working set.
func (r ValidationRule) RowID() string {
	return r.RuleId
}
