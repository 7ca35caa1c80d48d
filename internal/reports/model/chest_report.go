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

// ChestReport is one scored chest ingestion record. Score stays nil when no
// scoring rule matched; IsValid reflects the validation verdict after
// corrections.
type ChestReport struct {
	ReportId  string `json:"report_id,omitempty"`
	ClanId    string `json:"clan_id"`
	Player    string `json:"player"`
	Chest     string `json:"chest"`
	Source    string `json:"source"`
	Level     *int   `json:"level,omitempty"`
	Score     *int   `json:"score,omitempty"`
	IsValid   bool   `json:"is_valid"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// RawReport is an unscored submission as it arrives from a client. Level is
// kept textual; a malformed level is an open match downstream, not an error.
type RawReport struct {
	ClanId string `json:"clan_id"`
	Player string `json:"player"`
	Chest  string `json:"chest"`
	Source string `json:"source"`
	Level  string `json:"level,omitempty"`
}
