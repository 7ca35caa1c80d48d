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

// GameAccount links an in-game player name to an application user.
type GameAccount struct {
	AccountId  string `json:"account_id,omitempty"`
	UserId     string `json:"user_id,omitempty"`
	PlayerName string `json:"player_name"`
	CreatedAt  int64  `json:"created_at,omitempty"`
	UpdatedAt  int64  `json:"updated_at,omitempty"`
}

// Membership ties a game account to a clan. New memberships start pending
// and feed the session approval counter until an admin acts on them.
type Membership struct {
	MembershipId string `json:"membership_id,omitempty"`
	AccountId    string `json:"account_id"`
	ClanId       string `json:"clan_id"`
	Status       string `json:"status"`
	PlayerName   string `json:"player_name,omitempty"`
	CreatedAt    int64  `json:"created_at,omitempty"`
	UpdatedAt    int64  `json:"updated_at,omitempty"`
}

// CreateAccountRequest is the POST /accounts payload. A clan id is optional;
// when present a pending membership is created alongside the account.
type CreateAccountRequest struct {
	PlayerName string `json:"player_name"`
	UserId     string `json:"user_id,omitempty"`
	ClanId     string `json:"clan_id,omitempty"`
}
