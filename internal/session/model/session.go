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

import (
	clanModel "github.com/wso2/clan-chest-service/internal/clans/model"
)

// AdminSession is the per-user working context assembled at login: the clan
// list, the restored clan selection, the user's role and the pending
// membership approvals badge for the selected clan.
type AdminSession struct {
	UserId           string           `json:"user_id"`
	DisplayName      string           `json:"display_name,omitempty"`
	Role             string           `json:"role"`
	Clans            []clanModel.Clan `json:"clans"`
	SelectedClanId   string           `json:"selected_clan_id,omitempty"`
	PendingApprovals int              `json:"pending_approvals"`
}

// Profile is the persisted slice of a user's session preferences.
type Profile struct {
	UserId             string `json:"user_id"`
	DisplayName        string `json:"display_name,omitempty"`
	LastSelectedClanId string `json:"last_selected_clan_id,omitempty"`
}
