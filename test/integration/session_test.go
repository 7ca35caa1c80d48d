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

package integration

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	accountModel "github.com/wso2/clan-chest-service/internal/accounts/model"
	accountProvider "github.com/wso2/clan-chest-service/internal/accounts/provider"
	clanModel "github.com/wso2/clan-chest-service/internal/clans/model"
	clanProvider "github.com/wso2/clan-chest-service/internal/clans/provider"
	sessionProvider "github.com/wso2/clan-chest-service/internal/session/provider"
	"github.com/wso2/clan-chest-service/internal/system/constants"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
)

func TestSessionRestoreAndSelection(t *testing.T) {
	clanService := clanProvider.NewClanProvider().GetClanService()
	home, err := clanService.AddClan(clanModel.Clan{Name: "The Vanguard", Tag: "VAN", IsDefault: true})
	require.NoError(t, err)
	away, err := clanService.AddClan(clanModel.Clan{Name: "Night Watch", Tag: "NW"})
	require.NoError(t, err)

	userId := "admin-" + uuid.New().String()
	_, err = testDB.Exec("INSERT INTO user_roles (user_id, role) VALUES ($1, $2)", userId, constants.RoleAdmin)
	require.NoError(t, err)

	sessionService := sessionProvider.NewSessionProvider().GetSessionService()
	session, err := sessionService.GetSession(userId)
	require.NoError(t, err)
	require.Equal(t, constants.RoleAdmin, session.Role)
	require.Equal(t, home.ClanId, session.SelectedClanId, "no persisted selection falls back to the default clan")
	require.GreaterOrEqual(t, len(session.Clans), 2)

	session, err = sessionService.SelectClan(userId, away.ClanId)
	require.NoError(t, err)
	require.Equal(t, away.ClanId, session.SelectedClanId)

	// The selection survives a fresh session load.
	session, err = sessionService.GetSession(userId)
	require.NoError(t, err)
	require.Equal(t, away.ClanId, session.SelectedClanId)
}

func TestSessionSelectClan_UnknownClanRejected(t *testing.T) {
	sessionService := sessionProvider.NewSessionProvider().GetSessionService()

	_, err := sessionService.SelectClan("someone-"+uuid.New().String(), uuid.New().String())
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
}

func TestSessionPendingApprovalsBadge(t *testing.T) {
	clanService := clanProvider.NewClanProvider().GetClanService()
	clan, err := clanService.AddClan(clanModel.Clan{Name: "Crypt Raiders", Tag: "CR"})
	require.NoError(t, err)

	accountService := accountProvider.NewGameAccountProvider().GetGameAccountService()
	_, err = accountService.CreateGameAccount(accountModel.CreateAccountRequest{
		PlayerName: "Freya",
		ClanId:     clan.ClanId,
	}, "test-admin")
	require.NoError(t, err)

	userId := "member-" + uuid.New().String()
	sessionService := sessionProvider.NewSessionProvider().GetSessionService()
	session, err := sessionService.SelectClan(userId, clan.ClanId)
	require.NoError(t, err)
	require.Equal(t, constants.RoleMember, session.Role, "user without a role row is a plain member")
	require.Equal(t, 1, session.PendingApprovals)
}

func TestMembershipApprovalClearsBadge(t *testing.T) {
	clanService := clanProvider.NewClanProvider().GetClanService()
	clan, err := clanService.AddClan(clanModel.Clan{Name: "Shield Brothers", Tag: "SB"})
	require.NoError(t, err)

	accountService := accountProvider.NewGameAccountProvider().GetGameAccountService()
	account, err := accountService.CreateGameAccount(accountModel.CreateAccountRequest{
		PlayerName: "Bjorn",
		ClanId:     clan.ClanId,
	}, "test-admin")
	require.NoError(t, err)

	memberships, err := accountService.GetMembershipsForClan(clan.ClanId)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	require.Equal(t, account.AccountId, memberships[0].AccountId)
	require.Equal(t, constants.MembershipPending, memberships[0].Status)

	err = accountService.UpdateMembershipStatus(memberships[0].MembershipId, constants.MembershipApproved, "test-admin")
	require.NoError(t, err)

	pending, err := accountService.CountPendingMemberships(clan.ClanId)
	require.NoError(t, err)
	require.Zero(t, pending)
}
