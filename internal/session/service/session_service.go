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

package service

import (
	"fmt"
	"net/http"

	accountProvider "github.com/wso2/clan-chest-service/internal/accounts/provider"
	clanModel "github.com/wso2/clan-chest-service/internal/clans/model"
	clanProvider "github.com/wso2/clan-chest-service/internal/clans/provider"
	"github.com/wso2/clan-chest-service/internal/session/model"
	"github.com/wso2/clan-chest-service/internal/session/store"
	"github.com/wso2/clan-chest-service/internal/system/constants"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

type SessionServiceInterface interface {
	GetSession(userId string) (*model.AdminSession, error)
	SelectClan(userId, clanId string) (*model.AdminSession, error)
}

// SessionService is the default implementation of the SessionServiceInterface.
type SessionService struct{}

// GetSessionService creates a new instance of SessionService.
func GetSessionService() SessionServiceInterface {

	return &SessionService{}
}

// GetSession assembles the working context for a user, in order: clan list,
// default clan, profile, role, pending approvals. The selected clan is
// restored with priority persisted last-selected > server default > first in
// the list; a persisted selection pointing at a clan that no longer exists
// falls through to the next source.
func (ss *SessionService) GetSession(userId string) (*model.AdminSession, error) {

	clanService := clanProvider.NewClanProvider().GetClanService()
	clans, err := clanService.GetClans()
	if err != nil {
		return nil, err
	}
	defaultClan, err := clanService.GetDefaultClan()
	if err != nil {
		return nil, err
	}
	profile, err := store.GetProfile(userId)
	if err != nil {
		return nil, err
	}
	role, err := store.GetUserRole(userId)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = constants.RoleMember
	}

	session := &model.AdminSession{
		UserId: userId,
		Role:   role,
		Clans:  clans,
	}
	if profile != nil {
		session.DisplayName = profile.DisplayName
	}

	lastSelected := ""
	if profile != nil {
		lastSelected = profile.LastSelectedClanId
	}
	session.SelectedClanId = restoreSelection(clans, defaultClan, lastSelected)

	if session.SelectedClanId != "" {
		accountService := accountProvider.NewGameAccountProvider().GetGameAccountService()
		pending, err := accountService.CountPendingMemberships(session.SelectedClanId)
		if err != nil {
			// The badge counter is advisory; a failed count does not block login.
			log.GetLogger().Error(
				fmt.Sprintf("Failed to count pending approvals for clan: %s", session.SelectedClanId),
				log.Error(err))
		} else {
			session.PendingApprovals = pending
		}
	}
	return session, nil
}

// SelectClan persists a new clan selection and returns the refreshed session.
// The clan must be one of the loaded clans.
func (ss *SessionService) SelectClan(userId, clanId string) (*model.AdminSession, error) {

	if clanId == "" {
		return nil, errors2.NewClientError(errors2.ErrClanIdRequired, http.StatusBadRequest)
	}

	clans, err := clanProvider.NewClanProvider().GetClanService().GetClans()
	if err != nil {
		return nil, err
	}
	if !containsClan(clans, clanId) {
		return nil, errors2.NewClientError(errors2.ErrClanNotFound, http.StatusNotFound)
	}

	if err := store.UpdateLastSelectedClan(userId, clanId); err != nil {
		return nil, err
	}
	return ss.GetSession(userId)
}

func restoreSelection(clans []clanModel.Clan, defaultClan *clanModel.Clan, lastSelected string) string {

	if lastSelected != "" && containsClan(clans, lastSelected) {
		return lastSelected
	}
	if defaultClan != nil && containsClan(clans, defaultClan.ClanId) {
		return defaultClan.ClanId
	}
	if len(clans) > 0 {
		return clans[0].ClanId
	}
	return ""
}

func containsClan(clans []clanModel.Clan, clanId string) bool {

	for _, clan := range clans {
		if clan.ClanId == clanId {
			return true
		}
	}
	return false
}
