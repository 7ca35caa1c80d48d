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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wso2/clan-chest-service/internal/accounts/model"
	"github.com/wso2/clan-chest-service/internal/accounts/store"
	auditProvider "github.com/wso2/clan-chest-service/internal/audit/provider"
	"github.com/wso2/clan-chest-service/internal/system/constants"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
)

type GameAccountServiceInterface interface {
	CreateGameAccount(request model.CreateAccountRequest, actorId string) (*model.GameAccount, error)
	GetGameAccounts() ([]model.GameAccount, error)
	GetGameAccount(accountId string) (*model.GameAccount, error)
	RequestMembership(accountId, clanId, actorId string) (*model.Membership, error)
	GetMembershipsForClan(clanId string) ([]model.Membership, error)
	CountPendingMemberships(clanId string) (int, error)
	UpdateMembershipStatus(membershipId, status, actorId string) error
}

// GameAccountService is the default implementation of the GameAccountServiceInterface.
type GameAccountService struct{}

// GetGameAccountService creates a new instance of GameAccountService.
func GetGameAccountService() GameAccountServiceInterface {

	return &GameAccountService{}
}

// CreateGameAccount creates the account and, when a clan id is given, a
// pending membership for it. The two writes and the audit entry are
// deliberately sequential and non-atomic: a membership failure after the
// account write surfaces its own error and leaves the account in place.
func (gas *GameAccountService) CreateGameAccount(request model.CreateAccountRequest,
	actorId string) (*model.GameAccount, error) {

	playerName := strings.TrimSpace(request.PlayerName)
	if playerName == "" {
		return nil, errors2.NewClientError(errors2.ErrPlayerNameRequired, http.StatusBadRequest)
	}

	now := time.Now().UTC().Unix()
	account := model.GameAccount{
		AccountId:  uuid.New().String(),
		UserId:     request.UserId,
		PlayerName: playerName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := store.AddGameAccount(account); err != nil {
		return nil, err
	}

	if request.ClanId != "" {
		membership := model.Membership{
			MembershipId: uuid.New().String(),
			AccountId:    account.AccountId,
			ClanId:       request.ClanId,
			Status:       constants.MembershipPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.UpsertMembership(membership); err != nil {
			return nil, err
		}
	}

	auditProvider.NewAuditProvider().GetAuditService().RecordAction(actorId, "account.create",
		account.AccountId, request.ClanId, fmt.Sprintf("Created game account for player: %s", playerName))
	return &account, nil
}

func (gas *GameAccountService) GetGameAccounts() ([]model.GameAccount, error) {

	return store.GetGameAccounts()
}

func (gas *GameAccountService) GetGameAccount(accountId string) (*model.GameAccount, error) {

	return store.GetGameAccount(accountId)
}

// RequestMembership opens a pending membership for an existing account.
func (gas *GameAccountService) RequestMembership(accountId, clanId, actorId string) (*model.Membership, error) {

	if clanId == "" {
		return nil, errors2.NewClientError(errors2.ErrClanIdRequired, http.StatusBadRequest)
	}
	account, err := store.GetGameAccount(accountId)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors2.NewClientError(errors2.ErrAccountNotFound, http.StatusNotFound)
	}

	now := time.Now().UTC().Unix()
	membership := model.Membership{
		MembershipId: uuid.New().String(),
		AccountId:    accountId,
		ClanId:       clanId,
		Status:       constants.MembershipPending,
		PlayerName:   account.PlayerName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.UpsertMembership(membership); err != nil {
		return nil, err
	}

	auditProvider.NewAuditProvider().GetAuditService().RecordAction(actorId, "membership.request",
		membership.MembershipId, clanId, fmt.Sprintf("Requested membership for player: %s", account.PlayerName))
	return &membership, nil
}

func (gas *GameAccountService) GetMembershipsForClan(clanId string) ([]model.Membership, error) {

	if clanId == "" {
		return nil, errors2.NewClientError(errors2.ErrClanIdRequired, http.StatusBadRequest)
	}
	return store.GetMembershipsForClan(clanId)
}

func (gas *GameAccountService) CountPendingMemberships(clanId string) (int, error) {

	if clanId == "" {
		return 0, errors2.NewClientError(errors2.ErrClanIdRequired, http.StatusBadRequest)
	}
	return store.CountPendingMemberships(clanId, constants.MembershipPending)
}

// UpdateMembershipStatus moves a membership between approval states.
func (gas *GameAccountService) UpdateMembershipStatus(membershipId, status, actorId string) error {

	if status != constants.MembershipPending && status != constants.MembershipApproved &&
		status != constants.MembershipRejected {
		return errors2.NewClientError(errors2.ErrInvalidMembershipStatus, http.StatusBadRequest)
	}

	if err := store.UpdateMembershipStatus(membershipId, status, time.Now().UTC().Unix()); err != nil {
		return err
	}

	auditProvider.NewAuditProvider().GetAuditService().RecordAction(actorId, "membership."+status,
		membershipId, "", fmt.Sprintf("Membership moved to status: %s", status))
	return nil
}
