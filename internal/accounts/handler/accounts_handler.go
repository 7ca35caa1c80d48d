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

package handler

import (
	"encoding/json"
	"net/http"

	accountModel "github.com/wso2/clan-chest-service/internal/accounts/model"
	"github.com/wso2/clan-chest-service/internal/accounts/provider"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/utils"
)

type GameAccountHandler struct{}

func NewGameAccountHandler() *GameAccountHandler {
	return &GameAccountHandler{}
}

// CreateGameAccount handles POST /accounts
func (h *GameAccountHandler) CreateGameAccount(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if err := authn.RequireAdmin(claims); err != nil {
		utils.HandleError(w, err)
		return
	}

	var request accountModel.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ADD_GAME_ACCOUNT.Code,
			Message:     errors.ADD_GAME_ACCOUNT.Message,
			Description: utils.HandleDecodeError(err, "game account"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewGameAccountProvider().GetGameAccountService()
	account, err := service.CreateGameAccount(request, authn.UserIDFromClaims(claims))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, account)
}

// GetGameAccounts handles GET /accounts
func (h *GameAccountHandler) GetGameAccounts(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewGameAccountProvider().GetGameAccountService()
	accounts, err := service.GetGameAccounts()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, accounts)
}

// GetGameAccount handles GET /accounts/{id}
func (h *GameAccountHandler) GetGameAccount(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewGameAccountProvider().GetGameAccountService()
	account, err := service.GetGameAccount(r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if account == nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrAccountNotFound, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, account)
}

// RequestMembership handles POST /accounts/{id}/memberships
func (h *GameAccountHandler) RequestMembership(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var body struct {
		ClanId string `json:"clan_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UPSERT_MEMBERSHIP.Code,
			Message:     errors.UPSERT_MEMBERSHIP.Message,
			Description: utils.HandleDecodeError(err, "membership request"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewGameAccountProvider().GetGameAccountService()
	membership, err := service.RequestMembership(r.PathValue("id"), body.ClanId, authn.UserIDFromClaims(claims))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, membership)
}

// GetMemberships handles GET /memberships
func (h *GameAccountHandler) GetMemberships(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewGameAccountProvider().GetGameAccountService()
	memberships, err := service.GetMembershipsForClan(r.URL.Query().Get("clan_id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, memberships)
}

// UpdateMembershipStatus handles PATCH /memberships/{id}
func (h *GameAccountHandler) UpdateMembershipStatus(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if err := authn.RequireAdmin(claims); err != nil {
		utils.HandleError(w, err)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UPSERT_MEMBERSHIP.Code,
			Message:     errors.UPSERT_MEMBERSHIP.Message,
			Description: utils.HandleDecodeError(err, "membership status"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewGameAccountProvider().GetGameAccountService()
	if err := service.UpdateMembershipStatus(r.PathValue("id"), body.Status,
		authn.UserIDFromClaims(claims)); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
