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

	clanModel "github.com/wso2/clan-chest-service/internal/clans/model"
	"github.com/wso2/clan-chest-service/internal/clans/provider"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/utils"
)

type ClanHandler struct{}

func NewClanHandler() *ClanHandler {
	return &ClanHandler{}
}

// GetClans handles GET /clans
func (h *ClanHandler) GetClans(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewClanProvider().GetClanService()
	clans, err := service.GetClans()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, clans)
}

// GetClan handles GET /clans/{id}
func (h *ClanHandler) GetClan(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewClanProvider().GetClanService()
	clan, err := service.GetClan(r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if clan == nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrClanNotFound, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, clan)
}

// GetDefaultClan handles GET /clans/default
func (h *ClanHandler) GetDefaultClan(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewClanProvider().GetClanService()
	clan, err := service.GetDefaultClan()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if clan == nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrClanNotFound, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, clan)
}

// AddClan handles POST /clans
func (h *ClanHandler) AddClan(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var clan clanModel.Clan
	if err := json.NewDecoder(r.Body).Decode(&clan); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ADD_CLAN.Code,
			Message:     errors.ADD_CLAN.Message,
			Description: utils.HandleDecodeError(err, "clan"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewClanProvider().GetClanService()
	created, err := service.AddClan(clan)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// UpdateClan handles PUT /clans/{id}
func (h *ClanHandler) UpdateClan(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var clan clanModel.Clan
	if err := json.NewDecoder(r.Body).Decode(&clan); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UPDATE_CLAN.Code,
			Message:     errors.UPDATE_CLAN.Message,
			Description: utils.HandleDecodeError(err, "clan"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}
	clan.ClanId = r.PathValue("id")

	service := provider.NewClanProvider().GetClanService()
	updated, err := service.PutClan(clan)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteClan handles DELETE /clans/{id}
func (h *ClanHandler) DeleteClan(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewClanProvider().GetClanService()
	if err := service.DeleteClan(r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func requireAdmin(r *http.Request) error {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		return err
	}
	return authn.RequireAdmin(claims)
}
