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

	"github.com/wso2/clan-chest-service/internal/session/provider"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/utils"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewSessionProvider().GetSessionService()
	session, err := service.GetSession(authn.UserIDFromClaims(claims))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, session)
}

// SelectClan handles PATCH /session
func (h *SessionHandler) SelectClan(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var body struct {
		SelectedClanId string `json:"selected_clan_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.FETCH_SESSION.Code,
			Message:     errors.FETCH_SESSION.Message,
			Description: utils.HandleDecodeError(err, "session update"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewSessionProvider().GetSessionService()
	session, err := service.SelectClan(authn.UserIDFromClaims(claims), body.SelectedClanId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, session)
}
