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
	"net/http"
	"strconv"

	"github.com/wso2/clan-chest-service/internal/audit/provider"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/utils"
)

type AuditHandler struct{}

func NewAuditHandler() *AuditHandler {
	return &AuditHandler{}
}

// GetAuditLogs handles GET /audit-logs
func (h *AuditHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if err := authn.RequireAdmin(claims); err != nil {
		utils.HandleError(w, err)
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			clientError := errors.NewClientError(errors.ErrorMessage{
				Code:        errors.FETCH_AUDIT_LOGS.Code,
				Message:     errors.FETCH_AUDIT_LOGS.Message,
				Description: "Invalid limit query parameter.",
			}, http.StatusBadRequest)
			utils.HandleError(w, clientError)
			return
		}
		limit = parsed
	}

	service := provider.NewAuditProvider().GetAuditService()
	logs, err := service.GetAuditLogs(r.URL.Query().Get("clan_id"), limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, logs)
}
