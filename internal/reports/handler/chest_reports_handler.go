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
	"strconv"

	"github.com/wso2/clan-chest-service/internal/reports/model"
	"github.com/wso2/clan-chest-service/internal/reports/provider"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/utils"
)

type ChestReportHandler struct{}

func NewChestReportHandler() *ChestReportHandler {
	return &ChestReportHandler{}
}

// SubmitChestReport handles POST /reports. The report is queued for scoring
// and the request returns 202 before the score is computed.
func (h *ChestReportHandler) SubmitChestReport(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var raw model.RawReport
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ADD_CHEST_REPORT.Code,
			Message:     errors.ADD_CHEST_REPORT.Message,
			Description: utils.HandleDecodeError(err, "chest report"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewChestReportProvider().GetChestReportService()
	if err := service.SubmitChestReport(raw); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// SubmitChestReportBatch handles POST /reports/batch with a CSV body.
func (h *ChestReportHandler) SubmitChestReportBatch(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	clanId := r.URL.Query().Get("clan_id")
	service := provider.NewChestReportProvider().GetChestReportService()
	accepted, err := service.SubmitChestReportBatch(clanId, r.Body)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusAccepted, map[string]int{"accepted": accepted})
}

// GetChestReports handles GET /reports
func (h *ChestReportHandler) GetChestReports(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	clanId := r.URL.Query().Get("clan_id")
	if clanId == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrClanIdRequired, http.StatusBadRequest))
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			clientError := errors.NewClientError(errors.ErrorMessage{
				Code:        errors.FETCH_CHEST_REPORTS.Code,
				Message:     errors.FETCH_CHEST_REPORTS.Message,
				Description: "Invalid limit query parameter.",
			}, http.StatusBadRequest)
			utils.HandleError(w, clientError)
			return
		}
		limit = parsed
	}

	service := provider.NewChestReportProvider().GetChestReportService()
	reports, err := service.GetChestReports(clanId, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, reports)
}
