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

	notificationModel "github.com/wso2/clan-chest-service/internal/notifications/model"
	"github.com/wso2/clan-chest-service/internal/notifications/provider"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/utils"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// GetNotifications handles GET /notifications
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			clientError := errors.NewClientError(errors.ErrorMessage{
				Code:        errors.FETCH_NOTIFICATIONS.Code,
				Message:     errors.FETCH_NOTIFICATIONS.Message,
				Description: "Invalid limit query parameter.",
			}, http.StatusBadRequest)
			utils.HandleError(w, clientError)
			return
		}
		limit = parsed
	}

	service := provider.NewNotificationProvider().GetNotificationService()
	notifications, err := service.GetNotifications(authn.UserIDFromClaims(claims), limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, notifications)
}

// MarkNotificationRead handles POST /notifications/{id}/read
func (h *NotificationHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewNotificationProvider().GetNotificationService()
	if err := service.MarkRead(r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteNotification handles DELETE /notifications/{id}
func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewNotificationProvider().GetNotificationService()
	if err := service.DeleteNotification(r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetNotificationSettings handles GET /notification-settings
func (h *NotificationHandler) GetNotificationSettings(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewNotificationProvider().GetNotificationService()
	settings, err := service.GetSettings(authn.UserIDFromClaims(claims))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, settings)
}

// UpdateNotificationSettings handles PUT /notification-settings
func (h *NotificationHandler) UpdateNotificationSettings(w http.ResponseWriter, r *http.Request) {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var settings notificationModel.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UPDATE_NOTIFICATIONS.Code,
			Message:     errors.UPDATE_NOTIFICATIONS.Message,
			Description: utils.HandleDecodeError(err, "notification settings"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}
	settings.UserId = authn.UserIDFromClaims(claims)

	service := provider.NewNotificationProvider().GetNotificationService()
	updated, err := service.PutSettings(settings)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}
