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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/clan-chest-service/internal/notifications/handler"
)

type NotificationsService struct {
	notificationsHandler *handler.NotificationHandler
}

func NewNotificationsService(mux *http.ServeMux, apiBasePath string) *NotificationsService {

	instance := &NotificationsService{
		notificationsHandler: handler.NewNotificationHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *NotificationsService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/notifications", apiBasePath), s.notificationsHandler.GetNotifications)
	mux.HandleFunc(fmt.Sprintf("POST %s/notifications/{id}/read", apiBasePath), s.notificationsHandler.MarkNotificationRead)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/notifications/{id}", apiBasePath), s.notificationsHandler.DeleteNotification)
	mux.HandleFunc(fmt.Sprintf("GET %s/notification-settings", apiBasePath), s.notificationsHandler.GetNotificationSettings)
	mux.HandleFunc(fmt.Sprintf("PUT %s/notification-settings", apiBasePath), s.notificationsHandler.UpdateNotificationSettings)
}
