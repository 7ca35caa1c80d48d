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
	"time"

	"github.com/google/uuid"
	"github.com/wso2/clan-chest-service/internal/notifications/model"
	"github.com/wso2/clan-chest-service/internal/notifications/store"
	"github.com/wso2/clan-chest-service/internal/system/config"
	"github.com/wso2/clan-chest-service/internal/system/constants"
)

const defaultNotificationLimit = 50

type NotificationServiceInterface interface {
	GetNotifications(userId string, limit int) ([]model.Notification, error)
	NotifyAdmins(title, body string) error
	MarkRead(notificationId string) error
	DeleteNotification(notificationId string) error
	GetSettings(userId string) (*model.NotificationSettings, error)
	PutSettings(settings model.NotificationSettings) (*model.NotificationSettings, error)
}

// NotificationService is the default implementation of the NotificationServiceInterface.
type NotificationService struct{}

// GetNotificationService creates a new instance of NotificationService.
func GetNotificationService() NotificationServiceInterface {

	return &NotificationService{}
}

func (ns *NotificationService) GetNotifications(userId string, limit int) ([]model.Notification, error) {

	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return store.GetNotifications(userId, limit)
}

// NotifyAdmins fans a notification out to every admin user.
func (ns *NotificationService) NotifyAdmins(title, body string) error {

	admins, err := store.GetAdminUsers(constants.RoleAdmin)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Unix()
	for _, userId := range admins {
		notification := model.Notification{
			NotificationId: uuid.New().String(),
			UserId:         userId,
			Title:          title,
			Body:           body,
			IsRead:         false,
			CreatedAt:      now,
		}
		if err := store.AddNotification(notification); err != nil {
			return err
		}
	}
	return nil
}

func (ns *NotificationService) MarkRead(notificationId string) error {

	return store.MarkNotificationRead(notificationId)
}

func (ns *NotificationService) DeleteNotification(notificationId string) error {

	return store.DeleteNotification(notificationId)
}

// GetSettings returns a user's poller settings, falling back to the
// server-wide defaults when the user never saved any.
func (ns *NotificationService) GetSettings(userId string) (*model.NotificationSettings, error) {

	settings, err := store.GetNotificationSettings(userId)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		serverDefaults := config.GetCCSRuntime().Config.Notification
		settings = &model.NotificationSettings{
			UserId:              userId,
			Enabled:             serverDefaults.Enabled,
			PollIntervalSeconds: serverDefaults.PollIntervalSeconds,
		}
	}
	return settings, nil
}

func (ns *NotificationService) PutSettings(settings model.NotificationSettings) (*model.NotificationSettings, error) {

	if settings.PollIntervalSeconds <= 0 {
		settings.PollIntervalSeconds = config.GetCCSRuntime().Config.Notification.PollIntervalSeconds
	}
	if err := store.UpsertNotificationSettings(settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
