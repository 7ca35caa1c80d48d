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

package store

import (
	"fmt"

	"github.com/wso2/clan-chest-service/internal/notifications/model"
	"github.com/wso2/clan-chest-service/internal/system/database/provider"
	"github.com/wso2/clan-chest-service/internal/system/database/scripts"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

// GetNotifications fetches a user's most recent notifications.
func GetNotifications(userId string, limit int) ([]model.Notification, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching notifications."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_NOTIFICATIONS.Code,
			Message:     errors2.FETCH_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetNotifications[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, userId, limit)
	if err != nil {
		errorMsg := "Failed to fetch notifications."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_NOTIFICATIONS.Code,
			Message:     errors2.FETCH_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}

	notifications := make([]model.Notification, 0, len(results))
	for _, row := range results {
		notification := model.Notification{}
		notification.NotificationId = row["notification_id"].(string)
		notification.UserId = row["user_id"].(string)
		notification.Title = row["title"].(string)
		notification.Body = row["body"].(string)
		notification.IsRead = row["is_read"].(bool)
		notification.CreatedAt = row["created_at"].(int64)
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

// AddNotification persists a new notification.
func AddNotification(notification model.Notification) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for storing notification for user: %s",
			notification.UserId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_NOTIFICATIONS.Code,
			Message:     errors2.UPDATE_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertNotification[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, notification.NotificationId, notification.UserId,
		notification.Title, notification.Body, notification.IsRead, notification.CreatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting notification for user: %s", notification.UserId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_NOTIFICATIONS.Code,
			Message:     errors2.UPDATE_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// MarkNotificationRead flags one notification as read.
func MarkNotificationRead(notificationId string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for marking notification read: %s", notificationId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_NOTIFICATIONS.Code,
			Message:     errors2.UPDATE_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.MarkNotificationRead[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, notificationId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on marking notification read: %s", notificationId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_NOTIFICATIONS.Code,
			Message:     errors2.UPDATE_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// DeleteNotification removes a notification by id.
func DeleteNotification(notificationId string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for deleting notification: %s", notificationId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_NOTIFICATIONS.Code,
			Message:     errors2.UPDATE_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteNotification[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, notificationId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on deleting notification: %s", notificationId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_NOTIFICATIONS.Code,
			Message:     errors2.UPDATE_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// GetNotificationSettings fetches a user's poller settings. A missing row
// returns nil without an error.
func GetNotificationSettings(userId string) (*model.NotificationSettings, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching notification settings."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_NOTIFICATIONS.Code,
			Message:     errors2.FETCH_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetNotificationSettings[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, userId)
	if err != nil {
		errorMsg := "Failed to fetch notification settings."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_NOTIFICATIONS.Code,
			Message:     errors2.FETCH_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	row := results[0]
	settings := model.NotificationSettings{}
	settings.UserId = row["user_id"].(string)
	settings.Enabled = row["enabled"].(bool)
	settings.PollIntervalSeconds = int(row["poll_interval_seconds"].(int64))
	return &settings, nil
}

// UpsertNotificationSettings writes a user's poller settings.
func UpsertNotificationSettings(settings model.NotificationSettings) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for updating notification settings."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_NOTIFICATIONS.Code,
			Message:     errors2.UPDATE_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.UpsertNotificationSettings[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, settings.UserId, settings.Enabled, settings.PollIntervalSeconds)
	if err != nil {
		errorMsg := "Failed on updating notification settings."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_NOTIFICATIONS.Code,
			Message:     errors2.UPDATE_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// GetAdminUsers lists the users holding a given role. The approval poller
// uses it to address its digest notifications.
func GetAdminUsers(role string) ([]string, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching admin users."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_NOTIFICATIONS.Code,
			Message:     errors2.FETCH_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetAdminUsers[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, role)
	if err != nil {
		errorMsg := "Failed to fetch admin users."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_NOTIFICATIONS.Code,
			Message:     errors2.FETCH_NOTIFICATIONS.Message,
			Description: errorMsg,
		}, err)
	}

	userIds := make([]string, 0, len(results))
	for _, row := range results {
		userIds = append(userIds, row["user_id"].(string))
	}
	return userIds, nil
}
