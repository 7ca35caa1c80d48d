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

	"github.com/wso2/clan-chest-service/internal/session/model"
	"github.com/wso2/clan-chest-service/internal/system/database/provider"
	"github.com/wso2/clan-chest-service/internal/system/database/scripts"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

// GetProfile fetches a user's persisted session preferences. A missing
// profile returns nil without an error.
func GetProfile(userId string) (*model.Profile, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching profile of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SESSION.Code,
			Message:     errors2.FETCH_SESSION.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetProfile[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, userId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch profile of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SESSION.Code,
			Message:     errors2.FETCH_SESSION.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	row := results[0]
	profile := model.Profile{}
	profile.UserId = row["user_id"].(string)
	if displayName, ok := row["display_name"].(string); ok {
		profile.DisplayName = displayName
	}
	if lastSelected, ok := row["last_selected_clan_id"].(string); ok {
		profile.LastSelectedClanId = lastSelected
	}
	return &profile, nil
}

// UpdateLastSelectedClan persists the clan a user last worked in.
func UpdateLastSelectedClan(userId, clanId string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating selected clan of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SESSION.Code,
			Message:     errors2.FETCH_SESSION.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.UpdateLastSelectedClan[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, clanId, userId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on updating selected clan of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SESSION.Code,
			Message:     errors2.FETCH_SESSION.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Selected clan of user: %s updated to: %s.", userId, clanId))
	return nil
}

// GetUserRole fetches a user's role. A missing role row returns an empty string.
func GetUserRole(userId string) (string, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching role of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SESSION.Code,
			Message:     errors2.FETCH_SESSION.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetUserRole[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, userId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch role of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SESSION.Code,
			Message:     errors2.FETCH_SESSION.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return "", nil
	}
	return results[0]["role"].(string), nil
}
