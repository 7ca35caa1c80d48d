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

	"github.com/wso2/clan-chest-service/internal/clans/model"
	"github.com/wso2/clan-chest-service/internal/system/database/provider"
	"github.com/wso2/clan-chest-service/internal/system/database/scripts"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

// AddClan persists a new clan.
func AddClan(clan model.Clan) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for storing clan: %s", clan.Name)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CLAN.Code,
			Message:     errors2.ADD_CLAN.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertClan[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, clan.ClanId, clan.Name, clan.Tag, clan.IsDefault,
		clan.CreatedAt, clan.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting clan: %s", clan.Name)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CLAN.Code,
			Message:     errors2.ADD_CLAN.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Clan: %s stored successfully.", clan.ClanId))
	return nil
}

// GetClans fetches all clans ordered by name.
func GetClans() ([]model.Clan, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching clans."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLANS.Code,
			Message:     errors2.FETCH_CLANS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetClans[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed to fetch clans."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLANS.Code,
			Message:     errors2.FETCH_CLANS.Message,
			Description: errorMsg,
		}, err)
	}

	clans := make([]model.Clan, 0, len(results))
	for _, row := range results {
		clans = append(clans, scanClan(row))
	}
	return clans, nil
}

// GetClan fetches a clan by id. A missing clan returns nil without an error.
func GetClan(clanId string) (*model.Clan, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching clan: %s", clanId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLANS.Code,
			Message:     errors2.FETCH_CLANS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetClan[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch clan: %s", clanId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLANS.Code,
			Message:     errors2.FETCH_CLANS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	clan := scanClan(results[0])
	return &clan, nil
}

// GetDefaultClan fetches the clan flagged as the server default, or nil when
// none is flagged.
func GetDefaultClan() (*model.Clan, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching default clan."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLANS.Code,
			Message:     errors2.FETCH_CLANS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetDefaultClan[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed to fetch default clan."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLANS.Code,
			Message:     errors2.FETCH_CLANS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	clan := scanClan(results[0])
	return &clan, nil
}

// UpdateClan updates the mutable fields of a clan.
func UpdateClan(clan model.Clan) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating clan: %s", clan.ClanId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_CLAN.Code,
			Message:     errors2.UPDATE_CLAN.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.UpdateClan[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, clan.Name, clan.Tag, clan.IsDefault, clan.UpdatedAt, clan.ClanId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on updating clan: %s", clan.ClanId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_CLAN.Code,
			Message:     errors2.UPDATE_CLAN.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Clan: %s updated successfully.", clan.ClanId))
	return nil
}

// DeleteClan removes a clan by id.
func DeleteClan(clanId string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting clan: %s", clanId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CLAN.Code,
			Message:     errors2.DELETE_CLAN.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteClan[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, clanId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on deleting clan: %s", clanId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CLAN.Code,
			Message:     errors2.DELETE_CLAN.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Clan: %s deleted successfully.", clanId))
	return nil
}

func scanClan(row map[string]interface{}) model.Clan {

	clan := model.Clan{}
	clan.ClanId = row["clan_id"].(string)
	clan.Name = row["name"].(string)
	clan.Tag = row["tag"].(string)
	clan.IsDefault = row["is_default"].(bool)
	clan.CreatedAt = row["created_at"].(int64)
	clan.UpdatedAt = row["updated_at"].(int64)
	return clan
}
