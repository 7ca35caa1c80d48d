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

	"github.com/wso2/clan-chest-service/internal/accounts/model"
	"github.com/wso2/clan-chest-service/internal/system/database/provider"
	"github.com/wso2/clan-chest-service/internal/system/database/scripts"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

// AddGameAccount persists a new game account.
func AddGameAccount(account model.GameAccount) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for storing game account: %s", account.PlayerName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_GAME_ACCOUNT.Code,
			Message:     errors2.ADD_GAME_ACCOUNT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertGameAccount[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, account.AccountId, account.UserId, account.PlayerName,
		account.CreatedAt, account.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting game account: %s", account.PlayerName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_GAME_ACCOUNT.Code,
			Message:     errors2.ADD_GAME_ACCOUNT.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Game account: %s stored successfully.", account.AccountId))
	return nil
}

// GetGameAccounts fetches all game accounts ordered by player name.
func GetGameAccounts() ([]model.GameAccount, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching game accounts."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_GAME_ACCOUNTS.Code,
			Message:     errors2.FETCH_GAME_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetGameAccounts[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed to fetch game accounts."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_GAME_ACCOUNTS.Code,
			Message:     errors2.FETCH_GAME_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}

	accounts := make([]model.GameAccount, 0, len(results))
	for _, row := range results {
		accounts = append(accounts, scanGameAccount(row))
	}
	return accounts, nil
}

// GetGameAccount fetches a game account by id. A missing account returns nil
// without an error.
func GetGameAccount(accountId string) (*model.GameAccount, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching game account: %s", accountId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_GAME_ACCOUNTS.Code,
			Message:     errors2.FETCH_GAME_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetGameAccount[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, accountId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch game account: %s", accountId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_GAME_ACCOUNTS.Code,
			Message:     errors2.FETCH_GAME_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	account := scanGameAccount(results[0])
	return &account, nil
}

// UpsertMembership inserts a clan membership, or refreshes the status of an
// existing one for the same account and clan.
func UpsertMembership(membership model.Membership) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for upserting membership for account: %s",
			membership.AccountId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_MEMBERSHIP.Code,
			Message:     errors2.UPSERT_MEMBERSHIP.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.UpsertMembership[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, membership.MembershipId, membership.AccountId, membership.ClanId,
		membership.Status, membership.CreatedAt, membership.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on upserting membership for account: %s", membership.AccountId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_MEMBERSHIP.Code,
			Message:     errors2.UPSERT_MEMBERSHIP.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Membership for account: %s in clan: %s upserted successfully.",
		membership.AccountId, membership.ClanId))
	return nil
}

// GetMembershipsForClan fetches a clan's memberships joined with player names.
func GetMembershipsForClan(clanId string) ([]model.Membership, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching clan memberships."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_GAME_ACCOUNTS.Code,
			Message:     errors2.FETCH_GAME_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetMembershipsForClan[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId)
	if err != nil {
		errorMsg := "Failed to fetch clan memberships."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_GAME_ACCOUNTS.Code,
			Message:     errors2.FETCH_GAME_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}

	memberships := make([]model.Membership, 0, len(results))
	for _, row := range results {
		membership := model.Membership{}
		membership.MembershipId = row["membership_id"].(string)
		membership.AccountId = row["account_id"].(string)
		membership.ClanId = row["clan_id"].(string)
		membership.Status = row["status"].(string)
		membership.CreatedAt = row["created_at"].(int64)
		membership.UpdatedAt = row["updated_at"].(int64)
		membership.PlayerName = row["player_name"].(string)
		memberships = append(memberships, membership)
	}
	return memberships, nil
}

// CountPendingMemberships counts memberships awaiting approval in a clan.
func CountPendingMemberships(clanId, status string) (int, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for counting pending memberships."
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_GAME_ACCOUNTS.Code,
			Message:     errors2.FETCH_GAME_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.CountPendingMemberships[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId, status)
	if err != nil {
		errorMsg := "Failed to count pending memberships."
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_GAME_ACCOUNTS.Code,
			Message:     errors2.FETCH_GAME_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return int(results[0]["pending"].(int64)), nil
}

// UpdateMembershipStatus moves a membership to a new approval status.
func UpdateMembershipStatus(membershipId, status string, updatedAt int64) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for updating membership: %s", membershipId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_MEMBERSHIP.Code,
			Message:     errors2.UPSERT_MEMBERSHIP.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.UpdateMembershipStatus[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, status, updatedAt, membershipId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on updating membership: %s", membershipId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_MEMBERSHIP.Code,
			Message:     errors2.UPSERT_MEMBERSHIP.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Membership: %s moved to status: %s.", membershipId, status))
	return nil
}

func scanGameAccount(row map[string]interface{}) model.GameAccount {

	account := model.GameAccount{}
	account.AccountId = row["account_id"].(string)
	account.UserId = row["user_id"].(string)
	account.PlayerName = row["player_name"].(string)
	account.CreatedAt = row["created_at"].(int64)
	account.UpdatedAt = row["updated_at"].(int64)
	return account
}
