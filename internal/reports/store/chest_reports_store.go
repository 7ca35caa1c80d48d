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

	"github.com/wso2/clan-chest-service/internal/reports/model"
	"github.com/wso2/clan-chest-service/internal/system/database/provider"
	"github.com/wso2/clan-chest-service/internal/system/database/scripts"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

// AddChestReport persists a scored chest report.
func AddChestReport(report model.ChestReport) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for storing chest report for player: %s", report.Player)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CHEST_REPORT.Code,
			Message:     errors2.ADD_CHEST_REPORT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertChestReport[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, report.ReportId, report.ClanId, report.Player, report.Chest,
		report.Source, nullableInt(report.Level), nullableInt(report.Score), report.IsValid, report.CreatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting chest report for player: %s", report.Player)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CHEST_REPORT.Code,
			Message:     errors2.ADD_CHEST_REPORT.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Chest report: %s for player: %s stored successfully.", report.ReportId, report.Player))
	return nil
}

// GetChestReports fetches a clan's most recent chest reports.
func GetChestReports(clanId string, limit int) ([]model.ChestReport, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching chest reports."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CHEST_REPORTS.Code,
			Message:     errors2.FETCH_CHEST_REPORTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetChestReports[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId, limit)
	if err != nil {
		errorMsg := "Failed to fetch chest reports."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CHEST_REPORTS.Code,
			Message:     errors2.FETCH_CHEST_REPORTS.Message,
			Description: errorMsg,
		}, err)
	}

	reports := make([]model.ChestReport, 0, len(results))
	for _, row := range results {
		report := model.ChestReport{}
		report.ReportId = row["report_id"].(string)
		report.ClanId = row["clan_id"].(string)
		report.Player = row["player"].(string)
		report.Chest = row["chest"].(string)
		report.Source = row["source"].(string)
		report.Level = scanNullableInt(row["level"])
		report.Score = scanNullableInt(row["score"])
		report.IsValid = row["is_valid"].(bool)
		report.CreatedAt = row["created_at"].(int64)
		reports = append(reports, report)
	}
	return reports, nil
}

func scanNullableInt(raw interface{}) *int {

	if raw == nil {
		return nil
	}
	if v, ok := raw.(int64); ok {
		value := int(v)
		return &value
	}
	return nil
}

func nullableInt(v *int) interface{} {

	if v == nil {
		return nil
	}
	return *v
}
