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

	"github.com/wso2/clan-chest-service/internal/scoring_rules/model"
	"github.com/wso2/clan-chest-service/internal/system/database/provider"
	"github.com/wso2/clan-chest-service/internal/system/database/scripts"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

// AddScoringRule adds a new scoring rule.
func AddScoringRule(rule model.ScoringRule) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for adding scoring rule at order: %d", rule.RuleOrder)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_SCORING_RULE.Code,
			Message:     errors2.ADD_SCORING_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertScoringRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, rule.RuleId, rule.ClanId, rule.ChestMatch, rule.SourceMatch,
		nullableInt(rule.MinLevel), nullableInt(rule.MaxLevel), rule.Score, rule.RuleOrder,
		rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting scoring rule at order: %d", rule.RuleOrder)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_SCORING_RULE.Code,
			Message:     errors2.ADD_SCORING_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Scoring rule: %s added successfully.", rule.RuleId))
	return nil
}

// GetScoringRules fetches a clan's scoring rules in ascending rule order.
func GetScoringRules(clanId string) ([]model.ScoringRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching scoring rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SCORING_RULES.Code,
			Message:     errors2.FETCH_SCORING_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetScoringRules[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId)
	if err != nil {
		errorMsg := "Failed to fetch scoring rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SCORING_RULES.Code,
			Message:     errors2.FETCH_SCORING_RULES.Message,
			Description: errorMsg,
		}, err)
	}

	rules := make([]model.ScoringRule, 0, len(results))
	for _, row := range results {
		rules = append(rules, scanScoringRule(row))
	}
	return rules, nil
}

// GetScoringRule fetches a scoring rule by its id.
func GetScoringRule(ruleId string) (*model.ScoringRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching scoring rule with rule id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SCORING_RULES.Code,
			Message:     errors2.FETCH_SCORING_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetScoringRule[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch scoring rule with rule id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SCORING_RULES.Code,
			Message:     errors2.FETCH_SCORING_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No scoring rule found for rule id: %s", ruleId))
		return nil, nil
	}

	rule := scanScoringRule(results[0])
	return &rule, nil
}

// UpdateScoringRule updates an existing scoring rule.
func UpdateScoringRule(rule model.ScoringRule) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating scoring rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_SCORING_RULE.Code,
			Message:     errors2.UPDATE_SCORING_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.UpdateScoringRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, rule.ChestMatch, rule.SourceMatch, nullableInt(rule.MinLevel),
		nullableInt(rule.MaxLevel), rule.Score, rule.RuleOrder, rule.UpdatedAt, rule.RuleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update scoring rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_SCORING_RULE.Code,
			Message:     errors2.UPDATE_SCORING_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Scoring rule: %s updated successfully.", rule.RuleId))
	return nil
}

// DeleteScoringRule deletes a scoring rule by its id.
func DeleteScoringRule(ruleId string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting scoring rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_SCORING_RULES.Code,
			Message:     errors2.DELETE_SCORING_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteScoringRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete scoring rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_SCORING_RULES.Code,
			Message:     errors2.DELETE_SCORING_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Scoring rule: %s deleted successfully.", ruleId))
	return nil
}

func scanScoringRule(row map[string]interface{}) model.ScoringRule {

	rule := model.ScoringRule{}
	rule.RuleId = row["rule_id"].(string)
	rule.ClanId = row["clan_id"].(string)
	rule.ChestMatch = row["chest_match"].(string)
	rule.SourceMatch = row["source_match"].(string)
	rule.MinLevel = scanNullableInt(row["min_level"])
	rule.MaxLevel = scanNullableInt(row["max_level"])
	rule.Score = int(row["score"].(int64))
	rule.RuleOrder = int(row["rule_order"].(int64))
	rule.CreatedAt = row["created_at"].(int64)
	rule.UpdatedAt = row["updated_at"].(int64)
	return rule
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
