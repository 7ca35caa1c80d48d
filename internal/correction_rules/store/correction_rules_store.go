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

	"github.com/wso2/clan-chest-service/internal/correction_rules/model"
	"github.com/wso2/clan-chest-service/internal/system/database/provider"
	"github.com/wso2/clan-chest-service/internal/system/database/scripts"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

// AddCorrectionRule adds a new correction rule.
func AddCorrectionRule(rule model.CorrectionRule) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for adding correction rule for field: %s", rule.Field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CORRECTION_RULE.Code,
			Message:     errors2.ADD_CORRECTION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertCorrectionRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, rule.RuleId, rule.ClanId, rule.Field, rule.MatchValue,
		rule.ReplacementValue, rule.Status, rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting correction rule for field: %s", rule.Field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CORRECTION_RULE.Code,
			Message:     errors2.ADD_CORRECTION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Correction rule: %s for field: %s added successfully.", rule.RuleId, rule.Field))
	return nil
}

// GetCorrectionRules fetches every correction rule of a clan.
func GetCorrectionRules(clanId string) ([]model.CorrectionRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching correction rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CORRECTION_RULES.Code,
			Message:     errors2.FETCH_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetCorrectionRules[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId)
	if err != nil {
		errorMsg := "Failed to fetch correction rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CORRECTION_RULES.Code,
			Message:     errors2.FETCH_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}

	rules := make([]model.CorrectionRule, 0, len(results))
	for _, row := range results {
		rules = append(rules, scanCorrectionRule(row))
	}
	return rules, nil
}

// GetCorrectionRulesByField fetches a clan's correction rules for one field.
func GetCorrectionRulesByField(clanId, field string) ([]model.CorrectionRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching correction rules for field: %s", field)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CORRECTION_RULES.Code,
			Message:     errors2.FETCH_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetCorrectionRulesByField[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId, field)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch correction rules for field: %s", field)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CORRECTION_RULES.Code,
			Message:     errors2.FETCH_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}

	rules := make([]model.CorrectionRule, 0, len(results))
	for _, row := range results {
		rules = append(rules, scanCorrectionRule(row))
	}
	return rules, nil
}

// GetCorrectionRule fetches a correction rule by its id.
func GetCorrectionRule(ruleId string) (*model.CorrectionRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching correction rule with rule id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CORRECTION_RULES.Code,
			Message:     errors2.FETCH_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetCorrectionRule[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch correction rule with rule id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CORRECTION_RULES.Code,
			Message:     errors2.FETCH_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No correction rule found for rule id: %s", ruleId))
		return nil, nil
	}

	rule := scanCorrectionRule(results[0])
	return &rule, nil
}

// UpdateCorrectionRule updates an existing correction rule.
func UpdateCorrectionRule(rule model.CorrectionRule) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating correction rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_CORRECTION_RULE.Code,
			Message:     errors2.UPDATE_CORRECTION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.UpdateCorrectionRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, rule.Field, rule.MatchValue, rule.ReplacementValue, rule.Status,
		rule.UpdatedAt, rule.RuleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update correction rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_CORRECTION_RULE.Code,
			Message:     errors2.UPDATE_CORRECTION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Correction rule: %s updated successfully.", rule.RuleId))
	return nil
}

// DeleteCorrectionRule deletes a correction rule by its id.
func DeleteCorrectionRule(ruleId string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting correction rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CORRECTION_RULES.Code,
			Message:     errors2.DELETE_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteCorrectionRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete correction rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CORRECTION_RULES.Code,
			Message:     errors2.DELETE_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Correction rule: %s deleted successfully.", ruleId))
	return nil
}

// DeleteCorrectionRulesForField deletes every correction rule of a clan for
// one field. Used by replace-mode imports.
func DeleteCorrectionRulesForField(clanId, field string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting correction rules for field: %s", field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CORRECTION_RULES.Code,
			Message:     errors2.DELETE_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteCorrectionRulesForField[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, clanId, field)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete correction rules for field: %s", field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CORRECTION_RULES.Code,
			Message:     errors2.DELETE_CORRECTION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Correction rules for field: %s deleted successfully.", field))
	return nil
}

func scanCorrectionRule(row map[string]interface{}) model.CorrectionRule {

	rule := model.CorrectionRule{}
	rule.RuleId = row["rule_id"].(string)
	rule.ClanId = row["clan_id"].(string)
	rule.Field = row["field"].(string)
	rule.MatchValue = row["match_value"].(string)
	rule.ReplacementValue = row["replacement_value"].(string)
	rule.Status = row["status"].(string)
	rule.CreatedAt = row["created_at"].(int64)
	rule.UpdatedAt = row["updated_at"].(int64)
	return rule
}
