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

	"github.com/wso2/clan-chest-service/internal/system/database/provider"
	"github.com/wso2/clan-chest-service/internal/system/database/scripts"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
	"github.com/wso2/clan-chest-service/internal/validation_rules/model"
)

// AddValidationRule adds a new validation rule.
func AddValidationRule(rule model.ValidationRule) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for adding validation rule for field: %s", rule.Field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_VALIDATION_RULE.Code,
			Message:     errors2.ADD_VALIDATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertValidationRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, rule.RuleId, rule.ClanId, rule.Field, rule.MatchValue, rule.Status,
		rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting validation rule for field: %s", rule.Field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_VALIDATION_RULE.Code,
			Message:     errors2.ADD_VALIDATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Validation rule: %s for field: %s added successfully.", rule.RuleId, rule.Field))
	return nil
}

// GetValidationRules fetches every validation rule of a clan.
func GetValidationRules(clanId string) ([]model.ValidationRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching validation rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_VALIDATION_RULES.Code,
			Message:     errors2.FETCH_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetValidationRules[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId)
	if err != nil {
		errorMsg := "Failed to fetch validation rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_VALIDATION_RULES.Code,
			Message:     errors2.FETCH_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}

	rules := make([]model.ValidationRule, 0, len(results))
	for _, row := range results {
		rules = append(rules, scanValidationRule(row))
	}
	return rules, nil
}

// GetValidationRulesByField fetches a clan's validation rules for one field.
func GetValidationRulesByField(clanId, field string) ([]model.ValidationRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching validation rules for field: %s", field)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_VALIDATION_RULES.Code,
			Message:     errors2.FETCH_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetValidationRulesByField[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, clanId, field)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch validation rules for field: %s", field)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_VALIDATION_RULES.Code,
			Message:     errors2.FETCH_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}

	rules := make([]model.ValidationRule, 0, len(results))
	for _, row := range results {
		rules = append(rules, scanValidationRule(row))
	}
	return rules, nil
}

// GetValidationRule fetches a validation rule by its id.
func GetValidationRule(ruleId string) (*model.ValidationRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching validation rule with rule id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_VALIDATION_RULES.Code,
			Message:     errors2.FETCH_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetValidationRule[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch validation rule with rule id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_VALIDATION_RULES.Code,
			Message:     errors2.FETCH_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No validation rule found for rule id: %s", ruleId))
		return nil, nil
	}

	rule := scanValidationRule(results[0])
	return &rule, nil
}

// UpdateValidationRule updates an existing validation rule.
func UpdateValidationRule(rule model.ValidationRule) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating validation rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_VALIDATION_RULE.Code,
			Message:     errors2.UPDATE_VALIDATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.UpdateValidationRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, rule.Field, rule.MatchValue, rule.Status, rule.UpdatedAt, rule.RuleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update validation rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_VALIDATION_RULE.Code,
			Message:     errors2.UPDATE_VALIDATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Validation rule: %s updated successfully.", rule.RuleId))
	return nil
}

// DeleteValidationRule deletes a validation rule by its id.
func DeleteValidationRule(ruleId string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting validation rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_VALIDATION_RULES.Code,
			Message:     errors2.DELETE_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteValidationRule[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete validation rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_VALIDATION_RULES.Code,
			Message:     errors2.DELETE_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Validation rule: %s deleted successfully.", ruleId))
	return nil
}

// DeleteValidationRulesForField deletes every validation rule of a clan for
// one field. Used by replace-mode imports.
func DeleteValidationRulesForField(clanId, field string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting validation rules for field: %s", field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_VALIDATION_RULES.Code,
			Message:     errors2.DELETE_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteValidationRulesForField[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, clanId, field)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete validation rules for field: %s", field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_VALIDATION_RULES.Code,
			Message:     errors2.DELETE_VALIDATION_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Validation rules for field: %s deleted successfully.", field))
	return nil
}

func scanValidationRule(row map[string]interface{}) model.ValidationRule {

	rule := model.ValidationRule{}
	rule.RuleId = row["rule_id"].(string)
	rule.ClanId = row["clan_id"].(string)
	rule.Field = row["field"].(string)
	rule.MatchValue = row["match_value"].(string)
	rule.Status = row["status"].(string)
	rule.CreatedAt = row["created_at"].(int64)
	rule.UpdatedAt = row["updated_at"].(int64)
	return rule
}
