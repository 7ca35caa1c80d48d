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
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wso2/clan-chest-service/internal/scoring_rules/model"
	"github.com/wso2/clan-chest-service/internal/scoring_rules/store"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
)

type ScoringRuleServiceInterface interface {
	AddScoringRule(rule model.ScoringRule) (model.ScoringRule, error)
	GetScoringRules(clanId string) ([]model.ScoringRule, error)
	GetScoringRule(ruleId string) (*model.ScoringRule, error)
	PutScoringRule(rule model.ScoringRule) (model.ScoringRule, error)
	DeleteScoringRule(ruleId string) error
	DeleteScoringRules(ruleIds []string) error
}

// ScoringRuleService is the default implementation of the ScoringRuleServiceInterface.
type ScoringRuleService struct{}

// GetScoringRuleService creates a new instance of ScoringRuleService.
func GetScoringRuleService() ScoringRuleServiceInterface {

	return &ScoringRuleService{}
}

func (srs *ScoringRuleService) AddScoringRule(rule model.ScoringRule) (model.ScoringRule, error) {

	if err := validateScoringRule(&rule); err != nil {
		return model.ScoringRule{}, err
	}

	// A new rule with no explicit position goes after the clan's last one.
	if rule.RuleOrder == 0 {
		existing, err := store.GetScoringRules(rule.ClanId)
		if err != nil {
			return model.ScoringRule{}, err
		}
		for _, r := range existing {
			if r.RuleOrder >= rule.RuleOrder {
				rule.RuleOrder = r.RuleOrder + 1
			}
		}
	}

	rule.RuleId = uuid.New().String()
	currentTime := time.Now().UTC().Unix()
	rule.CreatedAt = currentTime
	rule.UpdatedAt = currentTime

	if err := store.AddScoringRule(rule); err != nil {
		return model.ScoringRule{}, err
	}
	return rule, nil
}

func (srs *ScoringRuleService) GetScoringRules(clanId string) ([]model.ScoringRule, error) {

	return store.GetScoringRules(clanId)
}

func (srs *ScoringRuleService) GetScoringRule(ruleId string) (*model.ScoringRule, error) {

	return store.GetScoringRule(ruleId)
}

func (srs *ScoringRuleService) PutScoringRule(rule model.ScoringRule) (model.ScoringRule, error) {

	existing, err := store.GetScoringRule(rule.RuleId)
	if err != nil {
		return model.ScoringRule{}, err
	}
	if existing == nil {
		return model.ScoringRule{}, errors2.NewClientError(errors2.ErrRuleNotFound, http.StatusNotFound)
	}

	if err := validateScoringRule(&rule); err != nil {
		return model.ScoringRule{}, err
	}

	rule.ClanId = existing.ClanId
	rule.CreatedAt = existing.CreatedAt
	rule.UpdatedAt = time.Now().UTC().Unix()

	if err := store.UpdateScoringRule(rule); err != nil {
		return model.ScoringRule{}, err
	}
	return rule, nil
}

func (srs *ScoringRuleService) DeleteScoringRule(ruleId string) error {

	rule, err := store.GetScoringRule(ruleId)
	if err != nil {
		return err
	}
	if rule == nil {
		return nil
	}
	return store.DeleteScoringRule(ruleId)
}

// DeleteScoringRules deletes the given rules one by one, stopping at the
// first store failure.
func (srs *ScoringRuleService) DeleteScoringRules(ruleIds []string) error {

	for _, ruleId := range ruleIds {
		if err := store.DeleteScoringRule(ruleId); err != nil {
			return err
		}
	}
	return nil
}

// validateScoringRule validates the rule and normalizes its match patterns.
// Empty chest and source patterns are allowed; an all-open rule is a valid
// catch-all.
func validateScoringRule(rule *model.ScoringRule) error {

	rule.ChestMatch = strings.TrimSpace(rule.ChestMatch)
	rule.SourceMatch = strings.TrimSpace(rule.SourceMatch)

	if rule.MinLevel != nil && rule.MaxLevel != nil && *rule.MinLevel > *rule.MaxLevel {
		return errors2.NewClientError(errors2.ErrInvalidLevelBounds, http.StatusBadRequest)
	}
	return nil
}
