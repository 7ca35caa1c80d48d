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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wso2/clan-chest-service/internal/ruleimport"
	"github.com/wso2/clan-chest-service/internal/system/constants"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/validation_rules/model"
	"github.com/wso2/clan-chest-service/internal/validation_rules/store"
)

type ValidationRuleServiceInterface interface {
	AddValidationRule(rule model.ValidationRule) (model.ValidationRule, error)
	GetValidationRules(clanId string) ([]model.ValidationRule, error)
	GetValidationRulesByField(clanId, field string) ([]model.ValidationRule, error)
	GetValidationRule(ruleId string) (*model.ValidationRule, error)
	PutValidationRule(rule model.ValidationRule) (model.ValidationRule, error)
	DeleteValidationRule(ruleId string) error
	DeleteValidationRules(ruleIds []string) error
	ImportPipeline(clanId, field string) *ruleimport.Pipeline
	ApplyImport(opts ruleimport.Options) (ruleimport.Summary, error)
	ExportValidationRules(clanId, field string) ([]ruleimport.Entry, error)
}

// ValidationRuleService is the default implementation of the ValidationRuleServiceInterface.
type ValidationRuleService struct{}

// Pipelines are keyed by clan and field so one admin's parse and confirmation
// never leak into another import's apply.
var (
	pipelinesLock sync.Mutex
	pipelines     = make(map[string]*ruleimport.Pipeline)
)

// GetValidationRuleService creates a new instance of ValidationRuleService.
func GetValidationRuleService() ValidationRuleServiceInterface {

	return &ValidationRuleService{}
}

func (vrs *ValidationRuleService) AddValidationRule(rule model.ValidationRule) (model.ValidationRule, error) {

	if err := validateValidationRule(&rule); err != nil {
		return model.ValidationRule{}, err
	}

	rule.RuleId = uuid.New().String()
	currentTime := time.Now().UTC().Unix()
	rule.CreatedAt = currentTime
	rule.UpdatedAt = currentTime

	if err := store.AddValidationRule(rule); err != nil {
		return model.ValidationRule{}, err
	}
	return rule, nil
}

func (vrs *ValidationRuleService) GetValidationRules(clanId string) ([]model.ValidationRule, error) {

	return store.GetValidationRules(clanId)
}

func (vrs *ValidationRuleService) GetValidationRulesByField(clanId, field string) ([]model.ValidationRule, error) {

	return store.GetValidationRulesByField(clanId, field)
}

func (vrs *ValidationRuleService) GetValidationRule(ruleId string) (*model.ValidationRule, error) {

	return store.GetValidationRule(ruleId)
}

func (vrs *ValidationRuleService) PutValidationRule(rule model.ValidationRule) (model.ValidationRule, error) {

	existing, err := store.GetValidationRule(rule.RuleId)
	if err != nil {
		return model.ValidationRule{}, err
	}
	if existing == nil {
		return model.ValidationRule{}, errors2.NewClientError(errors2.ErrRuleNotFound, http.StatusNotFound)
	}

	if err := validateValidationRule(&rule); err != nil {
		return model.ValidationRule{}, err
	}

	rule.ClanId = existing.ClanId
	rule.CreatedAt = existing.CreatedAt
	rule.UpdatedAt = time.Now().UTC().Unix()

	if err := store.UpdateValidationRule(rule); err != nil {
		return model.ValidationRule{}, err
	}
	return rule, nil
}

func (vrs *ValidationRuleService) DeleteValidationRule(ruleId string) error {

	rule, err := store.GetValidationRule(ruleId)
	if err != nil {
		return err
	}
	if rule == nil {
		return nil
	}
	return store.DeleteValidationRule(ruleId)
}

// DeleteValidationRules deletes the given rules one by one, stopping at the
// first store failure.
func (vrs *ValidationRuleService) DeleteValidationRules(ruleIds []string) error {

	for _, ruleId := range ruleIds {
		if err := store.DeleteValidationRule(ruleId); err != nil {
			return err
		}
	}
	return nil
}

// ImportPipeline returns the validation rule import pipeline for one clan and
// field, creating it on first use.
func (vrs *ValidationRuleService) ImportPipeline(clanId, field string) *ruleimport.Pipeline {

	pipelinesLock.Lock()
	defer pipelinesLock.Unlock()

	key := clanId + "|" + field
	if pipelines[key] == nil {
		pipelines[key] = ruleimport.NewPipeline(ruleimport.ValidationRules, clanId, field)
	}
	return pipelines[key]
}

// ApplyImport runs the parsed import against the validation rule store.
func (vrs *ValidationRuleService) ApplyImport(opts ruleimport.Options) (ruleimport.Summary, error) {

	if opts.ClanId == "" {
		return ruleimport.Summary{}, errors2.NewClientError(errors2.ErrClanIdRequired, http.StatusBadRequest)
	}
	if !constants.AllowedRuleFields[opts.Field] {
		return ruleimport.Summary{}, errors2.NewClientError(errors2.ErrInvalidRuleField, http.StatusBadRequest)
	}
	return vrs.ImportPipeline(opts.ClanId, opts.Field).Apply(&validationRuleApplier{}, opts)
}

// ExportValidationRules returns a clan's rules for one field as import
// entries, in the import file's column order.
func (vrs *ValidationRuleService) ExportValidationRules(clanId, field string) ([]ruleimport.Entry, error) {

	rules, err := store.GetValidationRulesByField(clanId, field)
	if err != nil {
		return nil, err
	}

	entries := make([]ruleimport.Entry, 0, len(rules))
	for _, rule := range rules {
		entries = append(entries, ruleimport.Entry{
			Field:      rule.Field,
			MatchValue: rule.MatchValue,
			Status:     rule.Status,
		})
	}
	return entries, nil
}

// validationRuleApplier adapts the store to the import pipeline.
type validationRuleApplier struct{}

func (a *validationRuleApplier) Existing(clanId, field string) ([]ruleimport.Entry, error) {

	rules, err := store.GetValidationRulesByField(clanId, field)
	if err != nil {
		return nil, err
	}
	entries := make([]ruleimport.Entry, 0, len(rules))
	for _, rule := range rules {
		entries = append(entries, ruleimport.Entry{
			Field:      rule.Field,
			MatchValue: rule.MatchValue,
			Status:     rule.Status,
		})
	}
	return entries, nil
}

func (a *validationRuleApplier) DeleteField(clanId, field string) error {

	return store.DeleteValidationRulesForField(clanId, field)
}

func (a *validationRuleApplier) Insert(clanId string, entries []ruleimport.Entry) error {

	currentTime := time.Now().UTC().Unix()
	for _, entry := range entries {
		rule := model.ValidationRule{
			RuleId:     uuid.New().String(),
			ClanId:     clanId,
			Field:      entry.Field,
			MatchValue: entry.MatchValue,
			Status:     entry.Status,
			CreatedAt:  currentTime,
			UpdatedAt:  currentTime,
		}
		if err := store.AddValidationRule(rule); err != nil {
			return err
		}
	}
	return nil
}

// validateValidationRule validates the rule and normalizes its enums.
func validateValidationRule(rule *model.ValidationRule) error {

	rule.Field = strings.ToLower(strings.TrimSpace(rule.Field))
	rule.Status = strings.ToLower(strings.TrimSpace(rule.Status))
	rule.MatchValue = strings.TrimSpace(rule.MatchValue)

	if !constants.AllowedRuleFields[rule.Field] {
		return errors2.NewClientError(errors2.ErrInvalidRuleField, http.StatusBadRequest)
	}
	if rule.MatchValue == "" {
		return errors2.NewClientError(errors2.ErrMatchValueRequired, http.StatusBadRequest)
	}
	if rule.Status == "" {
		rule.Status = constants.StatusValid
	}
	if !constants.AllowedValidationStatuses[rule.Status] {
		return errors2.NewClientError(errors2.ErrInvalidRuleStatus, http.StatusBadRequest)
	}
	return nil
}
