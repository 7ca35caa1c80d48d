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
	"github.com/wso2/clan-chest-service/internal/correction_rules/model"
	"github.com/wso2/clan-chest-service/internal/correction_rules/store"
	"github.com/wso2/clan-chest-service/internal/ruleimport"
	"github.com/wso2/clan-chest-service/internal/system/constants"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
)

type CorrectionRuleServiceInterface interface {
	AddCorrectionRule(rule model.CorrectionRule) (model.CorrectionRule, error)
	GetCorrectionRules(clanId string) ([]model.CorrectionRule, error)
	GetCorrectionRulesByField(clanId, field string) ([]model.CorrectionRule, error)
	GetCorrectionRule(ruleId string) (*model.CorrectionRule, error)
	PutCorrectionRule(rule model.CorrectionRule) (model.CorrectionRule, error)
	DeleteCorrectionRule(ruleId string) error
	DeleteCorrectionRules(ruleIds []string) error
	ImportPipeline(clanId, field string) *ruleimport.Pipeline
	ApplyImport(opts ruleimport.Options) (ruleimport.Summary, error)
	ExportCorrectionRules(clanId, field string) ([]ruleimport.Entry, error)
}

// CorrectionRuleService is the default implementation of the CorrectionRuleServiceInterface.
type CorrectionRuleService struct{}

// Pipelines are keyed by clan and field so one admin's parse and confirmation
// never leak into another import's apply.
var (
	pipelinesLock sync.Mutex
	pipelines     = make(map[string]*ruleimport.Pipeline)
)

// GetCorrectionRuleService creates a new instance of CorrectionRuleService.
func GetCorrectionRuleService() CorrectionRuleServiceInterface {

	return &CorrectionRuleService{}
}

func (crs *CorrectionRuleService) AddCorrectionRule(rule model.CorrectionRule) (model.CorrectionRule, error) {

	if err := validateCorrectionRule(&rule); err != nil {
		return model.CorrectionRule{}, err
	}

	rule.RuleId = uuid.New().String()
	currentTime := time.Now().UTC().Unix()
	rule.CreatedAt = currentTime
	rule.UpdatedAt = currentTime

	if err := store.AddCorrectionRule(rule); err != nil {
		return model.CorrectionRule{}, err
	}
	return rule, nil
}

func (crs *CorrectionRuleService) GetCorrectionRules(clanId string) ([]model.CorrectionRule, error) {

	return store.GetCorrectionRules(clanId)
}

func (crs *CorrectionRuleService) GetCorrectionRulesByField(clanId, field string) ([]model.CorrectionRule, error) {

	return store.GetCorrectionRulesByField(clanId, field)
}

func (crs *CorrectionRuleService) GetCorrectionRule(ruleId string) (*model.CorrectionRule, error) {

	return store.GetCorrectionRule(ruleId)
}

func (crs *CorrectionRuleService) PutCorrectionRule(rule model.CorrectionRule) (model.CorrectionRule, error) {

	existing, err := store.GetCorrectionRule(rule.RuleId)
	if err != nil {
		return model.CorrectionRule{}, err
	}
	if existing == nil {
		return model.CorrectionRule{}, errors2.NewClientError(errors2.ErrRuleNotFound, http.StatusNotFound)
	}

	if err := validateCorrectionRule(&rule); err != nil {
		return model.CorrectionRule{}, err
	}

	rule.ClanId = existing.ClanId
	rule.CreatedAt = existing.CreatedAt
	rule.UpdatedAt = time.Now().UTC().Unix()

	if err := store.UpdateCorrectionRule(rule); err != nil {
		return model.CorrectionRule{}, err
	}
	return rule, nil
}

func (crs *CorrectionRuleService) DeleteCorrectionRule(ruleId string) error {

	rule, err := store.GetCorrectionRule(ruleId)
	if err != nil {
		return err
	}
	if rule == nil {
		return nil
	}
	return store.DeleteCorrectionRule(ruleId)
}

// DeleteCorrectionRules deletes the given rules one by one, stopping at the
// first store failure.
func (crs *CorrectionRuleService) DeleteCorrectionRules(ruleIds []string) error {

	for _, ruleId := range ruleIds {
		if err := store.DeleteCorrectionRule(ruleId); err != nil {
			return err
		}
	}
	return nil
}

// ImportPipeline returns the correction rule import pipeline for one clan and
// field, creating it on first use.
func (crs *CorrectionRuleService) ImportPipeline(clanId, field string) *ruleimport.Pipeline {

	pipelinesLock.Lock()
	defer pipelinesLock.Unlock()

	key := clanId + "|" + field
	if pipelines[key] == nil {
		pipelines[key] = ruleimport.NewPipeline(ruleimport.CorrectionRules, clanId, field)
	}
	return pipelines[key]
}

// ApplyImport runs the parsed import against the correction rule store.
func (crs *CorrectionRuleService) ApplyImport(opts ruleimport.Options) (ruleimport.Summary, error) {

	if opts.ClanId == "" {
		return ruleimport.Summary{}, errors2.NewClientError(errors2.ErrClanIdRequired, http.StatusBadRequest)
	}
	if !constants.AllowedRuleFields[opts.Field] {
		return ruleimport.Summary{}, errors2.NewClientError(errors2.ErrInvalidRuleField, http.StatusBadRequest)
	}
	return crs.ImportPipeline(opts.ClanId, opts.Field).Apply(&correctionRuleApplier{}, opts)
}

// ExportCorrectionRules returns a clan's rules for one field as import
// entries, in the import file's column order.
func (crs *CorrectionRuleService) ExportCorrectionRules(clanId, field string) ([]ruleimport.Entry, error) {

	rules, err := store.GetCorrectionRulesByField(clanId, field)
	if err != nil {
		return nil, err
	}

	entries := make([]ruleimport.Entry, 0, len(rules))
	for _, rule := range rules {
		entries = append(entries, ruleimport.Entry{
			Field:            rule.Field,
			MatchValue:       rule.MatchValue,
			ReplacementValue: rule.ReplacementValue,
			Status:           rule.Status,
		})
	}
	return entries, nil
}

// correctionRuleApplier adapts the store to the import pipeline.
type correctionRuleApplier struct{}

func (a *correctionRuleApplier) Existing(clanId, field string) ([]ruleimport.Entry, error) {

	rules, err := store.GetCorrectionRulesByField(clanId, field)
	if err != nil {
		return nil, err
	}
	entries := make([]ruleimport.Entry, 0, len(rules))
	for _, rule := range rules {
		entries = append(entries, ruleimport.Entry{
			Field:            rule.Field,
			MatchValue:       rule.MatchValue,
			ReplacementValue: rule.ReplacementValue,
			Status:           rule.Status,
		})
	}
	return entries, nil
}

func (a *correctionRuleApplier) DeleteField(clanId, field string) error {

	return store.DeleteCorrectionRulesForField(clanId, field)
}

func (a *correctionRuleApplier) Insert(clanId string, entries []ruleimport.Entry) error {

	currentTime := time.Now().UTC().Unix()
	for _, entry := range entries {
		rule := model.CorrectionRule{
			RuleId:           uuid.New().String(),
			ClanId:           clanId,
			Field:            entry.Field,
			MatchValue:       entry.MatchValue,
			ReplacementValue: entry.ReplacementValue,
			Status:           entry.Status,
			CreatedAt:        currentTime,
			UpdatedAt:        currentTime,
		}
		if err := store.AddCorrectionRule(rule); err != nil {
			return err
		}
	}
	return nil
}

// validateCorrectionRule validates the rule and normalizes its enums.
func validateCorrectionRule(rule *model.CorrectionRule) error {

	rule.Field = strings.ToLower(strings.TrimSpace(rule.Field))
	rule.Status = strings.ToLower(strings.TrimSpace(rule.Status))
	rule.MatchValue = strings.TrimSpace(rule.MatchValue)
	rule.ReplacementValue = strings.TrimSpace(rule.ReplacementValue)

	if !constants.AllowedRuleFields[rule.Field] {
		return errors2.NewClientError(errors2.ErrInvalidRuleField, http.StatusBadRequest)
	}
	if rule.MatchValue == "" {
		return errors2.NewClientError(errors2.ErrMatchValueRequired, http.StatusBadRequest)
	}
	if rule.ReplacementValue == "" {
		return errors2.NewClientError(errors2.ErrReplacementRequired, http.StatusBadRequest)
	}
	if rule.Status == "" {
		rule.Status = constants.StatusActive
	}
	if !constants.AllowedCorrectionStatuses[rule.Status] {
		return errors2.NewClientError(errors2.ErrInvalidRuleStatus, http.StatusBadRequest)
	}
	return nil
}
