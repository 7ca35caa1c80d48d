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

package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/wso2/clan-chest-service/internal/rulelist"
	ruleModel "github.com/wso2/clan-chest-service/internal/scoring_rules/model"
	"github.com/wso2/clan-chest-service/internal/scoring_rules/provider"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/pagination"
	"github.com/wso2/clan-chest-service/internal/system/utils"
)

type ScoringRuleHandler struct{}

func NewScoringRuleHandler() *ScoringRuleHandler {
	return &ScoringRuleHandler{}
}

// GetScoringRules handles GET /scoring-rules. The clan's rules are served
// through the reconciler, so search, sort_by, sort_dir, page and page_size
// all shape the returned view. The default order is evaluation order.
func (h *ScoringRuleHandler) GetScoringRules(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	clanId := r.URL.Query().Get("clan_id")
	if clanId == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrClanIdRequired, http.StatusBadRequest))
		return
	}
	page, pageSize, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrInvalidPagination, http.StatusBadRequest))
		return
	}

	service := provider.NewScoringRuleProvider().GetScoringRuleService()
	rules, err := service.GetScoringRules(clanId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, listScoringRules(rules, r.URL.Query(), page, pageSize))
}

// GetScoringRule handles GET /scoring-rules/{id}
func (h *ScoringRuleHandler) GetScoringRule(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewScoringRuleProvider().GetScoringRuleService()
	rule, err := service.GetScoringRule(r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if rule == nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrRuleNotFound, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, rule)
}

// AddScoringRule handles POST /scoring-rules
func (h *ScoringRuleHandler) AddScoringRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var rule ruleModel.ScoringRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ADD_SCORING_RULE.Code,
			Message:     errors.ADD_SCORING_RULE.Message,
			Description: utils.HandleDecodeError(err, "scoring rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewScoringRuleProvider().GetScoringRuleService()
	created, err := service.AddScoringRule(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// UpdateScoringRule handles PUT /scoring-rules/{id}
func (h *ScoringRuleHandler) UpdateScoringRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var rule ruleModel.ScoringRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UPDATE_SCORING_RULE.Code,
			Message:     errors.UPDATE_SCORING_RULE.Message,
			Description: utils.HandleDecodeError(err, "scoring rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}
	rule.RuleId = r.PathValue("id")

	service := provider.NewScoringRuleProvider().GetScoringRuleService()
	updated, err := service.PutScoringRule(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteScoringRule handles DELETE /scoring-rules/{id}
func (h *ScoringRuleHandler) DeleteScoringRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewScoringRuleProvider().GetScoringRuleService()
	if err := service.DeleteScoringRule(r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteScoringRules handles POST /scoring-rules/remove
func (h *ScoringRuleHandler) DeleteScoringRules(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var body struct {
		RuleIds []string `json:"rule_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.DELETE_SCORING_RULES.Code,
			Message:     errors.DELETE_SCORING_RULES.Message,
			Description: utils.HandleDecodeError(err, "rule id list"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewScoringRuleProvider().GetScoringRuleService()
	if err := service.DeleteScoringRules(body.RuleIds); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func requireAdmin(r *http.Request) error {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		return err
	}
	return authn.RequireAdmin(claims)
}

// scoringListConfig wires the rule columns into the generic reconciler.
// Scoring rules have no field or status column; those filters stay inert.
var scoringListConfig = rulelist.Config[string, ruleModel.ScoringRule]{
	SearchText: func(r ruleModel.ScoringRule) string {
		return r.ChestMatch + " " + r.SourceMatch
	},
	SortKeys: map[string]func(ruleModel.ScoringRule) interface{}{
		"chest_match":  func(r ruleModel.ScoringRule) interface{} { return r.ChestMatch },
		"source_match": func(r ruleModel.ScoringRule) interface{} { return r.SourceMatch },
		"min_level":    func(r ruleModel.ScoringRule) interface{} { return r.MinLevel },
		"max_level":    func(r ruleModel.ScoringRule) interface{} { return r.MaxLevel },
		"score":        func(r ruleModel.ScoringRule) interface{} { return r.Score },
		"rule_order":   func(r ruleModel.ScoringRule) interface{} { return r.RuleOrder },
	},
}

// listScoringRules applies the request's view parameters to the clan's rules
// and returns one page of the derived view.
func listScoringRules(rules []ruleModel.ScoringRule, q url.Values,
	page, pageSize int) map[string]interface{} {

	list := rulelist.New(scoringListConfig, "rule_order", pageSize)
	list.Load(rules)
	list.Search(q.Get("search"))
	if sortBy := q.Get("sort_by"); sortBy != "" {
		list.Sort(sortBy, rulelist.Direction(q.Get("sort_dir")))
	}
	list.SetPage(page)

	visible := list.Visible()
	if visible == nil {
		visible = []ruleModel.ScoringRule{}
	}
	return map[string]interface{}{
		"rules": visible,
		"pagination": pagination.Pagination{
			Count:    len(list.Filtered()),
			Page:     list.Page(),
			PageSize: pageSize,
		},
		"page_count": list.PageCount(),
	}
}
