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

	"github.com/wso2/clan-chest-service/internal/ruleimport"
	"github.com/wso2/clan-chest-service/internal/rulelist"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/pagination"
	"github.com/wso2/clan-chest-service/internal/system/utils"
	ruleModel "github.com/wso2/clan-chest-service/internal/validation_rules/model"
	"github.com/wso2/clan-chest-service/internal/validation_rules/provider"
)

type ValidationRuleHandler struct{}

func NewValidationRuleHandler() *ValidationRuleHandler {
	return &ValidationRuleHandler{}
}

// GetValidationRules handles GET /validation-rules. The clan's rules are
// served through the reconciler, so search, field, status, sort_by, sort_dir,
// page and page_size all shape the returned view.
func (h *ValidationRuleHandler) GetValidationRules(w http.ResponseWriter, r *http.Request) {

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

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	rules, err := service.GetValidationRules(clanId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, listValidationRules(rules, r.URL.Query(), page, pageSize))
}

// GetValidationRule handles GET /validation-rules/{id}
func (h *ValidationRuleHandler) GetValidationRule(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleId := r.PathValue("id")
	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	rule, err := service.GetValidationRule(ruleId)
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

// AddValidationRule handles POST /validation-rules
func (h *ValidationRuleHandler) AddValidationRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var rule ruleModel.ValidationRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ADD_VALIDATION_RULE.Code,
			Message:     errors.ADD_VALIDATION_RULE.Message,
			Description: utils.HandleDecodeError(err, "validation rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	created, err := service.AddValidationRule(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// UpdateValidationRule handles PUT /validation-rules/{id}
func (h *ValidationRuleHandler) UpdateValidationRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var rule ruleModel.ValidationRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UPDATE_VALIDATION_RULE.Code,
			Message:     errors.UPDATE_VALIDATION_RULE.Message,
			Description: utils.HandleDecodeError(err, "validation rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}
	rule.RuleId = r.PathValue("id")

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	updated, err := service.PutValidationRule(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteValidationRule handles DELETE /validation-rules/{id}
func (h *ValidationRuleHandler) DeleteValidationRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	if err := service.DeleteValidationRule(r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteValidationRules handles POST /validation-rules/remove
func (h *ValidationRuleHandler) DeleteValidationRules(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var body struct {
		RuleIds []string `json:"rule_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.DELETE_VALIDATION_RULES.Code,
			Message:     errors.DELETE_VALIDATION_RULES.Message,
			Description: utils.HandleDecodeError(err, "rule id list"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	if err := service.DeleteValidationRules(body.RuleIds); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportValidationRules handles POST /validation-rules/import. The request
// body is the raw rule file; the parse result is returned for review before
// apply. The clan and field scope the pipeline, so parallel imports for
// different clans never share parse state or a confirmation.
func (h *ValidationRuleHandler) ImportValidationRules(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	clanId := r.URL.Query().Get("clan_id")
	if clanId == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrClanIdRequired, http.StatusBadRequest))
		return
	}
	field := r.URL.Query().Get("field")
	if !ruleimport.ValidField(field) {
		utils.HandleError(w, errors.NewClientError(errors.ErrInvalidRuleField, http.StatusBadRequest))
		return
	}

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	pipeline := service.ImportPipeline(clanId, field)
	pipeline.ChooseFile(r.URL.Query().Get("file_name"))
	result := pipeline.Parse(r.Body)

	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// ConfirmImport handles POST /validation-rules/import/confirm. A replace-mode
// apply needs the open, proceed and phrase steps in order.
func (h *ValidationRuleHandler) ConfirmImport(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var body struct {
		ClanId string `json:"clan_id"`
		Field  string `json:"field"`
		Action string `json:"action"` // open, proceed, phrase, cancel
		Phrase string `json:"phrase,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.IMPORT_APPLY.Code,
			Message:     errors.IMPORT_APPLY.Message,
			Description: utils.HandleDecodeError(err, "confirmation step"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}
	if body.ClanId == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrClanIdRequired, http.StatusBadRequest))
		return
	}
	if !ruleimport.ValidField(body.Field) {
		utils.HandleError(w, errors.NewClientError(errors.ErrInvalidRuleField, http.StatusBadRequest))
		return
	}

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	confirm := service.ImportPipeline(body.ClanId, body.Field).Confirmation()

	var err error
	switch body.Action {
	case "open":
		confirm.Open()
	case "proceed":
		err = confirm.Proceed()
	case "phrase":
		err = confirm.SubmitPhrase(body.Phrase)
	case "cancel":
		confirm.Cancel()
	default:
		err = errors.NewClientError(errors.ErrConfirmationRequired, http.StatusBadRequest)
	}
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"state":     confirm.State(),
		"confirmed": confirm.Confirmed(),
	})
}

// ApplyImport handles POST /validation-rules/import/apply
func (h *ValidationRuleHandler) ApplyImport(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var opts ruleimport.Options
	body := struct {
		ClanId           string `json:"clan_id"`
		Field            string `json:"field"`
		Mode             string `json:"mode"`
		IgnoreDuplicates *bool  `json:"ignore_duplicates,omitempty"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.IMPORT_APPLY.Code,
			Message:     errors.IMPORT_APPLY.Message,
			Description: utils.HandleDecodeError(err, "import options"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	opts.ClanId = body.ClanId
	opts.Field = body.Field
	opts.Mode = body.Mode
	// Duplicate skipping is on unless explicitly turned off.
	opts.IgnoreDuplicates = body.IgnoreDuplicates == nil || *body.IgnoreDuplicates

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	summary, err := service.ApplyImport(opts)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, summary)
}

// ExportValidationRules handles GET /validation-rules/export
func (h *ValidationRuleHandler) ExportValidationRules(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	clanId := r.URL.Query().Get("clan_id")
	if clanId == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrClanIdRequired, http.StatusBadRequest))
		return
	}
	field := r.URL.Query().Get("field")
	if !ruleimport.ValidField(field) {
		utils.HandleError(w, errors.NewClientError(errors.ErrInvalidRuleField, http.StatusBadRequest))
		return
	}

	service := provider.NewValidationRuleProvider().GetValidationRuleService()
	entries, err := service.ExportValidationRules(clanId, field)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="validation_rules.csv"`)
	if err := ruleimport.Export(ruleimport.ValidationRules, entries, w); err != nil {
		utils.HandleError(w, err)
	}
}

func requireAdmin(r *http.Request) error {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		return err
	}
	return authn.RequireAdmin(claims)
}

// validationListConfig wires the rule columns into the generic reconciler.
var validationListConfig = rulelist.Config[string, ruleModel.ValidationRule]{
	SearchText: func(r ruleModel.ValidationRule) string { return r.MatchValue },
	Field:      func(r ruleModel.ValidationRule) string { return r.Field },
	Status:     func(r ruleModel.ValidationRule) string { return r.Status },
	SortKeys: map[string]func(ruleModel.ValidationRule) interface{}{
		"match_value": func(r ruleModel.ValidationRule) interface{} { return r.MatchValue },
		"field":       func(r ruleModel.ValidationRule) interface{} { return r.Field },
		"status":      func(r ruleModel.ValidationRule) interface{} { return r.Status },
		"created_at":  func(r ruleModel.ValidationRule) interface{} { return r.CreatedAt },
	},
}

// listValidationRules applies the request's view parameters to the clan's
// rules and returns one page of the derived view.
func listValidationRules(rules []ruleModel.ValidationRule, q url.Values,
	page, pageSize int) map[string]interface{} {

	list := rulelist.New(validationListConfig, "match_value", pageSize)
	list.Load(rules)
	list.Search(q.Get("search"))
	list.FilterField(q.Get("field"))
	list.FilterStatus(q.Get("status"))
	if sortBy := q.Get("sort_by"); sortBy != "" {
		list.Sort(sortBy, rulelist.Direction(q.Get("sort_dir")))
	}
	list.SetPage(page)

	visible := list.Visible()
	if visible == nil {
		visible = []ruleModel.ValidationRule{}
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
