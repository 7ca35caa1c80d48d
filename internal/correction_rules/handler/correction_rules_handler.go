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

	ruleModel "github.com/wso2/clan-chest-service/internal/correction_rules/model"
	"github.com/wso2/clan-chest-service/internal/correction_rules/provider"
	"github.com/wso2/clan-chest-service/internal/ruleimport"
	"github.com/wso2/clan-chest-service/internal/rulelist"
	"github.com/wso2/clan-chest-service/internal/system/authn"
	"github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/pagination"
	"github.com/wso2/clan-chest-service/internal/system/utils"
)

type CorrectionRuleHandler struct{}

func NewCorrectionRuleHandler() *CorrectionRuleHandler {
	return &CorrectionRuleHandler{}
}

// GetCorrectionRules handles GET /correction-rules. The clan's rules are
// served through the reconciler, so search, field, status, sort_by, sort_dir,
// page and page_size all shape the returned view.
func (h *CorrectionRuleHandler) GetCorrectionRules(w http.ResponseWriter, r *http.Request) {

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

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	rules, err := service.GetCorrectionRules(clanId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, listCorrectionRules(rules, r.URL.Query(), page, pageSize))
}

// GetCorrectionRule handles GET /correction-rules/{id}
func (h *CorrectionRuleHandler) GetCorrectionRule(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	rule, err := service.GetCorrectionRule(r.PathValue("id"))
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

// AddCorrectionRule handles POST /correction-rules
func (h *CorrectionRuleHandler) AddCorrectionRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var rule ruleModel.CorrectionRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ADD_CORRECTION_RULE.Code,
			Message:     errors.ADD_CORRECTION_RULE.Message,
			Description: utils.HandleDecodeError(err, "correction rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	created, err := service.AddCorrectionRule(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// UpdateCorrectionRule handles PUT /correction-rules/{id}
func (h *CorrectionRuleHandler) UpdateCorrectionRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var rule ruleModel.CorrectionRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UPDATE_CORRECTION_RULE.Code,
			Message:     errors.UPDATE_CORRECTION_RULE.Message,
			Description: utils.HandleDecodeError(err, "correction rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}
	rule.RuleId = r.PathValue("id")

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	updated, err := service.PutCorrectionRule(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteCorrectionRule handles DELETE /correction-rules/{id}
func (h *CorrectionRuleHandler) DeleteCorrectionRule(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	if err := service.DeleteCorrectionRule(r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCorrectionRules handles POST /correction-rules/remove
func (h *CorrectionRuleHandler) DeleteCorrectionRules(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var body struct {
		RuleIds []string `json:"rule_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.DELETE_CORRECTION_RULES.Code,
			Message:     errors.DELETE_CORRECTION_RULES.Message,
			Description: utils.HandleDecodeError(err, "rule id list"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	if err := service.DeleteCorrectionRules(body.RuleIds); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportCorrectionRules handles POST /correction-rules/import. The request
// body is the raw rule file.
func (h *CorrectionRuleHandler) ImportCorrectionRules(w http.ResponseWriter, r *http.Request) {

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

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	pipeline := service.ImportPipeline(clanId, field)
	pipeline.ChooseFile(r.URL.Query().Get("file_name"))
	result := pipeline.Parse(r.Body)

	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// ConfirmImport handles POST /correction-rules/import/confirm
func (h *CorrectionRuleHandler) ConfirmImport(w http.ResponseWriter, r *http.Request) {

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

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
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

// ApplyImport handles POST /correction-rules/import/apply
func (h *CorrectionRuleHandler) ApplyImport(w http.ResponseWriter, r *http.Request) {

	if err := requireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

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

	opts := ruleimport.Options{
		ClanId: body.ClanId,
		Field:  body.Field,
		Mode:   body.Mode,
		// Duplicate skipping is on unless explicitly turned off.
		IgnoreDuplicates: body.IgnoreDuplicates == nil || *body.IgnoreDuplicates,
	}

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	summary, err := service.ApplyImport(opts)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, summary)
}

// ExportCorrectionRules handles GET /correction-rules/export
func (h *CorrectionRuleHandler) ExportCorrectionRules(w http.ResponseWriter, r *http.Request) {

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

	service := provider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	entries, err := service.ExportCorrectionRules(clanId, field)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="correction_rules.csv"`)
	if err := ruleimport.Export(ruleimport.CorrectionRules, entries, w); err != nil {
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

// correctionListConfig wires the rule columns into the generic reconciler.
var correctionListConfig = rulelist.Config[string, ruleModel.CorrectionRule]{
	SearchText: func(r ruleModel.CorrectionRule) string {
		return r.MatchValue + " " + r.ReplacementValue
	},
	Field:  func(r ruleModel.CorrectionRule) string { return r.Field },
	Status: func(r ruleModel.CorrectionRule) string { return r.Status },
	SortKeys: map[string]func(ruleModel.CorrectionRule) interface{}{
		"match_value":       func(r ruleModel.CorrectionRule) interface{} { return r.MatchValue },
		"replacement_value": func(r ruleModel.CorrectionRule) interface{} { return r.ReplacementValue },
		"field":             func(r ruleModel.CorrectionRule) interface{} { return r.Field },
		"status":            func(r ruleModel.CorrectionRule) interface{} { return r.Status },
		"created_at":        func(r ruleModel.CorrectionRule) interface{} { return r.CreatedAt },
	},
}

// listCorrectionRules applies the request's view parameters to the clan's
// rules and returns one page of the derived view.
func listCorrectionRules(rules []ruleModel.CorrectionRule, q url.Values,
	page, pageSize int) map[string]interface{} {

	list := rulelist.New(correctionListConfig, "match_value", pageSize)
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
		visible = []ruleModel.CorrectionRule{}
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
