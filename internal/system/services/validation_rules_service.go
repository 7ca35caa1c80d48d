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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/clan-chest-service/internal/validation_rules/handler"
)

type ValidationRulesService struct {
	validationRulesHandler *handler.ValidationRuleHandler
}

func NewValidationRulesService(mux *http.ServeMux, apiBasePath string) *ValidationRulesService {

	instance := &ValidationRulesService{
		validationRulesHandler: handler.NewValidationRuleHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *ValidationRulesService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/validation-rules", apiBasePath), s.validationRulesHandler.GetValidationRules)
	mux.HandleFunc(fmt.Sprintf("POST %s/validation-rules", apiBasePath), s.validationRulesHandler.AddValidationRule)
	mux.HandleFunc(fmt.Sprintf("POST %s/validation-rules/remove", apiBasePath), s.validationRulesHandler.DeleteValidationRules)
	mux.HandleFunc(fmt.Sprintf("POST %s/validation-rules/import", apiBasePath), s.validationRulesHandler.ImportValidationRules)
	mux.HandleFunc(fmt.Sprintf("POST %s/validation-rules/import/confirm", apiBasePath), s.validationRulesHandler.ConfirmImport)
	mux.HandleFunc(fmt.Sprintf("POST %s/validation-rules/import/apply", apiBasePath), s.validationRulesHandler.ApplyImport)
	mux.HandleFunc(fmt.Sprintf("GET %s/validation-rules/export", apiBasePath), s.validationRulesHandler.ExportValidationRules)
	mux.HandleFunc(fmt.Sprintf("GET %s/validation-rules/{id}", apiBasePath), s.validationRulesHandler.GetValidationRule)
	mux.HandleFunc(fmt.Sprintf("PUT %s/validation-rules/{id}", apiBasePath), s.validationRulesHandler.UpdateValidationRule)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/validation-rules/{id}", apiBasePath), s.validationRulesHandler.DeleteValidationRule)
}
