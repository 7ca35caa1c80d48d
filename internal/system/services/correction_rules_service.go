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

	"github.com/wso2/clan-chest-service/internal/correction_rules/handler"
)

type CorrectionRulesService struct {
	correctionRulesHandler *handler.CorrectionRuleHandler
}

func NewCorrectionRulesService(mux *http.ServeMux, apiBasePath string) *CorrectionRulesService {

	instance := &CorrectionRulesService{
		correctionRulesHandler: handler.NewCorrectionRuleHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *CorrectionRulesService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/correction-rules", apiBasePath), s.correctionRulesHandler.GetCorrectionRules)
	mux.HandleFunc(fmt.Sprintf("POST %s/correction-rules", apiBasePath), s.correctionRulesHandler.AddCorrectionRule)
	mux.HandleFunc(fmt.Sprintf("POST %s/correction-rules/remove", apiBasePath), s.correctionRulesHandler.DeleteCorrectionRules)
	mux.HandleFunc(fmt.Sprintf("POST %s/correction-rules/import", apiBasePath), s.correctionRulesHandler.ImportCorrectionRules)
	mux.HandleFunc(fmt.Sprintf("POST %s/correction-rules/import/confirm", apiBasePath), s.correctionRulesHandler.ConfirmImport)
	mux.HandleFunc(fmt.Sprintf("POST %s/correction-rules/import/apply", apiBasePath), s.correctionRulesHandler.ApplyImport)
	mux.HandleFunc(fmt.Sprintf("GET %s/correction-rules/export", apiBasePath), s.correctionRulesHandler.ExportCorrectionRules)
	mux.HandleFunc(fmt.Sprintf("GET %s/correction-rules/{id}", apiBasePath), s.correctionRulesHandler.GetCorrectionRule)
	mux.HandleFunc(fmt.Sprintf("PUT %s/correction-rules/{id}", apiBasePath), s.correctionRulesHandler.UpdateCorrectionRule)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/correction-rules/{id}", apiBasePath), s.correctionRulesHandler.DeleteCorrectionRule)
}
