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

	"github.com/wso2/clan-chest-service/internal/scoring_rules/handler"
)

type ScoringRulesService struct {
	scoringRulesHandler *handler.ScoringRuleHandler
}

func NewScoringRulesService(mux *http.ServeMux, apiBasePath string) *ScoringRulesService {

	instance := &ScoringRulesService{
		scoringRulesHandler: handler.NewScoringRuleHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *ScoringRulesService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/scoring-rules", apiBasePath), s.scoringRulesHandler.GetScoringRules)
	mux.HandleFunc(fmt.Sprintf("POST %s/scoring-rules", apiBasePath), s.scoringRulesHandler.AddScoringRule)
	mux.HandleFunc(fmt.Sprintf("POST %s/scoring-rules/remove", apiBasePath), s.scoringRulesHandler.DeleteScoringRules)
	mux.HandleFunc(fmt.Sprintf("GET %s/scoring-rules/{id}", apiBasePath), s.scoringRulesHandler.GetScoringRule)
	mux.HandleFunc(fmt.Sprintf("PUT %s/scoring-rules/{id}", apiBasePath), s.scoringRulesHandler.UpdateScoringRule)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/scoring-rules/{id}", apiBasePath), s.scoringRulesHandler.DeleteScoringRule)
}
