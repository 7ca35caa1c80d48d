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

package provider

import (
	"github.com/wso2/clan-chest-service/internal/correction_rules/service"
)

// CorrectionRuleProviderInterface defines the interface for the correction rule provider.
type CorrectionRuleProviderInterface interface {
	GetCorrectionRuleService() service.CorrectionRuleServiceInterface
}

// CorrectionRuleProvider is the default implementation of the CorrectionRuleProviderInterface.
type CorrectionRuleProvider struct{}

// NewCorrectionRuleProvider creates a new instance of CorrectionRuleProvider.
func NewCorrectionRuleProvider() CorrectionRuleProviderInterface {
	return &CorrectionRuleProvider{}
}

// GetCorrectionRuleService returns the correction rule service instance.
func (cp *CorrectionRuleProvider) GetCorrectionRuleService() service.CorrectionRuleServiceInterface {
	return service.GetCorrectionRuleService()
}
