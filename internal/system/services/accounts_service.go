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

	"github.com/wso2/clan-chest-service/internal/accounts/handler"
)

type AccountsService struct {
	accountsHandler *handler.GameAccountHandler
}

func NewAccountsService(mux *http.ServeMux, apiBasePath string) *AccountsService {

	instance := &AccountsService{
		accountsHandler: handler.NewGameAccountHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *AccountsService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s/accounts", apiBasePath), s.accountsHandler.CreateGameAccount)
	mux.HandleFunc(fmt.Sprintf("GET %s/accounts", apiBasePath), s.accountsHandler.GetGameAccounts)
	mux.HandleFunc(fmt.Sprintf("GET %s/accounts/{id}", apiBasePath), s.accountsHandler.GetGameAccount)
	mux.HandleFunc(fmt.Sprintf("POST %s/accounts/{id}/memberships", apiBasePath), s.accountsHandler.RequestMembership)
	mux.HandleFunc(fmt.Sprintf("GET %s/memberships", apiBasePath), s.accountsHandler.GetMemberships)
	mux.HandleFunc(fmt.Sprintf("PATCH %s/memberships/{id}", apiBasePath), s.accountsHandler.UpdateMembershipStatus)
}
