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
	"time"

	"github.com/google/uuid"
	"github.com/wso2/clan-chest-service/internal/clans/model"
	"github.com/wso2/clan-chest-service/internal/clans/store"
	"github.com/wso2/clan-chest-service/internal/system/cache"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
)

const (
	clanListCacheKey = "clans:list"
	clanCacheTTL     = 2 * time.Minute
)

var clanCache = cache.New[[]model.Clan](clanCacheTTL)

type ClanServiceInterface interface {
	AddClan(clan model.Clan) (*model.Clan, error)
	GetClans() ([]model.Clan, error)
	GetClan(clanId string) (*model.Clan, error)
	GetDefaultClan() (*model.Clan, error)
	PutClan(clan model.Clan) (*model.Clan, error)
	DeleteClan(clanId string) error
}

// ClanService is the default implementation of the ClanServiceInterface.
type ClanService struct{}

// GetClanService creates a new instance of ClanService.
func GetClanService() ClanServiceInterface {

	return &ClanService{}
}

func (cs *ClanService) AddClan(clan model.Clan) (*model.Clan, error) {

	if err := validateClan(&clan); err != nil {
		return nil, err
	}

	clan.ClanId = uuid.New().String()
	now := time.Now().UTC().Unix()
	clan.CreatedAt = now
	clan.UpdatedAt = now

	if err := store.AddClan(clan); err != nil {
		return nil, err
	}
	clanCache.Delete(clanListCacheKey)
	return &clan, nil
}

// GetClans returns the clan list, served through the TTL cache. Mutations
// invalidate the cached list.
func (cs *ClanService) GetClans() ([]model.Clan, error) {

	if clans, found := clanCache.Get(clanListCacheKey); found {
		return clans, nil
	}

	clans, err := store.GetClans()
	if err != nil {
		return nil, err
	}
	clanCache.Set(clanListCacheKey, clans)
	return clans, nil
}

func (cs *ClanService) GetClan(clanId string) (*model.Clan, error) {

	return store.GetClan(clanId)
}

func (cs *ClanService) GetDefaultClan() (*model.Clan, error) {

	return store.GetDefaultClan()
}

func (cs *ClanService) PutClan(clan model.Clan) (*model.Clan, error) {

	existing, err := store.GetClan(clan.ClanId)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors2.NewClientError(errors2.ErrClanNotFound, http.StatusNotFound)
	}

	if err := validateClan(&clan); err != nil {
		return nil, err
	}
	clan.CreatedAt = existing.CreatedAt
	clan.UpdatedAt = time.Now().UTC().Unix()

	if err := store.UpdateClan(clan); err != nil {
		return nil, err
	}
	clanCache.Delete(clanListCacheKey)
	return &clan, nil
}

func (cs *ClanService) DeleteClan(clanId string) error {

	if err := store.DeleteClan(clanId); err != nil {
		return err
	}
	clanCache.Delete(clanListCacheKey)
	return nil
}

func validateClan(clan *model.Clan) error {

	clan.Name = strings.TrimSpace(clan.Name)
	clan.Tag = strings.TrimSpace(clan.Tag)

	if clan.Name == "" {
		return errors2.NewClientError(errors2.ErrClanNameRequired, http.StatusBadRequest)
	}
	return nil
}
