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
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wso2/clan-chest-service/internal/audit/model"
	"github.com/wso2/clan-chest-service/internal/audit/store"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

const (
	defaultAuditLimit = 100
	auditWriteTimeout = 5 * time.Second
)

type AuditServiceInterface interface {
	RecordAction(actorId, action, targetId, clanId, detail string)
	GetAuditLogs(clanId string, limit int) ([]model.AuditLog, error)
}

// AuditService is the default implementation of the AuditServiceInterface.
type AuditService struct{}

// GetAuditService creates a new instance of AuditService.
func GetAuditService() AuditServiceInterface {

	return &AuditService{}
}

// RecordAction writes an audit entry in the background. A failed write is
// logged and dropped; the triggering operation is never held up or failed
// on account of its audit trail.
func (as *AuditService) RecordAction(actorId, action, targetId, clanId, detail string) {

	entry := model.AuditLog{
		LogId:     uuid.New().String(),
		ActorId:   actorId,
		Action:    action,
		TargetId:  targetId,
		ClanId:    clanId,
		Detail:    detail,
		CreatedAt: time.Now().UTC().Unix(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := store.InsertAuditLog(ctx, entry); err != nil {
			log.GetLogger().Error(fmt.Sprintf("Failed to record audit action: %s", action), log.Error(err))
		}
	}()
}

func (as *AuditService) GetAuditLogs(clanId string, limit int) ([]model.AuditLog, error) {

	if limit <= 0 {
		limit = defaultAuditLimit
	}
	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()
	return store.GetAuditLogs(ctx, clanId, limit)
}
