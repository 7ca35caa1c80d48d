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

package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoOptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/clan-chest-service/internal/audit/model"
	"github.com/wso2/clan-chest-service/internal/system/config"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

const auditCollection = "audit_logs"

var (
	mongoClient *mongo.Client
	mongoOnce   sync.Once
	mongoErr    error
)

func getCollection(ctx context.Context) (*mongo.Collection, error) {

	mongoOnce.Do(func() {
		uri := config.GetCCSRuntime().Config.AuditStore.URI
		mongoClient, mongoErr = mongo.Connect(ctx, mongoOptions.Client().ApplyURI(uri))
	})
	if mongoErr != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_AUDIT_LOG.Code,
			Message:     errors2.ADD_AUDIT_LOG.Message,
			Description: "Failed to connect to the audit store.",
		}, mongoErr)
	}
	database := config.GetCCSRuntime().Config.AuditStore.Database
	return mongoClient.Database(database).Collection(auditCollection), nil
}

// InsertAuditLog writes one audit entry.
func InsertAuditLog(ctx context.Context, entry model.AuditLog) error {

	logger := log.GetLogger()

	collection, err := getCollection(ctx)
	if err != nil {
		logger.Debug("Failed to get audit store collection.", log.Error(err))
		return err
	}

	if _, err := collection.InsertOne(ctx, entry); err != nil {
		errorMsg := "Failed to insert audit log entry."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_AUDIT_LOG.Code,
			Message:     errors2.ADD_AUDIT_LOG.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// GetAuditLogs fetches the most recent audit entries, optionally scoped to a clan.
func GetAuditLogs(ctx context.Context, clanId string, limit int) ([]model.AuditLog, error) {

	logger := log.GetLogger()

	collection, err := getCollection(ctx)
	if err != nil {
		logger.Debug("Failed to get audit store collection.", log.Error(err))
		return nil, err
	}

	filter := bson.M{}
	if clanId != "" {
		filter["clan_id"] = clanId
	}
	findOptions := mongoOptions.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		errorMsg := "Failed to fetch audit log entries."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_AUDIT_LOGS.Code,
			Message:     errors2.FETCH_AUDIT_LOGS.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	entries := make([]model.AuditLog, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		errorMsg := "Failed to decode audit log entries."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_AUDIT_LOGS.Code,
			Message:     errors2.FETCH_AUDIT_LOGS.Message,
			Description: errorMsg,
		}, err)
	}
	return entries, nil
}

// CloseAuditStore disconnects the Mongo client on shutdown.
func CloseAuditStore() {

	if mongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.GetLogger().Debug("Failed to disconnect audit store client.", log.Error(err))
	}
}
