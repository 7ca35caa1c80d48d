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

package model

// AuditLog is one administrative action record. Writes are fire-and-forget;
// a lost entry is never surfaced to the caller.
type AuditLog struct {
	LogId     string `json:"log_id" bson:"log_id"`
	ActorId   string `json:"actor_id" bson:"actor_id"`
	Action    string `json:"action" bson:"action"`
	TargetId  string `json:"target_id,omitempty" bson:"target_id,omitempty"`
	ClanId    string `json:"clan_id,omitempty" bson:"clan_id,omitempty"`
	Detail    string `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
}
