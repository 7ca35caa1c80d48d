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

type Notification struct {
	NotificationId string `json:"notification_id,omitempty"`
	UserId         string `json:"user_id"`
	Title          string `json:"title"`
	Body           string `json:"body,omitempty"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      int64  `json:"created_at,omitempty"`
}

// NotificationSettings controls the background approval poller for one user.
type NotificationSettings struct {
	UserId              string `json:"user_id,omitempty"`
	Enabled             bool   `json:"enabled"`
	PollIntervalSeconds int    `json:"poll_interval_seconds"`
}
