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

package constants

const ApiBasePath = "/api/v1"

const Filter = "filter"

// Rule fields a validation or correction rule can apply to.
const (
	FieldSource = "source"
	FieldChest  = "chest"
	FieldPlayer = "player"
	FieldClan   = "clan"
)

var AllowedRuleFields = map[string]bool{
	FieldSource: true,
	FieldChest:  true,
	FieldPlayer: true,
	FieldClan:   true,
}

// Validation rule statuses.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

var AllowedValidationStatuses = map[string]bool{
	StatusValid:   true,
	StatusInvalid: true,
}

// Correction rule statuses. Inactive rules are retained but inert.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var AllowedCorrectionStatuses = map[string]bool{
	StatusActive:   true,
	StatusInactive: true,
}

// Import reconciliation modes.
const (
	ImportModeAppend  = "append"
	ImportModeReplace = "replace"
)

var AllowedImportModes = map[string]bool{
	ImportModeAppend:  true,
	ImportModeReplace: true,
}

// Membership approval statuses.
const (
	MembershipPending  = "pending"
	MembershipApproved = "approved"
	MembershipRejected = "rejected"
)

// User roles. Mutating admin endpoints require RoleAdmin.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

const DefaultQueueSize = 100

// ReplaceConfirmationPhrase is the phrase an operator has to type before a
// replace-mode import is allowed to delete existing rules.
const ReplaceConfirmationPhrase = "REPLACE"
