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

package errors

const errorPrefix = "CCS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	EXECUTE_QUERY = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while executing database query.",
	}

	ADD_VALIDATION_RULE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while adding validation rule.",
	}

	FETCH_VALIDATION_RULES = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while fetching validation rule(s).",
	}

	UPDATE_VALIDATION_RULE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while updating validation rule.",
	}

	DELETE_VALIDATION_RULES = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while deleting validation rule(s).",
	}

	ADD_CORRECTION_RULE = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while adding correction rule.",
	}

	FETCH_CORRECTION_RULES = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching correction rule(s).",
	}

	UPDATE_CORRECTION_RULE = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while updating correction rule.",
	}

	DELETE_CORRECTION_RULES = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while deleting correction rule(s).",
	}

	ADD_SCORING_RULE = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while adding scoring rule.",
	}

	FETCH_SCORING_RULES = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while fetching scoring rule(s).",
	}

	UPDATE_SCORING_RULE = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while updating scoring rule.",
	}

	DELETE_SCORING_RULES = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while deleting scoring rule(s).",
	}

	ADD_CHEST_REPORT = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while storing chest report.",
	}

	FETCH_CHEST_REPORTS = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while fetching chest report(s).",
	}

	FETCH_CLANS = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Error while fetching clan(s).",
	}

	ADD_CLAN = ErrorMessage{
		Code:    errorPrefix + "15018",
		Message: "Error while adding clan.",
	}

	UPDATE_CLAN = ErrorMessage{
		Code:    errorPrefix + "15019",
		Message: "Error while updating clan.",
	}

	DELETE_CLAN = ErrorMessage{
		Code:    errorPrefix + "15020",
		Message: "Error while deleting clan.",
	}

	ADD_GAME_ACCOUNT = ErrorMessage{
		Code:    errorPrefix + "15021",
		Message: "Error while adding game account.",
	}

	FETCH_GAME_ACCOUNTS = ErrorMessage{
		Code:    errorPrefix + "15022",
		Message: "Error while fetching game account(s).",
	}

	UPSERT_MEMBERSHIP = ErrorMessage{
		Code:    errorPrefix + "15023",
		Message: "Error while upserting clan membership.",
	}

	ADD_AUDIT_LOG = ErrorMessage{
		Code:    errorPrefix + "15024",
		Message: "Error while writing audit log.",
	}

	FETCH_AUDIT_LOGS = ErrorMessage{
		Code:    errorPrefix + "15025",
		Message: "Error while fetching audit logs.",
	}

	FETCH_NOTIFICATIONS = ErrorMessage{
		Code:    errorPrefix + "15026",
		Message: "Error while fetching notifications.",
	}

	UPDATE_NOTIFICATIONS = ErrorMessage{
		Code:    errorPrefix + "15027",
		Message: "Error while updating notifications.",
	}

	IMPORT_APPLY = ErrorMessage{
		Code:    errorPrefix + "15028",
		Message: "Error while applying rule import.",
	}

	FETCH_SESSION = ErrorMessage{
		Code:    errorPrefix + "15029",
		Message: "Error while initializing admin session.",
	}

	// Client error codes

	ErrInvalidRuleField = ErrorMessage{
		Code:        errorPrefix + "11001",
		Message:     "Invalid rule field.",
		Description: "Rule field must be one of source, chest, player or clan.",
	}

	ErrInvalidRuleStatus = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Invalid rule status.",
		Description: "Status is not an allowed value for this rule type.",
	}

	ErrMatchValueRequired = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Match value is required.",
		Description: "A rule must define a non-empty match value.",
	}

	ErrReplacementRequired = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Replacement value is required.",
		Description: "A correction rule must define a non-empty replacement value.",
	}

	ErrInvalidLevelBounds = ErrorMessage{
		Code:        errorPrefix + "11005",
		Message:     "Invalid level bounds.",
		Description: "min_level must not exceed max_level when both are set.",
	}

	ErrRuleNotFound = ErrorMessage{
		Code:        errorPrefix + "11006",
		Message:     "Rule not found.",
		Description: "No rule exists for the given identifier.",
	}

	ErrClanNotFound = ErrorMessage{
		Code:        errorPrefix + "11007",
		Message:     "Clan not found.",
		Description: "No clan exists for the given identifier.",
	}

	ErrClanIdRequired = ErrorMessage{
		Code:        errorPrefix + "11008",
		Message:     "Clan id is required.",
		Description: "The request must be scoped to a clan.",
	}

	ErrInvalidImportMode = ErrorMessage{
		Code:        errorPrefix + "11009",
		Message:     "Invalid import mode.",
		Description: "Import mode must be append or replace.",
	}

	ErrConfirmationRequired = ErrorMessage{
		Code:        errorPrefix + "11010",
		Message:     "Confirmation required.",
		Description: "A replace import must be confirmed before it can run.",
	}

	ErrConfirmationPhrase = ErrorMessage{
		Code:        errorPrefix + "11011",
		Message:     "Confirmation failed.",
		Description: "The confirmation input did not match.",
	}

	ErrPlayerNameRequired = ErrorMessage{
		Code:        errorPrefix + "11012",
		Message:     "Player name is required.",
		Description: "A game account must define a player name.",
	}

	ErrUnauthorized = ErrorMessage{
		Code:        errorPrefix + "11013",
		Message:     "Unauthorized.",
		Description: "The request does not carry a valid bearer token.",
	}

	ErrForbidden = ErrorMessage{
		Code:        errorPrefix + "11014",
		Message:     "Forbidden.",
		Description: "The authenticated user does not have the required role.",
	}

	ErrClanNameRequired = ErrorMessage{
		Code:        errorPrefix + "11015",
		Message:     "Clan name is required.",
		Description: "A clan must define a non-empty name.",
	}

	ErrMembershipNotFound = ErrorMessage{
		Code:        errorPrefix + "11016",
		Message:     "Membership not found.",
		Description: "No clan membership exists for the given identifier.",
	}

	ErrInvalidMembershipStatus = ErrorMessage{
		Code:        errorPrefix + "11017",
		Message:     "Invalid membership status.",
		Description: "Membership status must be pending, approved or rejected.",
	}

	ErrAccountNotFound = ErrorMessage{
		Code:        errorPrefix + "11018",
		Message:     "Game account not found.",
		Description: "No game account exists for the given identifier.",
	}

	// ErrImportScopeMismatch is returned when an apply names a clan or field
	// other than the one the import was parsed for.
	ErrImportScopeMismatch = ErrorMessage{
		Code:        errorPrefix + "11019",
		Message:     "Import scope mismatch.",
		Description: "The parsed import belongs to a different clan or field.",
	}

	ErrInvalidPagination = ErrorMessage{
		Code:        errorPrefix + "11020",
		Message:     "Invalid pagination.",
		Description: "page and page_size must be positive integers.",
	}
)
