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

package scripts

// Validation rules

var InsertValidationRule = map[string]string{
	"postgres": `INSERT INTO validation_rules (rule_id, clan_id, field, match_value, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
}

var GetValidationRules = map[string]string{
	"postgres": `SELECT rule_id, clan_id, field, match_value, status, created_at, updated_at
		FROM validation_rules WHERE clan_id = $1 ORDER BY field, lower(match_value)`,
}

var GetValidationRulesByField = map[string]string{
	"postgres": `SELECT rule_id, clan_id, field, match_value, status, created_at, updated_at
		FROM validation_rules WHERE clan_id = $1 AND field = $2 ORDER BY lower(match_value)`,
}

var GetValidationRule = map[string]string{
	"postgres": `SELECT rule_id, clan_id, field, match_value, status, created_at, updated_at
		FROM validation_rules WHERE rule_id = $1`,
}

var UpdateValidationRule = map[string]string{
	"postgres": `UPDATE validation_rules SET field = $1, match_value = $2, status = $3, updated_at = $4
		WHERE rule_id = $5`,
}

var DeleteValidationRule = map[string]string{
	"postgres": `DELETE FROM validation_rules WHERE rule_id = $1`,
}

var DeleteValidationRulesForField = map[string]string{
	"postgres": `DELETE FROM validation_rules WHERE clan_id = $1 AND field = $2`,
}

// Correction rules

var InsertCorrectionRule = map[string]string{
	"postgres": `INSERT INTO correction_rules
		(rule_id, clan_id, field, match_value, replacement_value, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
}

var GetCorrectionRules = map[string]string{
	"postgres": `SELECT rule_id, clan_id, field, match_value, replacement_value, status, created_at, updated_at
		FROM correction_rules WHERE clan_id = $1 ORDER BY field, lower(match_value)`,
}

var GetCorrectionRulesByField = map[string]string{
	"postgres": `SELECT rule_id, clan_id, field, match_value, replacement_value, status, created_at, updated_at
		FROM correction_rules WHERE clan_id = $1 AND field = $2 ORDER BY lower(match_value)`,
}

var GetCorrectionRule = map[string]string{
	"postgres": `SELECT rule_id, clan_id, field, match_value, replacement_value, status, created_at, updated_at
		FROM correction_rules WHERE rule_id = $1`,
}

var UpdateCorrectionRule = map[string]string{
	"postgres": `UPDATE correction_rules SET field = $1, match_value = $2, replacement_value = $3, status = $4,
		updated_at = $5 WHERE rule_id = $6`,
}

var DeleteCorrectionRule = map[string]string{
	"postgres": `DELETE FROM correction_rules WHERE rule_id = $1`,
}

var DeleteCorrectionRulesForField = map[string]string{
	"postgres": `DELETE FROM correction_rules WHERE clan_id = $1 AND field = $2`,
}

// Scoring rules

var InsertScoringRule = map[string]string{
	"postgres": `INSERT INTO scoring_rules
		(rule_id, clan_id, chest_match, source_match, min_level, max_level, score, rule_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
}

var GetScoringRules = map[string]string{
	"postgres": `SELECT rule_id, clan_id, chest_match, source_match, min_level, max_level, score, rule_order,
		created_at, updated_at FROM scoring_rules WHERE clan_id = $1 ORDER BY rule_order`,
}

var GetScoringRule = map[string]string{
	"postgres": `SELECT rule_id, clan_id, chest_match, source_match, min_level, max_level, score, rule_order,
		created_at, updated_at FROM scoring_rules WHERE rule_id = $1`,
}

var UpdateScoringRule = map[string]string{
	"postgres": `UPDATE scoring_rules SET chest_match = $1, source_match = $2, min_level = $3, max_level = $4,
		score = $5, rule_order = $6, updated_at = $7 WHERE rule_id = $8`,
}

var DeleteScoringRule = map[string]string{
	"postgres": `DELETE FROM scoring_rules WHERE rule_id = $1`,
}

// Chest reports

var InsertChestReport = map[string]string{
	"postgres": `INSERT INTO chest_reports
		(report_id, clan_id, player, chest, source, level, score, is_valid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
}

var GetChestReports = map[string]string{
	"postgres": `SELECT report_id, clan_id, player, chest, source, level, score, is_valid, created_at
		FROM chest_reports WHERE clan_id = $1 ORDER BY created_at DESC LIMIT $2`,
}

// Clans

var InsertClan = map[string]string{
	"postgres": `INSERT INTO clans (clan_id, name, tag, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
}

var GetClans = map[string]string{
	"postgres": `SELECT clan_id, name, tag, is_default, created_at, updated_at FROM clans ORDER BY name`,
}

var GetClan = map[string]string{
	"postgres": `SELECT clan_id, name, tag, is_default, created_at, updated_at FROM clans WHERE clan_id = $1`,
}

var GetDefaultClan = map[string]string{
	"postgres": `SELECT clan_id, name, tag, is_default, created_at, updated_at FROM clans
		WHERE is_default = TRUE LIMIT 1`,
}

var UpdateClan = map[string]string{
	"postgres": `UPDATE clans SET name = $1, tag = $2, is_default = $3, updated_at = $4 WHERE clan_id = $5`,
}

var DeleteClan = map[string]string{
	"postgres": `DELETE FROM clans WHERE clan_id = $1`,
}

// Game accounts and memberships

var InsertGameAccount = map[string]string{
	"postgres": `INSERT INTO game_accounts (account_id, user_id, player_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
}

var GetGameAccounts = map[string]string{
	"postgres": `SELECT account_id, user_id, player_name, created_at, updated_at FROM game_accounts
		ORDER BY lower(player_name)`,
}

var GetGameAccount = map[string]string{
	"postgres": `SELECT account_id, user_id, player_name, created_at, updated_at FROM game_accounts
		WHERE account_id = $1`,
}

var UpsertMembership = map[string]string{
	"postgres": `INSERT INTO game_account_clan_memberships (membership_id, account_id, clan_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id, clan_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`,
}

var GetMembershipsForClan = map[string]string{
	"postgres": `SELECT m.membership_id, m.account_id, m.clan_id, m.status, m.created_at, m.updated_at, a.player_name
		FROM game_account_clan_memberships m
		JOIN game_accounts a ON a.account_id = m.account_id
		WHERE m.clan_id = $1 ORDER BY lower(a.player_name)`,
}

var CountPendingMemberships = map[string]string{
	"postgres": `SELECT COUNT(*) AS pending FROM game_account_clan_memberships WHERE clan_id = $1 AND status = $2`,
}

var UpdateMembershipStatus = map[string]string{
	"postgres": `UPDATE game_account_clan_memberships SET status = $1, updated_at = $2 WHERE membership_id = $3`,
}

// Profiles and roles

var GetProfile = map[string]string{
	"postgres": `SELECT user_id, display_name, last_selected_clan_id FROM profiles WHERE user_id = $1`,
}

var UpdateLastSelectedClan = map[string]string{
	"postgres": `INSERT INTO profiles (user_id, last_selected_clan_id) VALUES ($2, $1)
		ON CONFLICT (user_id) DO UPDATE SET last_selected_clan_id = EXCLUDED.last_selected_clan_id`,
}

var GetUserRole = map[string]string{
	"postgres": `SELECT role FROM user_roles WHERE user_id = $1`,
}

var GetAdminUsers = map[string]string{
	"postgres": `SELECT user_id FROM user_roles WHERE role = $1`,
}

// Notifications

var GetNotifications = map[string]string{
	"postgres": `SELECT notification_id, user_id, title, body, is_read, created_at FROM notifications
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
}

var InsertNotification = map[string]string{
	"postgres": `INSERT INTO notifications (notification_id, user_id, title, body, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
}

var MarkNotificationRead = map[string]string{
	"postgres": `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1`,
}

var DeleteNotification = map[string]string{
	"postgres": `DELETE FROM notifications WHERE notification_id = $1`,
}

var GetNotificationSettings = map[string]string{
	"postgres": `SELECT user_id, enabled, poll_interval_seconds FROM notification_settings WHERE user_id = $1`,
}

var UpsertNotificationSettings = map[string]string{
	"postgres": `INSERT INTO notification_settings (user_id, enabled, poll_interval_seconds)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET enabled = EXCLUDED.enabled, poll_interval_seconds = EXCLUDED.poll_interval_seconds`,
}
