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

package integration

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wso2/clan-chest-service/internal/ruleimport"
	"github.com/wso2/clan-chest-service/internal/system/constants"
	validationModel "github.com/wso2/clan-chest-service/internal/validation_rules/model"
	validationProvider "github.com/wso2/clan-chest-service/internal/validation_rules/provider"
)

func TestValidationRuleLifecycle(t *testing.T) {
	clanId := uuid.New().String()
	service := validationProvider.NewValidationRuleProvider().GetValidationRuleService()

	created, err := service.AddValidationRule(validationModel.ValidationRule{
		ClanId:     clanId,
		Field:      constants.FieldChest,
		MatchValue: "Epic Crypt",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.RuleId)
	require.Equal(t, constants.StatusValid, created.Status, "status defaults to valid")

	fetched, err := service.GetValidationRule(created.RuleId)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, "Epic Crypt", fetched.MatchValue)

	fetched.Status = constants.StatusInvalid
	updated, err := service.PutValidationRule(*fetched)
	require.NoError(t, err)
	require.Equal(t, constants.StatusInvalid, updated.Status)
	require.Equal(t, created.CreatedAt, updated.CreatedAt, "update keeps the creation timestamp")

	require.NoError(t, service.DeleteValidationRule(created.RuleId))

	gone, err := service.GetValidationRule(created.RuleId)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestImportApply_SkipsPersistedDuplicates(t *testing.T) {
	clanId := uuid.New().String()
	service := validationProvider.NewValidationRuleProvider().GetValidationRuleService()

	_, err := service.AddValidationRule(validationModel.ValidationRule{
		ClanId:     clanId,
		Field:      constants.FieldChest,
		MatchValue: "Golden Chest",
	})
	require.NoError(t, err)

	pipeline := service.ImportPipeline(clanId, constants.FieldChest)
	pipeline.ChooseFile("chests.csv")
	result := pipeline.Parse(strings.NewReader("golden chest,valid\nSilver Chest,valid\n"))
	require.Len(t, result.Entries, 2)
	require.Empty(t, result.Errors)

	summary, err := service.ApplyImport(ruleimport.Options{
		ClanId:           clanId,
		Field:            constants.FieldChest,
		Mode:             constants.ImportModeAppend,
		IgnoreDuplicates: true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Inserted)
	require.Equal(t, 1, summary.SkippedExisting, "case-insensitive match against persisted rules")

	rules, err := service.GetValidationRulesByField(clanId, constants.FieldChest)
	require.NoError(t, err)
	require.Len(t, rules, 2)
}

func TestImportApply_ReplaceSwapsFieldRules(t *testing.T) {
	clanId := uuid.New().String()
	service := validationProvider.NewValidationRuleProvider().GetValidationRuleService()

	for _, matchValue := range []string{"Old One", "Old Two"} {
		_, err := service.AddValidationRule(validationModel.ValidationRule{
			ClanId:     clanId,
			Field:      constants.FieldSource,
			MatchValue: matchValue,
		})
		require.NoError(t, err)
	}

	pipeline := service.ImportPipeline(clanId, constants.FieldSource)
	pipeline.ChooseFile("sources.csv")
	pipeline.Parse(strings.NewReader("Crypt Level 10\nMercenary Exchange\n"))

	confirmation := pipeline.Confirmation()
	confirmation.Open()
	require.NoError(t, confirmation.Proceed())
	require.NoError(t, confirmation.SubmitPhrase(constants.ReplaceConfirmationPhrase))

	summary, err := service.ApplyImport(ruleimport.Options{
		ClanId: clanId,
		Field:  constants.FieldSource,
		Mode:   constants.ImportModeReplace,
	})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Inserted)

	rules, err := service.GetValidationRulesByField(clanId, constants.FieldSource)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	for _, rule := range rules {
		require.NotContains(t, rule.MatchValue, "Old")
	}
}
