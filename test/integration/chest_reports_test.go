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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	correctionModel "github.com/wso2/clan-chest-service/internal/correction_rules/model"
	correctionProvider "github.com/wso2/clan-chest-service/internal/correction_rules/provider"
	reportModel "github.com/wso2/clan-chest-service/internal/reports/model"
	reportProvider "github.com/wso2/clan-chest-service/internal/reports/provider"
	scoringModel "github.com/wso2/clan-chest-service/internal/scoring_rules/model"
	scoringProvider "github.com/wso2/clan-chest-service/internal/scoring_rules/provider"
	"github.com/wso2/clan-chest-service/internal/system/constants"
)

// Submits a raw report and waits for the background worker to correct, score
// and persist it.
func TestReportScoring_EndToEnd(t *testing.T) {
	clanId := uuid.New().String()

	correctionService := correctionProvider.NewCorrectionRuleProvider().GetCorrectionRuleService()
	_, err := correctionService.AddCorrectionRule(correctionModel.CorrectionRule{
		ClanId:           clanId,
		Field:            constants.FieldChest,
		MatchValue:       "epic cryptt",
		ReplacementValue: "Epic Crypt",
	})
	require.NoError(t, err)

	minLevel := 10
	scoringService := scoringProvider.NewScoringRuleProvider().GetScoringRuleService()
	_, err = scoringService.AddScoringRule(scoringModel.ScoringRule{
		ClanId:     clanId,
		ChestMatch: "Epic Crypt",
		MinLevel:   &minLevel,
		Score:      25,
	})
	require.NoError(t, err)

	reportService := reportProvider.NewChestReportProvider().GetChestReportService()
	err = reportService.SubmitChestReport(reportModel.RawReport{
		ClanId: clanId,
		Player: "Sigrid",
		Chest:  "Epic Cryptt",
		Source: "Crypt Level 15",
		Level:  "15",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		reports, err := reportService.GetChestReports(clanId, 10)
		return err == nil && len(reports) == 1
	}, 10*time.Second, 100*time.Millisecond, "worker should persist the scored report")

	reports, err := reportService.GetChestReports(clanId, 10)
	require.NoError(t, err)
	report := reports[0]
	require.Equal(t, "Epic Crypt", report.Chest, "correction applied before persisting")
	require.True(t, report.IsValid, "no validation rules for the clan means permissive")
	require.NotNil(t, report.Score)
	require.Equal(t, 25, *report.Score)
	require.NotNil(t, report.Level)
	require.Equal(t, 15, *report.Level)
}

func TestReportScoring_NoMatchingRuleLeavesScoreNil(t *testing.T) {
	clanId := uuid.New().String()
	reportService := reportProvider.NewChestReportProvider().GetChestReportService()

	err := reportService.SubmitChestReport(reportModel.RawReport{
		ClanId: clanId,
		Player: "Olaf",
		Chest:  "Wooden Chest",
		Source: "Crypt Level 1",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		reports, err := reportService.GetChestReports(clanId, 10)
		return err == nil && len(reports) == 1
	}, 10*time.Second, 100*time.Millisecond)

	reports, err := reportService.GetChestReports(clanId, 10)
	require.NoError(t, err)
	require.Nil(t, reports[0].Score)
}
