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

package workers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	correctionProvider "github.com/wso2/clan-chest-service/internal/correction_rules/provider"
	"github.com/wso2/clan-chest-service/internal/matcher"
	reportModel "github.com/wso2/clan-chest-service/internal/reports/model"
	reportStore "github.com/wso2/clan-chest-service/internal/reports/store"
	scoringProvider "github.com/wso2/clan-chest-service/internal/scoring_rules/provider"
	"github.com/wso2/clan-chest-service/internal/system/constants"
	"github.com/wso2/clan-chest-service/internal/system/log"
	validationProvider "github.com/wso2/clan-chest-service/internal/validation_rules/provider"
)

var ReportQueue chan reportModel.RawReport

// StartReportWorker starts the background goroutine that scores and persists
// submitted chest reports.
func StartReportWorker() {

	ReportQueue = make(chan reportModel.RawReport, constants.DefaultQueueSize)

	go func() {
		for raw := range ReportQueue {
			scoreAndPersist(raw)
		}
	}()
}

// EnqueueChestReport hands a raw report to the worker. Submissions are
// dropped silently if the worker was never started.
func EnqueueChestReport(raw reportModel.RawReport) {
	if ReportQueue != nil {
		ReportQueue <- raw
	}
}

// scoreAndPersist loads the clan's three rule sets, evaluates the report and
// stores the outcome. A failed rule load or store write is logged and the
// report is dropped; the queue keeps draining.
func scoreAndPersist(raw reportModel.RawReport) {

	logger := log.GetLogger()

	validationRules, err := validationProvider.NewValidationRuleProvider().
		GetValidationRuleService().GetValidationRules(raw.ClanId)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load validation rules for scoring report of player: %s", raw.Player),
			log.Error(err))
		return
	}
	correctionRules, err := correctionProvider.NewCorrectionRuleProvider().
		GetCorrectionRuleService().GetCorrectionRules(raw.ClanId)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load correction rules for scoring report of player: %s", raw.Player),
			log.Error(err))
		return
	}
	scoringRules, err := scoringProvider.NewScoringRuleProvider().
		GetScoringRuleService().GetScoringRules(raw.ClanId)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load scoring rules for scoring report of player: %s", raw.Player),
			log.Error(err))
		return
	}

	report := matcher.Report{
		Player: raw.Player,
		Chest:  raw.Chest,
		Source: raw.Source,
		Clan:   raw.ClanId,
		Level:  matcher.ParseLevel(raw.Level),
	}
	result := matcher.Evaluate(report, validationRules, correctionRules, scoringRules)

	// Corrected values are what gets persisted.
	chest := report.Chest
	if corrected, ok := result.CorrectedFields[constants.FieldChest]; ok {
		chest = corrected
	}
	source := report.Source
	if corrected, ok := result.CorrectedFields[constants.FieldSource]; ok {
		source = corrected
	}
	player := report.Player
	if corrected, ok := result.CorrectedFields[constants.FieldPlayer]; ok {
		player = corrected
	}

	scored := reportModel.ChestReport{
		ReportId:  uuid.New().String(),
		ClanId:    raw.ClanId,
		Player:    player,
		Chest:     chest,
		Source:    source,
		Level:     report.Level,
		Score:     result.Score,
		IsValid:   result.IsValid,
		CreatedAt: time.Now().UTC().Unix(),
	}

	if err := reportStore.AddChestReport(scored); err != nil {
		logger.Error(fmt.Sprintf("Failed to persist scored chest report for player: %s", raw.Player),
			log.Error(err))
		return
	}
	logger.Info("Chest report scored and persisted.", log.String("player", player),
		log.Bool("valid", scored.IsValid), log.Int64("created_at", scored.CreatedAt))
}
