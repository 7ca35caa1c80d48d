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
	"encoding/csv"
	"io"
	"net/http"
	"strings"

	"github.com/wso2/clan-chest-service/internal/reports/model"
	"github.com/wso2/clan-chest-service/internal/reports/store"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
	"github.com/wso2/clan-chest-service/internal/system/workers"
)

const defaultReportLimit = 100

type ChestReportServiceInterface interface {
	SubmitChestReport(raw model.RawReport) error
	SubmitChestReportBatch(clanId string, r io.Reader) (int, error)
	GetChestReports(clanId string, limit int) ([]model.ChestReport, error)
}

// ChestReportService is the default implementation of the ChestReportServiceInterface.
type ChestReportService struct{}

// GetChestReportService creates a new instance of ChestReportService.
func GetChestReportService() ChestReportServiceInterface {

	return &ChestReportService{}
}

// SubmitChestReport enqueues a raw report for asynchronous scoring. The
// submission is accepted as soon as it is on the queue.
func (crs *ChestReportService) SubmitChestReport(raw model.RawReport) error {

	if err := validateRawReport(&raw); err != nil {
		return err
	}
	workers.EnqueueChestReport(raw)
	return nil
}

// SubmitChestReportBatch reads a CSV batch (player,chest,source[,level]) and
// enqueues each well-formed row. Short rows are skipped, not fatal.
func (crs *ChestReportService) SubmitChestReportBatch(clanId string, r io.Reader) (int, error) {

	if clanId == "" {
		return 0, errors2.NewClientError(errors2.ErrClanIdRequired, http.StatusBadRequest)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	accepted := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return accepted, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.ADD_CHEST_REPORT.Code,
				Message:     errors2.ADD_CHEST_REPORT.Message,
				Description: "Failed to read chest report batch.",
			}, err)
		}
		if len(record) < 3 {
			continue
		}

		raw := model.RawReport{
			ClanId: clanId,
			Player: strings.TrimSpace(record[0]),
			Chest:  strings.TrimSpace(record[1]),
			Source: strings.TrimSpace(record[2]),
		}
		if len(record) > 3 {
			raw.Level = strings.TrimSpace(record[3])
		}
		if raw.Player == "" {
			continue
		}
		workers.EnqueueChestReport(raw)
		accepted++
	}
	return accepted, nil
}

func (crs *ChestReportService) GetChestReports(clanId string, limit int) ([]model.ChestReport, error) {

	if limit <= 0 {
		limit = defaultReportLimit
	}
	return store.GetChestReports(clanId, limit)
}

func validateRawReport(raw *model.RawReport) error {

	raw.Player = strings.TrimSpace(raw.Player)
	raw.Chest = strings.TrimSpace(raw.Chest)
	raw.Source = strings.TrimSpace(raw.Source)

	if raw.ClanId == "" {
		return errors2.NewClientError(errors2.ErrClanIdRequired, http.StatusBadRequest)
	}
	if raw.Player == "" {
		return errors2.NewClientError(errors2.ErrPlayerNameRequired, http.StatusBadRequest)
	}
	return nil
}
