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

package schedulers

import (
	"fmt"
	"time"

	accountProvider "github.com/wso2/clan-chest-service/internal/accounts/provider"
	clanProvider "github.com/wso2/clan-chest-service/internal/clans/provider"
	notificationProvider "github.com/wso2/clan-chest-service/internal/notifications/provider"
	"github.com/wso2/clan-chest-service/internal/system/config"
	"github.com/wso2/clan-chest-service/internal/system/log"
)

var approvalPollerStop chan struct{}

// StartApprovalPoller polls pending clan memberships on a fixed interval and
// fans a digest notification out to admins when a clan's pending count grows.
// The poller is skipped entirely when disabled in configuration.
func StartApprovalPoller() {

	logger := log.GetLogger()
	notificationConfig := config.GetCCSRuntime().Config.Notification
	if !notificationConfig.Enabled {
		logger.Info("Approval poller is disabled.")
		return
	}

	interval := time.Duration(notificationConfig.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	approvalPollerStop = make(chan struct{})
	ticker := time.NewTicker(interval)
	logger.Info(fmt.Sprintf("Approval poller started with interval: %s.", interval))

	go func() {
		defer ticker.Stop()

		lastCounts := make(map[string]int)
		pollPendingApprovals(lastCounts)
		for {
			select {
			case <-ticker.C:
				pollPendingApprovals(lastCounts)
			case <-approvalPollerStop:
				logger.Info("Approval poller stopped.")
				return
			}
		}
	}()
}

// StopApprovalPoller stops the poller goroutine if it was started.
func StopApprovalPoller() {

	if approvalPollerStop != nil {
		close(approvalPollerStop)
		approvalPollerStop = nil
	}
}

func pollPendingApprovals(lastCounts map[string]int) {

	logger := log.GetLogger()

	clans, err := clanProvider.NewClanProvider().GetClanService().GetClans()
	if err != nil {
		logger.Error("Failed to load clans for the approval poll.", log.Error(err))
		return
	}

	accountService := accountProvider.NewGameAccountProvider().GetGameAccountService()
	for _, clan := range clans {
		pending, err := accountService.CountPendingMemberships(clan.ClanId)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to count pending memberships for clan: %s", clan.ClanId),
				log.Error(err))
			continue
		}

		if pending > lastCounts[clan.ClanId] {
			logger.Debug("Pending membership count grew.", log.String("clan", clan.ClanId),
				log.Int("pending", pending))
			title := fmt.Sprintf("Pending approvals in %s", clan.Name)
			body := fmt.Sprintf("%d membership request(s) are waiting for review.", pending)
			notificationService := notificationProvider.NewNotificationProvider().GetNotificationService()
			if err := notificationService.NotifyAdmins(title, body); err != nil {
				logger.Error(fmt.Sprintf("Failed to notify admins for clan: %s", clan.ClanId),
					log.Error(err))
				continue
			}
		}
		lastCounts[clan.ClanId] = pending
	}
}
