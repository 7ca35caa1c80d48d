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

package ruleimport

import (
	"net/http"
	"sync"

	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
)

// ConfirmState models the two-step destructive-confirmation flow as an
// explicit three-state machine.
type ConfirmState string

const (
	ConfirmClosed  ConfirmState = "closed"
	Confirming     ConfirmState = "confirming"
	AwaitingPhrase ConfirmState = "awaitingPhrase"
)

// Confirmation gates a destructive replace import behind two explicit steps:
// opening the confirmation and then typing the exact phrase. A phrase
// mismatch blocks the action with a generic message; there is no retry limit.
// Safe for concurrent use.
type Confirmation struct {
	mu        sync.Mutex
	state     ConfirmState
	phrase    string
	confirmed bool
}

// NewConfirmation creates a closed confirmation gate for the given phrase.
func NewConfirmation(phrase string) *Confirmation {
	return &Confirmation{
		state:  ConfirmClosed,
		phrase: phrase,
	}
}

// State returns the current state of the gate.
func (c *Confirmation) State() ConfirmState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Confirmed reports whether the full flow has completed.
func (c *Confirmation) Confirmed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmed
}

// Open moves closed -> confirming. Opening again resets a previous
// confirmation.
func (c *Confirmation) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Confirming
	c.confirmed = false
}

// Proceed moves confirming -> awaitingPhrase.
func (c *Confirmation) Proceed() error {

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Confirming {
		return errors2.NewClientError(errors2.ErrConfirmationRequired, http.StatusConflict)
	}
	c.state = AwaitingPhrase
	return nil
}

// SubmitPhrase completes the flow when the typed phrase matches exactly.
// On mismatch the gate stays in awaitingPhrase so the operator can retry.
func (c *Confirmation) SubmitPhrase(input string) error {

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != AwaitingPhrase {
		return errors2.NewClientError(errors2.ErrConfirmationRequired, http.StatusConflict)
	}
	if input != c.phrase {
		return errors2.NewClientError(errors2.ErrConfirmationPhrase, http.StatusBadRequest)
	}
	c.state = ConfirmClosed
	c.confirmed = true
	return nil
}

// Cancel aborts the flow and closes the gate.
func (c *Confirmation) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ConfirmClosed
	c.confirmed = false
}
