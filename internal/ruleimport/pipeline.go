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
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/wso2/clan-chest-service/internal/system/constants"
	errors2 "github.com/wso2/clan-chest-service/internal/system/errors"
)

// State is the import pipeline state.
type State string

const (
	Idle       State = "idle"
	FileChosen State = "fileChosen"
	Parsed     State = "parsed"
	Applying   State = "applying"
)

// Applier is the persistence boundary of the pipeline. Implementations wrap
// the per-rule-type stores.
type Applier interface {
	// Existing returns the persisted entries for the clan and field, used
	// for the apply-time dedup pass.
	Existing(clanId, field string) ([]Entry, error)
	// DeleteField removes every rule for the clan and field (replace mode).
	DeleteField(clanId, field string) error
	// Insert persists the surviving entries.
	Insert(clanId string, entries []Entry) error
}

// Options controls one apply run.
type Options struct {
	ClanId           string
	Field            string
	Mode             string // append, replace
	IgnoreDuplicates bool
}

// Summary reports the outcome of a successful apply.
type Summary struct {
	Inserted        int `json:"inserted"`
	SkippedExisting int `json:"skipped_existing"`
}

// Pipeline drives one import: idle -> fileChosen -> parsed -> applying ->
// idle. A replace-mode apply additionally requires the confirmation gate to
// have completed.
//
// A pipeline is bound to one clan and field at construction; an apply whose
// options name a different scope is rejected. All methods are safe for
// concurrent use.
type Pipeline struct {
	mu       sync.Mutex
	ruleType RuleType
	clanId   string
	field    string
	state    State
	fileName string
	result   ParseResult
	confirm  *Confirmation
}

// NewPipeline creates an idle pipeline for one rule type, scoped to one clan
// and field.
func NewPipeline(ruleType RuleType, clanId, field string) *Pipeline {
	return &Pipeline{
		ruleType: ruleType,
		clanId:   clanId,
		field:    field,
		state:    Idle,
		confirm:  NewConfirmation(constants.ReplaceConfirmationPhrase),
	}
}

// State returns the pipeline state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// FileName returns the chosen file name, if any.
func (p *Pipeline) FileName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fileName
}

// Result returns the last parse result.
func (p *Pipeline) Result() ParseResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// ClanId returns the clan the pipeline is bound to.
func (p *Pipeline) ClanId() string {
	return p.clanId
}

// Field returns the rule field the pipeline is bound to.
func (p *Pipeline) Field() string {
	return p.field
}

// Confirmation exposes the replace-mode confirmation gate. The gate is
// replaced after a successful apply, so callers must not hold the pointer
// across requests.
func (p *Pipeline) Confirmation() *Confirmation {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.confirm
}

// ChooseFile records the uploaded file name and moves to fileChosen.
func (p *Pipeline) ChooseFile(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fileName = name
	p.state = FileChosen
}

// Parse runs the parser over the chosen file, with the bound field as the
// default, and moves to parsed. The user may re-parse after edits; parse
// errors never abort the import.
func (p *Pipeline) Parse(r io.Reader) ParseResult {

	result := Parse(p.ruleType, p.field, r)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.result = result
	p.state = Parsed
	return result
}

// SetEntries replaces the parsed entries with user-edited ones.
func (p *Pipeline) SetEntries(entries []Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.result.Entries = entries
}

// Apply reconciles the parsed entries against the persisted rule set.
//
// With IgnoreDuplicates, entries whose natural key already exists among the
// persisted rules for the active field are skipped; this is a second dedup
// pass, distinct from the within-file pass done at parse time. Replace mode
// deletes the field's existing rules first and is blocked unless the
// confirmation gate has completed. Any store error aborts the apply with the
// store's error surfaced verbatim; the pipeline returns to parsed and the
// user must re-invoke apply. On success the pipeline clears its own state.
func (p *Pipeline) Apply(applier Applier, opts Options) (Summary, error) {

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Parsed {
		return Summary{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.IMPORT_APPLY.Code,
			Message:     errors2.IMPORT_APPLY.Message,
			Description: "No parsed import to apply.",
		}, http.StatusConflict)
	}
	if opts.ClanId != p.clanId || opts.Field != p.field {
		return Summary{}, errors2.NewClientError(errors2.ErrImportScopeMismatch, http.StatusConflict)
	}
	if !constants.AllowedImportModes[opts.Mode] {
		return Summary{}, errors2.NewClientError(errors2.ErrInvalidImportMode, http.StatusBadRequest)
	}
	if opts.Mode == constants.ImportModeReplace && !p.confirm.Confirmed() {
		return Summary{}, errors2.NewClientError(errors2.ErrConfirmationRequired, http.StatusConflict)
	}

	p.state = Applying

	entries := p.result.Entries
	summary := Summary{}

	if opts.Mode == constants.ImportModeAppend && opts.IgnoreDuplicates {
		existing, err := applier.Existing(opts.ClanId, opts.Field)
		if err != nil {
			p.state = Parsed
			return Summary{}, err
		}
		existingKeys := make(map[string]bool, len(existing))
		for _, e := range existing {
			existingKeys[e.Key()] = true
		}

		surviving := make([]Entry, 0, len(entries))
		for _, entry := range entries {
			if existingKeys[entry.Key()] {
				summary.SkippedExisting++
				continue
			}
			surviving = append(surviving, entry)
		}
		entries = surviving
	}

	if opts.Mode == constants.ImportModeReplace {
		if err := applier.DeleteField(opts.ClanId, opts.Field); err != nil {
			p.state = Parsed
			return Summary{}, err
		}
	}

	if len(entries) > 0 {
		if err := applier.Insert(opts.ClanId, entries); err != nil {
			p.state = Parsed
			return Summary{}, err
		}
	}
	summary.Inserted = len(entries)

	p.reset()
	return summary, nil
}

// reset clears file name, entries, errors and the confirmation gate.
func (p *Pipeline) reset() {
	p.fileName = ""
	p.result = ParseResult{}
	p.state = Idle
	p.confirm = NewConfirmation(constants.ReplaceConfirmationPhrase)
}

// ValidField reports whether the given rule field is importable.
func ValidField(field string) bool {
	return constants.AllowedRuleFields[strings.ToLower(field)]
}
