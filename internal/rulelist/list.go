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

// Package rulelist maintains one field-scoped working set of rule rows with
// derived search/filter/sort/pagination/selection state. It is generic over
// the row shape and the sort-key enum so the same reconciler backs all three
// rule types.
//
// The list is a cache of remote state, never the source of truth: callers
// round-trip every mutation to the store first and apply the local change
// only after the store confirms it.
package rulelist

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Row is any rule row that can identify itself.
type Row interface {
	RowID() string
}

// Config wires the row-type-specific accessors into the generic list.
// A SortKeys accessor may return a string, an int, a float64, or nil;
// nil (and empty strings) sort after defined values regardless of direction.
type Config[K comparable, T Row] struct {
	SearchText func(T) string
	Field      func(T) string
	Status     func(T) string
	SortKeys   map[K]func(T) interface{}
}

// List is the in-memory working set for one tab.
type List[K comparable, T Row] struct {
	cfg  Config[K, T]
	rows []T

	searchText   string
	fieldFilter  string
	statusFilter string

	sortKey K
	sortDir Direction

	page     int
	pageSize int

	selected map[string]struct{}
	collator *collate.Collator
}

// New creates an empty list sorted by the given default key.
func New[K comparable, T Row](cfg Config[K, T], defaultKey K, pageSize int) *List[K, T] {

	if pageSize <= 0 {
		pageSize = 25
	}
	return &List[K, T]{
		cfg:      cfg,
		sortKey:  defaultKey,
		sortDir:  Ascending,
		page:     1,
		pageSize: pageSize,
		selected: make(map[string]struct{}),
		collator: collate.New(language.Und, collate.Loose),
	}
}

// Load replaces the working set and clears the selection.
func (l *List[K, T]) Load(rows []T) {

	l.rows = make([]T, len(rows))
	copy(l.rows, rows)
	l.selected = make(map[string]struct{})
	l.page = 1
}

// Search narrows the view by a free-text needle. Filters are conjunctive and
// order-independent.
func (l *List[K, T]) Search(text string) {

	l.searchText = strings.TrimSpace(text)
	l.clampPage()
}

// FilterField narrows the view to rows whose field equals the given one.
// An empty value clears the filter.
func (l *List[K, T]) FilterField(field string) {

	l.fieldFilter = field
	l.clampPage()
}

// FilterStatus narrows the view to rows with the given status. An empty value
// clears the filter.
func (l *List[K, T]) FilterStatus(status string) {

	l.statusFilter = status
	l.clampPage()
}

// Sort sets the active sort key and direction.
func (l *List[K, T]) Sort(key K, dir Direction) {

	l.sortKey = key
	if dir != Descending {
		dir = Ascending
	}
	l.sortDir = dir
}

// SetPageSize changes the page size, clamping the page if it would fall past
// the new last page.
func (l *List[K, T]) SetPageSize(size int) {

	if size <= 0 {
		return
	}
	l.pageSize = size
	l.clampPage()
}

// SetPage moves to the given page, clamped into the valid range.
func (l *List[K, T]) SetPage(page int) {

	if page < 1 {
		page = 1
	}
	l.page = page
	l.clampPage()
}

// Page returns the current page number.
func (l *List[K, T]) Page() int {
	return l.page
}

// PageCount returns the number of pages in the filtered view, at least 1.
func (l *List[K, T]) PageCount() int {

	count := len(l.Filtered())
	if count == 0 {
		return 1
	}
	pages := count / l.pageSize
	if count%l.pageSize != 0 {
		pages++
	}
	return pages
}

// Filtered returns the filtered and sorted view, without pagination.
func (l *List[K, T]) Filtered() []T {

	view := make([]T, 0, len(l.rows))
	for _, row := range l.rows {
		if !l.matches(row) {
			continue
		}
		view = append(view, row)
	}
	l.sortView(view)
	return view
}

// Visible returns the rows of the current page.
func (l *List[K, T]) Visible() []T {

	view := l.Filtered()
	start := (l.page - 1) * l.pageSize
	if start >= len(view) {
		return nil
	}
	end := start + l.pageSize
	if end > len(view) {
		end = len(view)
	}
	return view[start:end]
}

// ApplyCreate appends a row confirmed by the store.
func (l *List[K, T]) ApplyCreate(row T) {
	l.rows = append(l.rows, row)
}

// ApplyUpdate replaces a row confirmed by the store.
func (l *List[K, T]) ApplyUpdate(row T) {

	for i := range l.rows {
		if l.rows[i].RowID() == row.RowID() {
			l.rows[i] = row
			return
		}
	}
}

// ApplyDelete removes rows confirmed deleted by the store and drops them from
// the selection.
func (l *List[K, T]) ApplyDelete(ids ...string) {

	gone := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		gone[id] = struct{}{}
		delete(l.selected, id)
	}

	kept := l.rows[:0]
	for _, row := range l.rows {
		if _, ok := gone[row.RowID()]; !ok {
			kept = append(kept, row)
		}
	}
	l.rows = kept
	l.clampPage()
}

// Select marks a row id as selected. Selection survives filter changes.
func (l *List[K, T]) Select(id string) {
	l.selected[id] = struct{}{}
}

// Deselect removes a row id from the selection.
func (l *List[K, T]) Deselect(id string) {
	delete(l.selected, id)
}

// ToggleSelect flips the selection state of a row id.
func (l *List[K, T]) ToggleSelect(id string) {

	if _, ok := l.selected[id]; ok {
		delete(l.selected, id)
		return
	}
	l.selected[id] = struct{}{}
}

// SelectAllVisible selects only the rows on the current page.
func (l *List[K, T]) SelectAllVisible() {

	for _, row := range l.Visible() {
		l.selected[row.RowID()] = struct{}{}
	}
}

// DeselectAllVisible removes only the current page's rows from the selection.
func (l *List[K, T]) DeselectAllVisible() {

	for _, row := range l.Visible() {
		delete(l.selected, row.RowID())
	}
}

// ClearSelection empties the selection.
func (l *List[K, T]) ClearSelection() {
	l.selected = make(map[string]struct{})
}

// Selected returns the selected row ids.
func (l *List[K, T]) Selected() []string {

	ids := make([]string, 0, len(l.selected))
	for id := range l.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsSelected reports whether the given row id is selected.
func (l *List[K, T]) IsSelected(id string) bool {

	_, ok := l.selected[id]
	return ok
}

// AllVisibleSelected reports whether every row on the current page is
// selected. It is computed against visible rows only, not the whole filtered
// set.
func (l *List[K, T]) AllVisibleSelected() bool {

	visible := l.Visible()
	if len(visible) == 0 {
		return false
	}
	for _, row := range visible {
		if _, ok := l.selected[row.RowID()]; !ok {
			return false
		}
	}
	return true
}

// SomeVisibleSelected reports whether the current page is in the
// indeterminate state: some but not all visible rows selected.
func (l *List[K, T]) SomeVisibleSelected() bool {

	visible := l.Visible()
	selected := 0
	for _, row := range visible {
		if _, ok := l.selected[row.RowID()]; ok {
			selected++
		}
	}
	return selected > 0 && selected < len(visible)
}

func (l *List[K, T]) matches(row T) bool {

	if l.searchText != "" && l.cfg.SearchText != nil {
		haystack := strings.ToLower(l.cfg.SearchText(row))
		if !strings.Contains(haystack, strings.ToLower(l.searchText)) {
			return false
		}
	}
	if l.fieldFilter != "" && l.cfg.Field != nil {
		if l.cfg.Field(row) != l.fieldFilter {
			return false
		}
	}
	if l.statusFilter != "" && l.cfg.Status != nil {
		if l.cfg.Status(row) != l.statusFilter {
			return false
		}
	}
	return true
}

func (l *List[K, T]) sortView(view []T) {

	keyFn, ok := l.cfg.SortKeys[l.sortKey]
	if !ok {
		return
	}

	sort.SliceStable(view, func(i, j int) bool {
		a := keyFn(view[i])
		b := keyFn(view[j])

		aDefined := defined(a)
		bDefined := defined(b)

		// Incomplete data sorts last regardless of direction.
		if aDefined != bDefined {
			return aDefined
		}
		if !aDefined {
			return false
		}

		less := l.compare(a, b)
		if l.sortDir == Descending {
			return less > 0
		}
		return less < 0
	})
}

// compare returns a negative, zero or positive value. Numeric values compare
// numerically; everything else compares via locale-aware, case-insensitive
// collation.
func (l *List[K, T]) compare(a, b interface{}) int {

	aNum, aIsNum := toFloat(a)
	bNum, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		default:
			return 0
		}
	}

	return l.collator.CompareString(toString(a), toString(b))
}

// clampPage resets to the first page whenever the current page would point
// past the last one. Reset-on-shrink is an invariant, not a convenience.
func (l *List[K, T]) clampPage() {

	if l.page > l.PageCount() {
		l.page = 1
	}
}

func defined(v interface{}) bool {

	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case *int:
		return val != nil
	case *string:
		return val != nil && *val != ""
	default:
		return true
	}
}

func toFloat(v interface{}) (float64, bool) {

	switch val := v.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case *int:
		if val == nil {
			return 0, false
		}
		return float64(*val), true
	default:
		return 0, false
	}
}

func toString(v interface{}) string {

	switch val := v.(type) {
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	default:
		return ""
	}
}
