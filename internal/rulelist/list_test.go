/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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

package rulelist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	id     string
	field  string
	value  string
	status string
	order  *int
}

func (r testRow) RowID() string { return r.id }

type sortKey string

const (
	byValue  sortKey = "value"
	byStatus sortKey = "status"
	byOrder  sortKey = "order"
)

func newTestList(pageSize int) *List[sortKey, testRow] {
	cfg := Config[sortKey, testRow]{
		SearchText: func(r testRow) string { return r.value },
		Field:      func(r testRow) string { return r.field },
		Status:     func(r testRow) string { return r.status },
		SortKeys: map[sortKey]func(testRow) interface{}{
			byValue:  func(r testRow) interface{} { return r.value },
			byStatus: func(r testRow) interface{} { return r.status },
			byOrder:  func(r testRow) interface{} { return r.order },
		},
	}
	return New(cfg, byValue, pageSize)
}

func rows(n int) []testRow {
	out := make([]testRow, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, testRow{
			id:     fmt.Sprintf("id-%02d", i),
			field:  "chest",
			value:  fmt.Sprintf("Chest %02d", i),
			status: "valid",
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Filtering
// ---------------------------------------------------------------------------

func TestFilters_AreConjunctive(t *testing.T) {
	l := newTestList(25)
	l.Load([]testRow{
		{id: "1", field: "chest", value: "Golden Chest", status: "valid"},
		{id: "2", field: "chest", value: "Golden Crate", status: "invalid"},
		{id: "3", field: "source", value: "Golden Mine", status: "valid"},
	})

	l.Search("golden")
	l.FilterField("chest")
	l.FilterStatus("valid")

	view := l.Filtered()
	require.Len(t, view, 1)
	assert.Equal(t, "1", view[0].id)
}

func TestFilters_OrderIndependent(t *testing.T) {
	data := []testRow{
		{id: "1", field: "chest", value: "Golden Chest", status: "valid"},
		{id: "2", field: "source", value: "Golden Mine", status: "valid"},
	}

	a := newTestList(25)
	a.Load(data)
	a.Search("golden")
	a.FilterField("chest")

	b := newTestList(25)
	b.Load(data)
	b.FilterField("chest")
	b.Search("golden")

	assert.Equal(t, a.Filtered(), b.Filtered())
}

func TestSearch_CaseInsensitive(t *testing.T) {
	l := newTestList(25)
	l.Load([]testRow{{id: "1", value: "Golden Chest"}})

	l.Search("GOLDEN")
	assert.Len(t, l.Filtered(), 1)
}

// ---------------------------------------------------------------------------
// Sorting
// ---------------------------------------------------------------------------

func TestSort_NullsLast_Ascending(t *testing.T) {
	l := newTestList(25)
	l.Load([]testRow{
		{id: "1", status: "valid"},
		{id: "2", status: ""},
		{id: "3", status: "invalid"},
	})

	l.Sort(byStatus, Ascending)
	view := l.Filtered()
	require.Len(t, view, 3)
	assert.Equal(t, "3", view[0].id) // invalid
	assert.Equal(t, "1", view[1].id) // valid
	assert.Equal(t, "2", view[2].id) // empty sorts last
}

func TestSort_NullsLast_Descending(t *testing.T) {
	l := newTestList(25)
	l.Load([]testRow{
		{id: "1", status: "valid"},
		{id: "2", status: ""},
		{id: "3", status: "invalid"},
	})

	l.Sort(byStatus, Descending)
	view := l.Filtered()
	require.Len(t, view, 3)
	assert.Equal(t, "1", view[0].id)
	assert.Equal(t, "3", view[1].id)
	assert.Equal(t, "2", view[2].id, "empty still sorts last when descending")
}

func TestSort_NumericKey_ComparesNumerically(t *testing.T) {
	two, ten := 2, 10
	l := newTestList(25)
	l.Load([]testRow{
		{id: "a", order: &ten},
		{id: "b", order: &two},
		{id: "c", order: nil},
	})

	l.Sort(byOrder, Ascending)
	view := l.Filtered()
	require.Len(t, view, 3)
	assert.Equal(t, "b", view[0].id)
	assert.Equal(t, "a", view[1].id)
	assert.Equal(t, "c", view[2].id, "nil numeric sorts last")
}

func TestSort_String_CaseInsensitive(t *testing.T) {
	l := newTestList(25)
	l.Load([]testRow{
		{id: "1", value: "beta"},
		{id: "2", value: "Alpha"},
	})

	l.Sort(byValue, Ascending)
	view := l.Filtered()
	assert.Equal(t, "2", view[0].id)
}

// ---------------------------------------------------------------------------
// Pagination
// ---------------------------------------------------------------------------

func TestPage_ClampsOnShrink(t *testing.T) {
	l := newTestList(5)
	l.Load(rows(12))
	l.SetPage(3)
	require.Equal(t, 3, l.Page())

	// Narrowing to 3 rows leaves page 3 past the end; it resets to 1.
	l.Search("Chest 0")
	assert.Equal(t, 1, l.Page())
}

func TestPage_ClampsOnPageSizeChange(t *testing.T) {
	l := newTestList(5)
	l.Load(rows(12))
	l.SetPage(3)

	l.SetPageSize(12)
	assert.Equal(t, 1, l.Page())
}

func TestVisible_SlicesCurrentPage(t *testing.T) {
	l := newTestList(5)
	l.Load(rows(12))

	l.SetPage(3)
	visible := l.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "id-10", visible[0].id)
}

func TestPageCount(t *testing.T) {
	l := newTestList(5)
	l.Load(rows(12))
	assert.Equal(t, 3, l.PageCount())

	l.Load(nil)
	assert.Equal(t, 1, l.PageCount())
}

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

func TestSelection_SurvivesFilterChanges(t *testing.T) {
	l := newTestList(25)
	l.Load([]testRow{
		{id: "1", field: "chest", value: "Golden Chest"},
		{id: "2", field: "source", value: "Mine"},
	})

	l.Select("2")
	l.FilterField("chest")

	assert.True(t, l.IsSelected("2"), "selection is not pruned by filters")
}

func TestSelectAllVisible_OnlyCurrentPage(t *testing.T) {
	l := newTestList(5)
	l.Load(rows(12))

	l.SelectAllVisible()
	assert.Len(t, l.Selected(), 5)

	l.SetPage(2)
	assert.False(t, l.AllVisibleSelected())
}

func TestAllVisibleSelected_IsPageScoped(t *testing.T) {
	l := newTestList(5)
	l.Load(rows(12))
	l.SelectAllVisible()

	assert.True(t, l.AllVisibleSelected())
	assert.False(t, l.SomeVisibleSelected())
}

func TestSomeVisibleSelected_Indeterminate(t *testing.T) {
	l := newTestList(5)
	l.Load(rows(12))
	l.Select("id-00")

	assert.False(t, l.AllVisibleSelected())
	assert.True(t, l.SomeVisibleSelected())
}

func TestLoad_ClearsSelection(t *testing.T) {
	l := newTestList(25)
	l.Load(rows(3))
	l.Select("id-00")

	l.Load(rows(3))
	assert.Empty(t, l.Selected())
}

// ---------------------------------------------------------------------------
// Confirmed mutations
// ---------------------------------------------------------------------------

func TestApplyDelete_RemovesRowsAndSelection(t *testing.T) {
	l := newTestList(25)
	l.Load(rows(3))
	l.Select("id-01")

	l.ApplyDelete("id-01")
	assert.Len(t, l.Filtered(), 2)
	assert.False(t, l.IsSelected("id-01"))
}

func TestApplyUpdate_ReplacesRowInPlace(t *testing.T) {
	l := newTestList(25)
	l.Load(rows(2))

	l.ApplyUpdate(testRow{id: "id-01", value: "Renamed", status: "valid"})
	view := l.Filtered()
	for _, row := range view {
		if row.id == "id-01" {
			assert.Equal(t, "Renamed", row.value)
			return
		}
	}
	t.Fatal("updated row not found")
}
