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

package cache

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/clan-chest-service/internal/system/log"
)

func TestMain(m *testing.M) {

	if err := log.Init("ERROR"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestCache_SetAndGet(t *testing.T) {

	c := New[[]string](time.Minute)
	c.Set("clans", []string{"alpha", "beta"})

	got, found := c.Get("clans")
	assert.True(t, found)
	assert.Equal(t, []string{"alpha", "beta"}, got)
}

func TestCache_MissReturnsZeroValue(t *testing.T) {

	c := New[[]string](time.Minute)

	got, found := c.Get("absent")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestCache_ExpiredEntryIsAMiss(t *testing.T) {

	c := New[int](-time.Second)
	c.Set("stale", 7)

	_, found := c.Get("stale")
	assert.False(t, found)
}

func TestCache_DeleteInvalidates(t *testing.T) {

	c := New[int](time.Minute)
	c.Set("n", 1)
	c.Delete("n")

	_, found := c.Get("n")
	assert.False(t, found)
}

func TestCache_FlushInvalidatesAll(t *testing.T) {

	c := New[int](time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Flush()

	_, foundA := c.Get("a")
	_, foundB := c.Get("b")
	assert.False(t, foundA)
	assert.False(t, foundB)
}
