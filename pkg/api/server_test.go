// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	assert.Equal(t, "namesd", Name())
	assert.Equal(t, "dev", versionDefault)

	// Verify buildtime variables exist (they may have default values)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
	assert.Contains(t, VersionInfo(), version)
}

func request(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func names(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var out []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// TestScenarios walks the documented request sequence against a fresh service.
func TestScenarios(t *testing.T) {
	srv, _ := NewServer(NewSettings())
	h := srv.Handler()

	w := request(t, h, http.MethodGet, "/names", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Divit"}, names(t, w))

	w = request(t, h, http.MethodGet, "/hello/Divit", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello Divit!", w.Body.String())

	w = request(t, h, http.MethodGet, "/hello/Unknown", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name not in the list", w.Body.String())

	w = request(t, h, http.MethodPost, "/names", `{"name":"Alice"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Successfully created."}`, w.Body.String())

	w = request(t, h, http.MethodGet, "/names", "")
	assert.Equal(t, []string{"Divit", "Alice"}, names(t, w))

	for range 2 {
		w = request(t, h, http.MethodPost, "/names", `{"name":"Divit"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"message":"Already contains name"}`, w.Body.String())
	}

	w = request(t, h, http.MethodGet, "/names", "")
	assert.Equal(t, []string{"Divit", "Alice"}, names(t, w))
}

func TestRegistriesAreIndependent(t *testing.T) {
	srvA, regA := NewServer(NewSettings())
	_, regB := NewServer(NewSettings())

	w := request(t, srvA.Handler(), http.MethodPost, "/names", `{"name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, 2, regA.Len())
	assert.Equal(t, 1, regB.Len())
}

func TestSeedFromSettings(t *testing.T) {
	s := NewSettings()
	s.Names = []string{"Alice", "Bob"}

	srv, _ := NewServer(s)

	w := request(t, srv.Handler(), http.MethodGet, "/names", "")
	assert.Equal(t, []string{"Alice", "Bob"}, names(t, w))

	w = request(t, srv.Handler(), http.MethodGet, "/hello/Divit", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConcurrentRequests(t *testing.T) {
	srv, reg := NewServer(NewSettings())
	h := srv.Handler()

	var wg sync.WaitGroup
	for range 40 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w := request(t, h, http.MethodPost, "/names", `{"name":"Alice"}`)
			assert.Contains(t, []int{http.StatusCreated, http.StatusConflict}, w.Code)
		}()
		go func() {
			defer wg.Done()
			w := request(t, h, http.MethodGet, "/names", "")
			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"Divit", "Alice"}, reg.List())
}

func TestServeStopsOnCancel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	s := NewSettings()
	s.Server.Port = 0
	s.Server.ShutdownTimeout = 100 * time.Millisecond
	s.LogLevel = "error"

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- Serve(ctx, s)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
