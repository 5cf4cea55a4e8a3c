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

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/mchmarny/namereg/pkg/api"
)

// runCapture runs the root command and returns the settings handed to serve.
func runCapture(t *testing.T, args ...string) (*api.Settings, error) {
	t.Helper()
	var got *api.Settings
	cmd := newRootCmd(func(_ context.Context, s *api.Settings) error {
		got = s
		return nil
	})
	err := cmd.Run(context.Background(), append([]string{"namesd"}, args...))
	return got, err
}

func TestRootCmd_Defaults(t *testing.T) {
	s, err := runCapture(t)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "127.0.0.1:8080", s.Server.Addr())
	assert.Equal(t, []string{"Divit"}, s.Names)
}

func TestRootCmd_Flags(t *testing.T) {
	s, err := runCapture(t,
		"--address", "0.0.0.0",
		"--port", "9090",
		"--log-level", "debug",
		"-n", "Alice",
		"--name", "Bob",
	)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", s.Server.Addr())
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, []string{"Alice", "Bob"}, s.Names)
}

func TestRootCmd_RateLimitOptIn(t *testing.T) {
	s, err := runCapture(t)
	require.NoError(t, err)
	assert.Equal(t, rate.Inf, s.Server.RateLimit)

	s, err = runCapture(t, "--rate-limit", "50", "--rate-limit-burst", "75")
	require.NoError(t, err)
	assert.Equal(t, rate.Limit(50), s.Server.RateLimit)
	assert.Equal(t, 75, s.Server.RateLimitBurst)
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namesd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7070\naddress: 10.0.0.1\nnames: [Zed]\n"), 0600))

	s, err := runCapture(t, "-c", path, "--port", "9191")
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1:9191", s.Server.Addr())
	assert.Equal(t, []string{"Zed"}, s.Names)
}

func TestRootCmd_EnvBelowConfig(t *testing.T) {
	t.Setenv("PORT", "6060")

	s, err := runCapture(t)
	require.NoError(t, err)
	assert.Equal(t, 6060, s.Server.Port)

	path := filepath.Join(t.TempDir(), "namesd.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 7070}`), 0600))

	s, err = runCapture(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 7070, s.Server.Port)
}

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid port", []string{"--port", "70000"}},
		{"zero rate limit", []string{"--rate-limit", "0"}},
		{"negative burst", []string{"--rate-limit-burst", "-1"}},
		{"missing config", []string{"--config", "/nonexistent/namesd.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := runCapture(t, tt.args...)
			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestRootCmd_ServeError(t *testing.T) {
	want := errors.New("bind failed")
	cmd := newRootCmd(func(context.Context, *api.Settings) error { return want })

	err := cmd.Run(context.Background(), []string{"namesd"})
	assert.ErrorIs(t, err, want)
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	called := false
	cmd := newRootCmd(func(context.Context, *api.Settings) error {
		called = true
		return nil
	})
	cmd.Writer = &buf

	require.NoError(t, cmd.Run(context.Background(), []string{"namesd", "version"}))

	assert.False(t, called, "version must not start the server")
	assert.Contains(t, buf.String(), "namesd")
	assert.Contains(t, buf.String(), api.VersionInfo())
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namesd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("names: [Alice, Bob]\n"), 0600))

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "yaml default",
			args: []string{"namesd", "--port", "9090", "config"},
			want: []string{"port: 9090", "- Divit"},
		},
		{
			name: "json from config file",
			args: []string{"namesd", "-c", path, "config", "--format", "json"},
			want: []string{`"port": 8080`, `"Alice"`, `"Bob"`},
		},
		{
			name:    "unknown format",
			args:    []string{"namesd", "config", "-t", "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := newRootCmd(func(context.Context, *api.Settings) error {
				t.Fatal("config must not start the server")
				return nil
			})
			cmd.Writer = &buf

			err := cmd.Run(context.Background(), tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestConfigCmd_OutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "effective.json")
	cmd := newRootCmd(nil)

	require.NoError(t, cmd.Run(context.Background(), []string{"namesd", "config", "-t", "json", "-o", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"address": "127.0.0.1"`)
}
