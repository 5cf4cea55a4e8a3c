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

package serializer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Port  int      `json:"port" yaml:"port"`
	Names []string `json:"names" yaml:"names"`
}

func TestWriter_Serialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   []string
	}{
		{"json", FormatJSON, []string{`"port": 8080`, `"Divit"`}},
		{"yaml", FormatYAML, []string{"port: 8080", "- Divit"}},
		{"unknown falls back to json", Format("xml"), []string{`"port": 8080`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(tt.format, &buf)
			if err := w.Serialize(sample{Port: 8080, Names: []string{"Divit"}}); err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			for _, s := range tt.want {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("output %q missing %q", buf.String(), s)
				}
			}
		})
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	w, err := NewFileWriterOrStdout(FormatYAML, path)
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout() error = %v", err)
	}
	if err := w.Serialize(sample{Port: 9090}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	got, err := FromFile[sample](path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got.Port != 9090 {
		t.Errorf("Port = %d, want 9090", got.Port)
	}

	if _, err := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json")); err == nil {
		t.Error("expected error for unwritable path")
	}

	stdout, err := NewFileWriterOrStdout(FormatJSON, "  ")
	if err != nil {
		t.Fatalf("stdout writer error = %v", err)
	}
	if stdout.output != os.Stdout {
		t.Error("empty path should write to stdout")
	}
}
