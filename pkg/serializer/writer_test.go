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
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type measurement struct {
	Name  string   `json:"name" yaml:"name"`
	Value float64  `json:"value" yaml:"value"`
	Unit  *string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Skip  string   `json:"-" yaml:"-"`
}

type report struct {
	rows []measurement
}

func (r report) Sheets() []Sheet {
	s := Sheet{Name: "measurements", Header: []string{"name", "value"}}
	for _, m := range r.rows {
		s.Rows = append(s.Rows, []any{m.Name, m.Value})
	}
	return []Sheet{s, {Name: "empty", Header: []string{"x"}}}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []measurement{{Name: "og", Value: 1.05}, {Name: "ibu", Value: 32}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []measurement
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[1].Name != "ibu" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []measurement{{Name: "og", Value: 1.05}}
	require.NoError(t, writer.Serialize(context.Background(), data))

	var result []measurement
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 1)
	assert.InDelta(t, 1.05, result[0].Value, 0)
}

func TestWriter_SerializeTableFlattened(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	unit := "SRM"
	data := measurement{Name: "color", Value: 6.27, Unit: &unit, Tags: []string{"a", "b"}, Skip: "hidden"}
	require.NoError(t, writer.Serialize(context.Background(), data))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "unit")
	assert.Contains(t, out, "SRM")
	assert.Contains(t, out, "tags[1]")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "Skip")
}

func TestWriter_SerializeTableSheets(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := report{rows: []measurement{{Name: "og", Value: 1.0556006}}}
	require.NoError(t, writer.Serialize(context.Background(), data))

	out := buf.String()
	assert.Contains(t, out, "== measurements ==")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "1.056")
	assert.Contains(t, out, "== empty ==")
	assert.Contains(t, out, "<empty>")
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	w := NewWriter(Format("toml"), &bytes.Buffer{})
	assert.Equal(t, FormatJSON, w.Format())
}

func TestFormat(t *testing.T) {
	assert.False(t, FormatXLSX.IsUnknown())
	assert.True(t, Format("csv").IsUnknown())
	assert.True(t, FormatXLSX.IsBinary())
	assert.False(t, FormatTable.IsBinary())
	assert.Equal(t, []string{"json", "yaml", "table", "xlsx"}, SupportedFormats())
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.yaml", FormatYAML},
		{"out.YML", FormatYAML},
		{"report.xlsx", FormatXLSX},
		{"summary.txt", FormatTable},
		{"out.json", FormatJSON},
		{"noext", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w, err := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, err)
	require.NoError(t, w.Serialize(context.Background(), map[string]int{"recipes": 3}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"recipes": 3`))

	stdout, err := NewFileWriterOrStdout(FormatYAML, "-")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, stdout.Format())

	_, err = NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}
