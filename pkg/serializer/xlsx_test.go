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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriter_SerializeXLSXSheets(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatXLSX, &buf)

	data := report{rows: []measurement{{Name: "og", Value: 1.05}, {Name: "ibu", Value: 32}}}
	require.NoError(t, writer.Serialize(context.Background(), data))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"measurements", "empty"}, f.GetSheetList())

	rows, err := f.GetRows("measurements")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "value"}, rows[0])
	assert.Equal(t, "ibu", rows[2][0])
	assert.Equal(t, "32", rows[2][1])
}

func TestWriter_SerializeXLSXFlattened(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatXLSX, &buf).Serialize(context.Background(), measurement{Name: "abv", Value: 5.35}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("data")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"field", "value"}, rows[0])
	assert.Equal(t, []string{"name", "abv"}, rows[1])
	assert.Equal(t, "value", rows[2][0])
}
