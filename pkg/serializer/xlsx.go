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
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet every new workbook starts with.
const defaultSheet = "Sheet1"

// writeXLSX renders v as a workbook. Tabular values get one sheet each;
// anything else is flattened into a single FIELD/VALUE sheet.
func writeXLSX(out io.Writer, v any) error {
	sheets := toSheets(v)

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", s.Name, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", s.Name, err)
		}

		if err := writeSheetRows(f, s); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to serialize to XLSX: %w", err)
	}
	return nil
}

func writeSheetRows(f *excelize.File, s Sheet) error {
	header := make([]any, len(s.Header))
	for i, h := range s.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", s.Name, err)
	}

	for i, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("invalid row %d in %s: %w", i, s.Name, err)
		}
		values := make([]any, len(row))
		for j, c := range row {
			if c == nil {
				continue
			}
			values[j] = c
		}
		if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i, s.Name, err)
		}
	}
	return nil
}

func toSheets(v any) []Sheet {
	if t, ok := v.(Tabular); ok {
		if sheets := t.Sheets(); len(sheets) > 0 {
			return sheets
		}
	}

	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(v), "")
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := Sheet{Name: "data", Header: []string{"field", "value"}}
	for _, k := range keys {
		s.Rows = append(s.Rows, []any{k, flat[k]})
	}
	return []Sheet{s}
}
