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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/brewkit/beerxml/pkg/errors"
	"github.com/brewkit/beerxml/pkg/header"
	"github.com/brewkit/beerxml/pkg/serializer"
)

const (
	ipaFile    = "../beerxml/testdata/american_ipa.xml"
	porterFile = "../beerxml/testdata/porter.xml"
	stoutFile  = "../beerxml/testdata/dry_stout.xml"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &buf
	cmd.ErrWriter = &buf
	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return buf.String(), err
}

func TestParseCommand_JSON(t *testing.T) {
	out, err := run(t, "parse", "--format", "json", ipaFile)
	require.NoError(t, err)

	var report SummaryReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)
	assert.Equal(t, header.KindRecipeSummary, report.Kind)
	assert.Equal(t, header.APIVersion, report.APIVersion)
	require.Len(t, report.Documents, 1)
	assert.Equal(t, ipaFile, report.Documents[0].Source)
	require.Len(t, report.Documents[0].Recipes, 1)

	sum := report.Documents[0].Recipes[0]
	assert.Equal(t, "Simcoe Session IPA", sum.Name)
	assert.InDelta(t, 1.0338, sum.OG, 0.0001)
	assert.InDelta(t, 3.84, sum.ABV, 0.01)
}

func TestParseCommand_TableKeepsOrder(t *testing.T) {
	out, err := run(t, "parse", "--format", "table", "--parallel", "2", stoutFile, ipaFile, porterFile)
	require.NoError(t, err)

	assert.Contains(t, out, "== summary ==")
	assert.Contains(t, out, "ATTENUATION")
	stout := strings.Index(out, stoutFile)
	ipa := strings.Index(out, ipaFile)
	porter := strings.Index(out, porterFile)
	require.True(t, stout >= 0 && ipa >= 0 && porter >= 0, out)
	assert.Less(t, stout, ipa)
	assert.Less(t, ipa, porter)
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"missing file", []string{"parse", "testdata/nope.xml"}, errors.ErrCodeNotFound},
		{"no documents", []string{"parse"}, errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), err.Error())
		})
	}
}

func TestParseCommand_UnknownFormat(t *testing.T) {
	_, err := run(t, "parse", "--format", "csv", ipaFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestParseCommand_FromURL(t *testing.T) {
	doc, err := os.ReadFile(porterFile)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.UserAgent(), name+"/"))
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(doc)
	}))
	defer srv.Close()

	out, err := run(t, "parse", "--format", "json", srv.URL+"/porter.xml", ipaFile)
	require.NoError(t, err)

	var report SummaryReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Documents, 2)
	assert.Equal(t, srv.URL+"/porter.xml", report.Documents[0].Source)
	require.NotNil(t, report.Documents[0].Recipes[0].Brewer)
	assert.Equal(t, "Niels Kjøller", *report.Documents[0].Recipes[0].Brewer)
	assert.Equal(t, ipaFile, report.Documents[1].Source)
}

func TestShowCommand_YAML(t *testing.T) {
	out, err := run(t, "show", "--format", "yaml", porterFile)
	require.NoError(t, err)

	var report RecipeReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report), out)
	require.Len(t, report.Documents, 1)
	require.Len(t, report.Documents[0].Recipes, 1)

	detail := report.Documents[0].Recipes[0]
	require.NotNil(t, detail.Recipe)
	assert.Len(t, detail.Recipe.Fermentables, 5)
	require.NotNil(t, detail.Recipe.Mash)
	assert.Len(t, detail.Recipe.Mash.Steps, 2)
	assert.InDelta(t, 1.0556, detail.Summary.OG, 0.0001)
}

func TestShowCommand_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.xlsx")

	_, err := run(t, "show", "--output", path, stoutFile, porterFile)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"summary", "fermentables", "hops", "yeasts", "miscs", "mash_steps"}, f.GetSheetList())

	rows, err := f.GetRows("hops")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, "source", rows[0][0])
}

func TestShowCommand_XLSXRequiresOutput(t *testing.T) {
	_, err := run(t, "show", "--format", "xlsx", ipaFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires --output")
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "--format", "json", ipaFile)
	require.NoError(t, err)

	var report StyleReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Documents, 1)
	res := report.Documents[0].Recipes[0]
	assert.Equal(t, "American IPA", res.Style)
	assert.False(t, res.Within)
	assert.Len(t, res.Checks, 5)

	_, err = run(t, "check", "--strict", "--format", "json", ipaFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside their style ranges")
}

func TestOutputFormatFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.yaml")

	_, err := run(t, "parse", "--output", path, ipaFile)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "kind: RecipeSummary"), string(data))
	assert.Contains(t, string(data), "documents:")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    serializer.Format
		wantErr bool
	}{
		{"default", nil, serializer.FormatJSON, false},
		{"explicit yaml", []string{"--format", "yaml"}, serializer.FormatYAML, false},
		{"case insensitive", []string{"--format", "TABLE"}, serializer.FormatTable, false},
		{"from output", []string{"--output", "out.xlsx"}, serializer.FormatXLSX, false},
		{"flag wins over output", []string{"--format", "json", "--output", "out.yaml"}, serializer.FormatJSON, false},
		{"stdout dash", []string{"--output", "-"}, serializer.FormatJSON, false},
		{"unknown", []string{"--format", "xml"}, "", true},
		{"empty", []string{"--format", ""}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{outputFlag(), formatFlag()},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.want, got)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, tt.args...)))
		})
	}
}
