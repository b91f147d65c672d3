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
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/brewkit/beerxml/pkg/beerxml"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Summarize the recipes in BeerXML documents",
		ArgsUsage:             "FILE|URL|- [FILE|URL|-...]",
		Description: `Parse one or more BeerXML documents and report, for every recipe:
  - Original and final gravity (specific gravity and degrees Plato)
  - Alcohol by volume
  - Bitterness (IBU, Tinseth)
  - Color (SRM, Morey)
  - Average yeast attenuation

Local files are parsed concurrently. Use "-" to read from stdin.`,
		Flags: []cli.Flag{
			parallelFlag(),
			timeoutFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			docs, err := runLoad(ctx, cmd)
			if err != nil {
				return err
			}
			return write(ctx, cmd, format, newSummaryReport(docs))
		},
	}
}

// runLoad loads the command's arguments within --timeout.
func runLoad(ctx context.Context, cmd *cli.Command) ([]beerxml.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	sources := cmd.Args().Slice()
	docs, err := loadDocuments(ctx, sources, cmd.Int("parallel"))
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	total := 0
	for _, d := range docs {
		total += len(d.Recipes)
	}
	slog.Debug("documents loaded", "documents", len(docs), "recipes", total)
	return docs, nil
}
