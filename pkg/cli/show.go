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

	"github.com/urfave/cli/v3"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Print full recipes with their computed metrics",
		ArgsUsage:             "FILE|URL|- [FILE|URL|-...]",
		Description: `Print every parsed field of each recipe, including style, mash profile
and ingredient lists, next to the computed summary.

In table and xlsx formats ingredients are laid out on separate sheets.`,
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
			return write(ctx, cmd, format, newRecipeReport(docs))
		},
	}
}
