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

	"github.com/urfave/cli/v3"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Compare recipe metrics with their declared style",
		ArgsUsage:             "FILE|URL|- [FILE|URL|-...]",
		Description: `Compare the computed gravity, bitterness, color and alcohol of each recipe
with the ranges of the style it declares. Ranges the style leaves out are
not checked.

With --strict the command exits non-zero when any recipe is out of range.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when any metric falls outside its style range",
			},
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

			report := newStyleReport(docs)
			if err := write(ctx, cmd, format, report); err != nil {
				return err
			}
			if n := report.OutOfRange(); n > 0 && cmd.Bool("strict") {
				return fmt.Errorf("%d recipe(s) outside their style ranges", n)
			}
			return nil
		},
	}
}
