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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/brewkit/beerxml/pkg/defaults"
	"github.com/brewkit/beerxml/pkg/serializer"
)

// Flag constructors return fresh instances; urfave flags keep parse state.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("BEERXML_OUTPUT"),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("BEERXML_FORMAT"),
	}
}

func parallelFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "parallel",
		Value: defaults.ParseParallelism,
		Usage: "Maximum number of local documents parsed at once",
	}
}

func timeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:  "timeout",
		Value: defaults.CLIParseTimeout,
		Usage: "Time allowed for reading and parsing all documents",
	}
}

// parseOutputFormat resolves the output format from --format, falling back
// to the --output extension and then JSON.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if cmd.IsSet("format") {
		f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
		if f.IsUnknown() {
			return "", fmt.Errorf("unknown output format %q, supported: %s",
				cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
		}
		return f, nil
	}
	if out := cmd.String("output"); out != "" && out != "-" {
		return serializer.FormatFromPath(out), nil
	}
	return serializer.FormatJSON, nil
}

// write serializes v to the file named by --output, or to the command's
// writer when no file is given.
func write(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) (err error) {
	out := strings.TrimSpace(cmd.String("output"))
	toStdout := out == "" || out == "-"
	if format.IsBinary() && toStdout {
		return fmt.Errorf("format %q requires --output", format)
	}

	var w *serializer.Writer
	if toStdout {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	} else if w, err = serializer.NewFileWriterOrStdout(format, out); err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return w.Serialize(ctx, v)
}
