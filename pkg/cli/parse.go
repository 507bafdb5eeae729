/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/cooklang/pkg/convert"
	"github.com/NVIDIA/cooklang/pkg/diag"
	"github.com/NVIDIA/cooklang/pkg/parser"
	"github.com/NVIDIA/cooklang/pkg/recipe"
	"github.com/NVIDIA/cooklang/pkg/scale"
	"github.com/NVIDIA/cooklang/pkg/serializer"
)

// parseResult is the per-file output document of the parse command.
type parseResult struct {
	File        string               `json:"file" yaml:"file"`
	Recipe      *recipe.ScaledRecipe `json:"recipe" yaml:"recipe"`
	Diagnostics *diag.Report         `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse cooklang recipe files",
		ArgsUsage:             "FILE [FILE...]",
		Description: `Parse one or more recipe files written in cooklang markup and output
the extracted structure: steps, ingredients, cookware, timers, and
metadata.

Parsing never aborts on malformed markup. Errors and warnings are
collected per file, logged, and included in the output document. The
command exits non-zero when any file produced errors.

Quantities are scaled before output. By default the recipe is left as
written; use --servings to scale to a serving count declared in the
recipe metadata, or --scale for an explicit factor.

Multiple files are parsed concurrently.

# Examples

Parse a single recipe to YAML:
  cook parse --format yaml pancakes.cook

Scale to six servings and write JSON to a file:
  cook parse --servings 6 --output pancakes.json pancakes.cook

Parse with only the range-values extension enabled:
  cook parse --extensions range-values pancakes.cook`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "extensions",
				Value: []string{"all"},
				Usage: fmt.Sprintf("Syntax extensions to enable (supported values: all, none, %s)",
					strings.Join(parser.ExtensionNames(), ", ")),
			},
			&cli.UintFlag{
				Name:    "servings",
				Aliases: []string{"s"},
				Usage:   "Scale quantities to this serving count using the recipe's declared servings",
			},
			&cli.Float64Flag{
				Name:  "scale",
				Value: 1,
				Usage: "Explicit scale factor for auto-scaling quantities (ignored when --servings is set)",
			},
			&cli.StringFlag{
				Name:  "units",
				Usage: "Path to a custom YAML unit conversion table (default: bundled table)",
			},
			outputFlag,
			formatFlag,
		},
		Action: runParse,
	}
}

func runParse(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("no input files, expected at least one recipe file")
	}

	exts, err := parser.ParseExtensions(cmd.StringSlice("extensions"))
	if err != nil {
		return err
	}

	conv, err := loadConverter(cmd.String("units"))
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := slog.Default().With("run", runID)
	p := parser.New(
		parser.WithExtensions(exts),
		parser.WithConverter(conv),
		parser.WithLogger(logger),
	)

	servings := uint32(cmd.Uint("servings"))
	factor := cmd.Float64("scale")

	results := make([]parseResult, len(files))
	group, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := parseFile(p, file, servings, factor, logger)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				logger.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	var out any = results
	if len(results) == 1 {
		out = results[0]
	}
	if err := ser.Serialize(ctx, out); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Diagnostics != nil && r.Diagnostics.HasErrors() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files had errors", failed, len(files))
	}
	return nil
}

// parseFile parses and scales one recipe file. Diagnostics never fail
// the parse; only unreadable files return an error.
func parseFile(p *parser.Parser, file string, servings uint32, factor float64, logger *slog.Logger) (parseResult, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return parseResult{}, fmt.Errorf("failed to read %q: %w", file, err)
	}

	parsed, report := p.Parse(string(data))

	target := scale.Target{Factor: factor}
	if servings > 0 {
		t, ok := scale.TargetForServings(parsed.Metadata.Servings(), servings)
		if !ok {
			report.Push(diag.Warning(fmt.Sprintf("Recipe does not declare %d servings", servings)).
				WithHint("Declare it in the servings metadata entry"))
		}
		target = t
	}

	scaled, scaleReport := scale.Scale(parsed, target)
	report.Merge(scaleReport)

	for _, d := range report.All() {
		if d.IsError() {
			logger.Error("parse diagnostic", "file", file, "diag", d.String())
		} else {
			logger.Warn("parse diagnostic", "file", file, "diag", d.String())
		}
	}

	result := parseResult{File: file, Recipe: scaled}
	if !report.IsEmpty() {
		result.Diagnostics = report
	}
	return result, nil
}

// loadConverter loads a custom unit table when a path is given,
// otherwise the bundled one. The table format follows the file
// extension, so both YAML and JSON tables work.
func loadConverter(path string) (*convert.Converter, error) {
	if path == "" {
		return convert.Bundled(), nil
	}
	table, err := serializer.FromFile[convert.Table](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load unit table %q: %w", path, err)
	}
	conv, err := convert.New(table.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("invalid unit table %q: %w", path, err)
	}
	return conv, nil
}
