/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cooklang/pkg/serializer"
)

func unitsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "units",
		EnableShellCompletion: true,
		Usage:                 "Show the unit conversion table",
		Description: `Show the unit conversion table used for quantity aggregation and
best-unit fitting, grouped by physical dimension. Each unit lists its
accepted spellings, its measurement system, and its ratio to the
dimension's base unit.

The bundled table is shown unless --units points at a custom one.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "units",
				Usage: "Path to a custom YAML unit conversion table (default: bundled table)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			conv, err := loadConverter(cmd.String("units"))
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if closer, ok := ser.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			return ser.Serialize(ctx, conv.Dimensions())
		},
	}
}
