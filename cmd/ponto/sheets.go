package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ponto/internal/cli"
	"ponto/internal/common"
	"ponto/internal/ingest"
)

func sheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <workbook.xlsx>",
		Short: "List a workbook's sheets and whether they can be imported",
		Long: `List every sheet in the workbook with its row count and validation
outcome, so you can pick which sheets to feed to report/export.

A sheet is importable when the required columns (Colaborador, ID,
Classificacao, Diferenca) are all present under any known header spelling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := ingest.Open(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not open %s", args[0]), err)
			}
			defer func() { _ = wb.Close() }()

			fmt.Print(cli.RenderSheetList(ingest.Inspect(wb)))
			return nil
		},
	}
}
