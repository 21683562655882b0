package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ponto/internal/aggregate"
	"ponto/internal/common"
	"ponto/internal/export"
	"ponto/internal/filter"
	"ponto/internal/ingest"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <workbook.xlsx>",
		Short: "Export summaries or records to CSV",
		Long: `Import the selected sheets and write the aggregation result as a
semicolon-separated CSV.

By default one line per employee summary is written; --records switches to
one line per normalized record, including provenance (sheet and row).`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringSlice("sheet", nil, "sheet to import (repeatable; default: all)")
	cmd.Flags().StringP("output", "o", "", "output path (default: stdout)")
	cmd.Flags().Bool("records", false, "export normalized records instead of summaries")
	addPolicyFlags(cmd)
	addFilterFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	policy, err := buildPolicy(cmd)
	if err != nil {
		return err
	}
	criteria, err := buildCriteria(cmd)
	if err != nil {
		return err
	}

	wb, err := ingest.Open(args[0])
	if err != nil {
		return common.NewUserError(fmt.Sprintf("could not open %s", args[0]), err)
	}
	defer func() { _ = wb.Close() }()

	result, err := importWorkbook(cmd, wb)
	if err != nil {
		return err
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	asRecords, _ := cmd.Flags().GetBool("records")
	if asRecords {
		return export.WriteRecords(out, result.Records)
	}

	summaries := filter.Apply(aggregate.Aggregate(result.Records, policy), criteria)
	return export.WriteSummaries(out, summaries)
}
