package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ponto/internal/aggregate"
	"ponto/internal/cli"
	"ponto/internal/common"
	"ponto/internal/filter"
	"ponto/internal/ingest"
	"ponto/internal/model"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <workbook.xlsx>",
		Short: "Import a workbook and print the hour-bank report",
		Long: `Import the selected sheets, aggregate per employee, and print the
summary table plus global stats.

Examples:
  # Report over every sheet
  ponto report ~/Downloads/ponto_jan_2024.xlsx

  # Report over specific sheets with a bonus/penalty policy
  ponto report ponto.xlsx --sheet Janeiro --sheet Fevereiro \
    --extra-bonus 1 --atraso-penalty 0.5

  # Narrow to one collaborator and period
  ponto report ponto.xlsx --name maria --from 01/01/2024 --to 31/01/2024`,
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}

	cmd.Flags().StringSlice("sheet", nil, "sheet to import (repeatable; default: all)")
	cmd.Flags().Int("top", -1, "limit the table to the first N employees")
	cmd.Flags().Int("max-warnings", 0, "max warnings shown (default from config)")
	addPolicyFlags(cmd)
	addFilterFlags(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
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

	summaries := aggregate.Aggregate(result.Records, policy)
	stats := aggregate.CalculateGlobalStats(result.Records, summaries)
	filtered := filter.Apply(summaries, criteria)

	maxWarnings := viper.GetInt("report.max_warnings")
	if cmd.Flags().Changed("max-warnings") {
		maxWarnings, _ = cmd.Flags().GetInt("max-warnings")
	}
	top, _ := cmd.Flags().GetInt("top")

	fmt.Print(cli.RenderImportIssues(result, maxWarnings))
	fmt.Print(cli.RenderSummaryTable(filtered, top))
	fmt.Println()
	fmt.Print(cli.RenderGlobalStats(stats))

	return nil
}

// importWorkbook runs the selected sheets through the importer behind a
// progress bar and fails with every collected error when the import is not
// clean.
func importWorkbook(cmd *cobra.Command, wb ingest.Workbook) (*model.ImportResult, error) {
	names, err := sheetSelection(cmd, wb)
	if err != nil {
		return nil, err
	}

	bar := progressbar.Default(int64(len(names)), "importing sheets")
	result := ingest.ImportSheetsProgress(wb, names, func(string) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	if !result.Success {
		fmt.Print(cli.RenderImportIssues(result, -1))
		return nil, fmt.Errorf("import failed with %d error(s); fix the workbook and retry", len(result.Errors))
	}
	if len(result.Records) == 0 {
		return nil, common.ErrNoRecords
	}
	return result, nil
}
