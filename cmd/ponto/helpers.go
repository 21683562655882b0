package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ponto/internal/common"
	"ponto/internal/filter"
	"ponto/internal/ingest"
	"ponto/internal/model"
	"ponto/internal/timeparse"
)

// addPolicyFlags registers the aggregation policy flags shared by report and
// export. Config-file values are the defaults; flags win when set.
func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("extra-bonus", 0, "bonus hours credited per Hora Extra record")
	cmd.Flags().Float64("atraso-penalty", 0, "penalty hours debited per Atraso record")
	cmd.Flags().Bool("exclude-ajuste", false, "exclude ajuste rows from minute totals")
	cmd.Flags().Int("small-delta-cutoff", 0, "ignore |delta| <= cutoff minutes in totals (0 disables)")
}

func buildPolicy(cmd *cobra.Command) (model.Policy, error) {
	policy := model.Policy{
		ExtraBonusHours:         viper.GetFloat64("policy.extra_bonus_hours"),
		AtrasoPenaltyHours:      viper.GetFloat64("policy.atraso_penalty_hours"),
		IncludeAjusteInTotals:   viper.GetBool("policy.include_ajuste"),
		SmallDeltaCutoffMinutes: viper.GetInt("policy.small_delta_cutoff"),
	}

	if cmd.Flags().Changed("extra-bonus") {
		policy.ExtraBonusHours, _ = cmd.Flags().GetFloat64("extra-bonus")
	}
	if cmd.Flags().Changed("atraso-penalty") {
		policy.AtrasoPenaltyHours, _ = cmd.Flags().GetFloat64("atraso-penalty")
	}
	if cmd.Flags().Changed("exclude-ajuste") {
		exclude, _ := cmd.Flags().GetBool("exclude-ajuste")
		policy.IncludeAjusteInTotals = !exclude
	}
	if cmd.Flags().Changed("small-delta-cutoff") {
		policy.SmallDeltaCutoffMinutes, _ = cmd.Flags().GetInt("small-delta-cutoff")
	}

	if !policy.Valid() {
		return model.Policy{}, fmt.Errorf("%w: bonus, penalty and cutoff must be non-negative", common.ErrInvalidPolicy)
	}
	return policy, nil
}

// addFilterFlags registers the summary filter flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "filter by collaborator name (substring)")
	cmd.Flags().String("id", "", "filter by employee ID (substring)")
	cmd.Flags().String("classificacao", filter.AllClassificacoes, "filter by classification label")
	cmd.Flags().String("from", "", "start of date range (DD/MM/YYYY or YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end of date range (DD/MM/YYYY or YYYY-MM-DD)")
}

func buildCriteria(cmd *cobra.Command) (filter.Criteria, error) {
	criteria := filter.Criteria{}
	criteria.Name, _ = cmd.Flags().GetString("name")
	criteria.ID, _ = cmd.Flags().GetString("id")
	criteria.Classificacao, _ = cmd.Flags().GetString("classificacao")

	var err error
	if criteria.From, err = dateFlag(cmd, "from"); err != nil {
		return filter.Criteria{}, err
	}
	if criteria.To, err = dateFlag(cmd, "to"); err != nil {
		return filter.Criteria{}, err
	}
	return criteria, nil
}

func dateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil, nil
	}
	date, ok := timeparse.ParseDate(raw)
	if !ok {
		return nil, fmt.Errorf("invalid --%s date %q (want DD/MM/YYYY or YYYY-MM-DD)", name, raw)
	}
	return &date, nil
}

// sheetSelection resolves the --sheet flags against the workbook, defaulting
// to every sheet when none are named.
func sheetSelection(cmd *cobra.Command, wb ingest.Workbook) ([]string, error) {
	names, _ := cmd.Flags().GetStringSlice("sheet")
	if len(names) == 0 {
		names = wb.SheetNames()
	}
	if len(names) == 0 {
		return nil, common.ErrNoSheetsSelected
	}
	return names, nil
}
