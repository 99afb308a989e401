package commands

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/recovery-agent/internal/app/recovery"
)

var planCmd = &cobra.Command{
	Use:   "plan <feelings>",
	Short: "Build one recovery plan and print it as JSON",
	Example: `  recovery-api plan "I just broke up and feel lost"
  RECOVERY_USE_MOCK_LLM=1 recovery-api plan "they moved out last week"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	feelings := strings.Join(args, " ")
	svc := newService(cmd.Context(), cfg)

	plan, err := svc.RunAgents(cmd.Context(), recovery.RunAgentsInput{FeelingsDescription: feelings})
	if err != nil {
		if errors.Is(err, recovery.ErrMissingFeelings) {
			return errEmptyFeelings
		}
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}
