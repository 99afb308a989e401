package commands

import (
	"github.com/spf13/cobra"

	"github.com/PabloGalante/recovery-agent/internal/config"
	"github.com/PabloGalante/recovery-agent/internal/observability"
)

const Version = "0.1.0"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "recovery-api",
	Short: "Breakup Recovery - multi-agent support plans",
	Long: `recovery-api runs four support personas (therapist, closure, routine
planner, brutal honesty) over a feelings description and merges their advice
into a single recovery plan. Without provider credentials every agent answers
with a curated fallback.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error). Overrides RECOVERY_LOG_LEVEL")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)
}

// loadConfig reads the config and sets the log level. The --log-level flag
// wins over file and env.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	lvl := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		lvl = logLevel
	}
	observability.Init(lvl)
	return cfg, nil
}
