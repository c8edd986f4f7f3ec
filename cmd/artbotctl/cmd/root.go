package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"artbot/internal/horde"
	"artbot/internal/infra"
	"artbot/internal/telemetry"
)

var (
	hordeURL   string
	apiKey     string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "artbotctl",
	Short: "CLI for the artbot image-generation layer",
	Long:  `artbotctl submits generation jobs, estimates kudos cost, and exports image archives from the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() { _ = godotenv.Load() })

	rootCmd.PersistentFlags().StringVar(&hordeURL, "horde", "", "generation backend base URL (default from HORDE_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "backend API key (default from HORDE_API_KEY)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of plain text")
}

// loadConfig resolves configuration, letting flags override the environment.
func loadConfig() (*infra.Config, error) {
	cfg, err := infra.LoadConfig()
	if err != nil {
		return nil, err
	}
	if hordeURL != "" {
		cfg.HordeBaseURL = hordeURL
	}
	if apiKey != "" {
		cfg.HordeAPIKey = apiKey
	}
	return cfg, nil
}

// newClient builds the backend client shared by the job commands.
func newClient(cfg *infra.Config) *horde.Client {
	logger := infra.NewLogger(cfg.AppEnv)
	var sink telemetry.Sink = telemetry.NopSink{}
	if cfg.TelemetryURL != "" {
		sink = telemetry.NewHTTPSink(cfg.TelemetryURL, logger)
	}
	return horde.New(horde.Options{
		BaseURL:     cfg.HordeBaseURL,
		APIKey:      cfg.HordeAPIKey,
		ClientAgent: cfg.ClientAgent,
		Telemetry:   sink,
		Logger:      logger,
	})
}
