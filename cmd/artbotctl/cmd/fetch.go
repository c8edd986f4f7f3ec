package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"artbot/internal/infra"
	"artbot/internal/media"
	"artbot/internal/telemetry"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a remote image through the app's proxy endpoint",
	Long:  `Retrieve an image by URL via the running API's img-url proxy, printing its type and dimensions. The endpoint defaults to the local API and can be overridden with IMAGE_PROXY_URL. Use --json to get the base64 payload.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := infra.NewLogger(cfg.AppEnv)

	var sink telemetry.Sink = telemetry.NopSink{}
	if cfg.TelemetryURL != "" {
		sink = telemetry.NewHTTPSink(cfg.TelemetryURL, logger)
	}
	fetcher := media.NewFetcher(cfg.ImageProxyURL, sink, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	result := fetcher.FetchByURL(ctx, args[0])

	if jsonOutput {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d (%d base64 bytes)\n", result.ImageType, result.Width, result.Height, len(result.Base64))
	return nil
}
