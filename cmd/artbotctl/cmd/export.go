package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"artbot/internal/domain"
	"artbot/internal/export"
	"artbot/internal/infra"
	"artbot/internal/storage"
)

var outputDir string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <images.json>",
	Short: "Export generated images as a zip archive",
	Long:  `Read a JSON file holding generated images (base64 payloads plus metadata), convert each to PNG, and write a single archive with a metadata manifest. Images that fail to convert are skipped, not fatal.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "directory to write the archive into")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := infra.NewLogger(cfg.AppEnv)

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image list: %w", err)
	}
	var images []domain.GeneratedImage
	if err := json.Unmarshal(raw, &images); err != nil {
		return fmt.Errorf("parse image list: %w", err)
	}
	if len(images) == 0 {
		return fmt.Errorf("no images in %s", args[0])
	}

	data, exported, err := export.BuildArchive(images, logger, func(done, total int) {
		if !jsonOutput {
			fmt.Printf("\rprocessing %d/%d", done, total)
		}
	})
	if !jsonOutput {
		fmt.Println()
	}
	if err != nil {
		return fmt.Errorf("build archive: %w", err)
	}

	store, err := storage.NewFileStore(outputDir)
	if err != nil {
		return err
	}
	key, err := store.Write(context.Background(), export.ArchiveName, data)
	if err != nil {
		return err
	}
	path := filepath.Join(store.BasePath(), key)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{"archive": path, "images": exported})
	}
	fmt.Printf("wrote %s (%d of %d images)\n", path, exported, len(images))
	return nil
}
