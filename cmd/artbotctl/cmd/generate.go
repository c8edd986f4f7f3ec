package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"artbot/internal/generate"
)

var (
	prompt         string
	negativePrompt string
	orientation    string
	width          int
	height         int
	steps          int
	cfgScale       float64
	sampler        string
	stylePreset    string
	seed           string
	models         []string
	numImages      int
	postProcessing []string
	dryRun         bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Submit a generation job",
	Long:  `Shape a generation request (orientation, sampler, style preset), estimate its kudos cost, and submit it to the backend. With --dry-run only the estimate is printed.`,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&prompt, "prompt", "p", "", "positive prompt (required)")
	generateCmd.Flags().StringVar(&negativePrompt, "negative", "", "negative prompt")
	generateCmd.Flags().StringVar(&orientation, "orientation", "square", "orientation preset, custom, or random")
	generateCmd.Flags().IntVar(&width, "width", 0, "width for custom orientation")
	generateCmd.Flags().IntVar(&height, "height", 0, "height for custom orientation")
	generateCmd.Flags().IntVar(&steps, "steps", 30, "sampling steps")
	generateCmd.Flags().Float64Var(&cfgScale, "cfg", 9, "cfg scale")
	generateCmd.Flags().StringVar(&sampler, "sampler", "random", "sampler name or random")
	generateCmd.Flags().StringVar(&stylePreset, "style", "", "style preset name")
	generateCmd.Flags().StringVar(&seed, "seed", "", "seed")
	generateCmd.Flags().StringSliceVar(&models, "model", nil, "model names")
	generateCmd.Flags().IntVarP(&numImages, "count", "n", 1, "number of images")
	generateCmd.Flags().StringSliceVar(&postProcessing, "post", nil, "post-processors")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "estimate cost without submitting")
	_ = generateCmd.MarkFlagRequired("prompt")
}

// buildRequest assembles the ImageRequest the same way the web handlers do.
func buildRequest(authenticated bool) generate.ImageRequest {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	resolved := generate.OrientationDetails(orientation, height, width, rng)

	req := generate.ImageRequest{
		Prompt:         generate.DefaultPresets.Apply(prompt, stylePreset),
		NegativePrompt: negativePrompt,
		Height:         resolved.Height,
		Width:          resolved.Width,
		Steps:          steps,
		CfgScale:       cfgScale,
		Sampler:        sampler,
		Seed:           seed,
		Models:         models,
		StylePreset:    stylePreset,
		PostProcessing: postProcessing,
		NumImages:      numImages,
	}
	if req.Sampler == "" || req.Sampler == "random" {
		req.Sampler = generate.RandomSampler(steps, false, authenticated, rng)
	}
	return req
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	req := buildRequest(client.Authenticated())
	estimate := req
	estimate.Normalize()
	kudos := estimate.EstimateKudos()

	if dryRun {
		return printKudos(estimate, kudos)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	result := client.GenerateAsync(ctx, req)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{"result": result, "kudos": kudos})
	}
	if result.Success {
		fmt.Printf("Job accepted: %s (estimated %d kudos)\n", result.JobID, kudos)
		return nil
	}
	if result.Pending() {
		fmt.Printf("Backend is still working on an earlier job, try again shortly (%s)\n", result.Status)
		return nil
	}
	return fmt.Errorf("job rejected: %s", result.Message)
}

func printKudos(req generate.ImageRequest, kudos int) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"kudos":   kudos,
			"sampler": req.Sampler,
			"height":  req.Height,
			"width":   req.Width,
			"steps":   req.Steps,
		})
	}
	fmt.Printf("%d kudos (%dx%d, %d steps, %s)\n", kudos, req.Width, req.Height, req.Steps, req.Sampler)
	return nil
}
