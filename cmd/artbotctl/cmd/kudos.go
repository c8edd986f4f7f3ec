package cmd

import "github.com/spf13/cobra"

// kudosCmd represents the kudos command
var kudosCmd = &cobra.Command{
	Use:   "kudos",
	Short: "Estimate the kudos cost of a job",
	Long:  `Estimate what a job would cost without submitting it. Accepts the same flags as generate.`,
	RunE:  runKudos,
}

func init() {
	rootCmd.AddCommand(kudosCmd)

	kudosCmd.Flags().StringVarP(&prompt, "prompt", "p", "estimate", "prompt (only used for shaping)")
	kudosCmd.Flags().StringVar(&orientation, "orientation", "square", "orientation preset, custom, or random")
	kudosCmd.Flags().IntVar(&width, "width", 0, "width for custom orientation")
	kudosCmd.Flags().IntVar(&height, "height", 0, "height for custom orientation")
	kudosCmd.Flags().IntVar(&steps, "steps", 30, "sampling steps")
	kudosCmd.Flags().StringVar(&sampler, "sampler", "k_euler", "sampler name or random")
	kudosCmd.Flags().IntVarP(&numImages, "count", "n", 1, "number of images")
	kudosCmd.Flags().StringSliceVar(&postProcessing, "post", nil, "post-processors")
}

func runKudos(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	req := buildRequest(client.Authenticated())
	req.Normalize()
	return printKudos(req, req.EstimateKudos())
}
