package cli

import (
	"github.com/spf13/cobra"
)

type ExtractOptions struct {
	MappingFile string
	Dataset     string
	BatchSize   int
	DryRun      bool
	Replace     bool
}

func NewExtractCmd() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a CMS dataset and load it into PostgreSQL",
		RunE: func(c *cobra.Command, args []string) error {
			return runExtract(c.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.MappingFile, "mapping", "m", "configs/datasets.json", "Path to dataset mapping file")
	cmd.Flags().StringVarP(&opts.Dataset, "dataset", "d", "", "Dataset name to extract")
	cmd.Flags().IntVarP(&opts.BatchSize, "batch-size", "b", 500, "Records per API page")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Fetch and transform without writing to the database")
	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "Truncate the destination table before loading")
	cmd.MarkFlagRequired("dataset")

	return cmd
}
