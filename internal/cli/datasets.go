package cli

import (
	"fmt"
	"os"

	"github.com/BartekS5/HDE/pkg/models"
	"github.com/spf13/cobra"
)

func NewDatasetsCmd() *cobra.Command {
	var mappingFile string

	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the datasets defined in the mapping file",
		RunE: func(c *cobra.Command, args []string) error {
			data, err := os.ReadFile(mappingFile)
			if err != nil {
				return fmt.Errorf("failed to read mapping file: %w", err)
			}
			mappings, err := models.LoadMappings(data)
			if err != nil {
				return fmt.Errorf("failed to parse mapping file: %w", err)
			}

			for _, d := range mappings.Datasets {
				fmt.Printf("%-30s %s -> %s\n", d.Name, d.APIPath, d.QualifiedTable())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingFile, "mapping", "m", "configs/datasets.json", "Path to dataset mapping file")

	return cmd
}
