package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hde",
		Short: "HDE - hospital data extractor for CMS provider datasets",
		Long: `HDE is a CLI tool that pulls paginated datasets from the CMS
provider-data datastore API and loads them into PostgreSQL tables in the
raw schema, upserting on each dataset's natural key.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewExtractCmd())
	rootCmd.AddCommand(NewDatasetsCmd())

	return rootCmd
}
