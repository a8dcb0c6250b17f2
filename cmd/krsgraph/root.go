package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root krsgraph command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "krsgraph",
		Short:         "krsgraph — corporate registry ownership graph toolkit",
		Long:          "krsgraph queries the National Court Register (KRS), loads entities into a Neo4j ownership graph and derives indirect ownership relationships.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "path to config file")
	root.PersistentFlags().Bool("mock", false, "use canned registry responses instead of the live API")
	root.PersistentFlags().StringP("output", "o", "", "write the result to a file instead of stdout")

	root.AddCommand(
		newSearchCmd(),
		newDetailsCmd(),
		newRepresentativesCmd(),
		newShareholdersCmd(),
		newBeneficiariesCmd(),
		newIngestCmd(),
		newDiscoverCmd(),
		newSyntheticCmd(),
		newExportCmd(),
	)

	return root
}
