package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krsgraph/krsgraph/internal/registry"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the registry for entities",
		Long:  "Search the National Court Register by KRS, NIP, REGON or name.",
		RunE:  runSearch,
	}

	cmd.Flags().String("krs", "", "KRS number")
	cmd.Flags().String("nip", "", "NIP tax identifier")
	cmd.Flags().String("regon", "", "REGON statistical number")
	cmd.Flags().String("name", "", "entity name fragment")

	return cmd
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	params := registry.SearchParams{}
	params.KRS, _ = cmd.Flags().GetString("krs")
	params.NIP, _ = cmd.Flags().GetString("nip")
	params.REGON, _ = cmd.Flags().GetString("regon")
	params.Name, _ = cmd.Flags().GetString("name")
	if params.Empty() {
		return fmt.Errorf("provide at least one of --krs, --nip, --regon, --name")
	}

	result, err := newRegistryClient(cmd, cfg).SearchEntities(cmd.Context(), params)
	if err != nil {
		return err
	}
	return writeResult(cmd, result)
}

func newDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <krs>",
		Short: "Show entity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			entity, err := newRegistryClient(cmd, cfg).EntityDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd, entity)
		},
	}
}

func newRepresentativesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "representatives <krs>",
		Short: "List an entity's representatives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			reps, err := newRegistryClient(cmd, cfg).Representatives(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd, reps)
		},
	}
}

func newShareholdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shareholders <krs>",
		Short: "List an entity's shareholders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			shareholders, err := newRegistryClient(cmd, cfg).Shareholders(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd, shareholders)
		},
	}
}

func newBeneficiariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "beneficiaries <krs>",
		Short: "List an entity's beneficial owners",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			owners, err := newRegistryClient(cmd, cfg).BeneficialOwners(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd, owners)
		},
	}
}
