package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krsgraph/krsgraph/internal/core/ingest"
	"github.com/krsgraph/krsgraph/internal/core/ownership"
)

func newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <krs>",
		Short: "Import an entity into the ownership graph",
		Long:  "Fetch an entity with its representatives and shareholders from the registry and upsert them into Neo4j.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore(store)

			if err := store.BuildSchema(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: schema setup incomplete: %v\n", err)
			}

			importer := ingest.NewImporter(store, newRegistryClient(cmd, cfg))
			stats, err := importer.ImportEntity(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd, stats)
		},
	}
}

func newDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Derive indirect ownership relationships around a company",
		Long:  "Walk ownership chains up and down from a seed company and materialize INDIRECT_OWNER_OF and CONTROLS_INDIRECTLY relationships.",
		RunE:  runDiscover,
	}

	cmd.Flags().String("krs", "", "seed company identifier")
	cmd.Flags().Int("depth", 0, "maximum chain length (default from config)")
	cmd.Flags().Bool("synthetic", false, "generate the synthetic fixture first and seed from it")

	return cmd
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	krs, _ := cmd.Flags().GetString("krs")
	depth, _ := cmd.Flags().GetInt("depth")
	synthetic, _ := cmd.Flags().GetBool("synthetic")
	if depth <= 0 {
		depth = cfg.Discovery.MaxDepth
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(store)

	d := ownership.NewDiscovery(store)

	if synthetic {
		fixture, err := d.CreateSyntheticTestData(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Synthetic fixture: %d companies, %d shareholders, %d relationships\n",
			fixture.CompaniesCreated, fixture.ShareholdersCreated, fixture.RelationshipsCreated)
		if krs == "" {
			krs = "TEST001"
		}
	}
	if krs == "" {
		return fmt.Errorf("provide --krs (or --synthetic to seed from the fixture)")
	}

	stats, err := d.DiscoverIndirectRelationships(cmd.Context(), krs, depth)
	if err != nil {
		return err
	}
	return writeResult(cmd, stats)
}

func newSyntheticCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "synthetic",
		Short: "Generate the synthetic ownership fixture",
		Long:  "Replace the TEST-tagged fixture companies and shareholders with a fresh multi-level ownership structure.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore(store)

			stats, err := ownership.NewDiscovery(store).CreateSyntheticTestData(cmd.Context())
			if err != nil {
				return err
			}
			return writeResult(cmd, stats)
		},
	}
}
