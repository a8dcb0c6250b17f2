package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krsgraph/krsgraph/internal/export"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <krs>",
		Short: "Export an entity's registry and graph data to files",
		Long:  "Write the entity summary, shareholders, representatives and ownership edges as JSON, CSV and XML files.",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	cmd.Flags().String("dir", "", "target directory (default from config)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.Export.Dir
	}

	krs := args[0]
	reg := newRegistryClient(cmd, cfg)
	exp := export.New(dir)
	files := map[string]map[string]string{}

	entity, err := reg.EntityDetails(cmd.Context(), krs)
	if err != nil {
		return err
	}
	if files["summary"], err = exp.EntitySummary(entity); err != nil {
		return err
	}

	shareholders, err := reg.Shareholders(cmd.Context(), krs)
	if err != nil {
		return err
	}
	if files["shareholders"], err = exp.Shareholders(krs, shareholders); err != nil {
		return err
	}

	reps, err := reg.Representatives(cmd.Context(), krs)
	if err != nil {
		return err
	}
	if files["representatives"], err = exp.Representatives(krs, reps); err != nil {
		return err
	}

	// Graph edges are optional output; a missing database should not block
	// the registry export.
	if store, err := openStore(cfg); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipping ownership export: %v\n", err)
	} else {
		defer closeStore(store)
		edges, err := store.OwnershipEdges(cmd.Context(), krs)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipping ownership export: %v\n", err)
		} else if files["ownership"], err = exp.OwnershipEdges(krs, edges); err != nil {
			return err
		}
	}

	return writeResult(cmd, files)
}
