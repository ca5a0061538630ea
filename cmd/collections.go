package cmd

import (
	"context"
	"fmt"

	"shelf-gateway/core/config"
	"shelf-gateway/core/logger"
	"shelf-gateway/core/zotero"
	"shelf-gateway/feature/library"

	"github.com/spf13/cobra"
)

var collectionsProbe bool

// collectionsCmd represents the collections command
var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List the collections shown to clients",
	Long: `Lists the root collection and its direct children, filtered by the
configured allow-list. With --probe, also reports which collection a client
should open first (the first one that actually holds items).`,
	RunE: runCollections,
}

func init() {
	RootCmd.AddCommand(collectionsCmd)

	collectionsCmd.Flags().BoolVar(&collectionsProbe, "probe", false, "Probe for the first non-empty collection")
}

func runCollections(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	zc, err := zotero.NewClient(cfg.Zotero)
	if err != nil {
		return fmt.Errorf("failed to create library client: %w", err)
	}

	svc := library.NewService(zc, cfg.Zotero, logg)

	cols, err := svc.Collections(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch collections: %w", err)
	}

	// Pretty Console Output
	fmt.Println("\n--- Collections ---")
	for _, col := range cols {
		name := col.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%s  %s\n", col.Key, name)
	}
	fmt.Println("-------------------")
	fmt.Printf("Total: %d\n", len(cols))

	if collectionsProbe {
		key, err := svc.FindFirstNonEmptyCollection(ctx, cols)
		if err != nil {
			return fmt.Errorf("failed to probe collections: %w", err)
		}
		if key == "" {
			fmt.Println("Default: none (no collections configured)")
		} else {
			fmt.Printf("Default: %s\n", key)
		}
	}

	return nil
}
