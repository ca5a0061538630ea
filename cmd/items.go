package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"shelf-gateway/core/config"
	"shelf-gateway/core/logger"
	"shelf-gateway/core/zotero"
	"shelf-gateway/feature/library"
	"shelf-gateway/feature/library/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	itemsLimit    int
	itemsNoCovers bool
	itemsJSON     bool
)

// itemsCmd represents the items command
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the shelf's top-level items",
	Long: `Fetches the configured library's top-level items, normalized and
sorted by title, with covers resolved unless --no-covers is given.`,
	RunE: runItems,
}

func init() {
	RootCmd.AddCommand(itemsCmd)

	itemsCmd.Flags().IntVar(&itemsLimit, "limit", 0, "Maximum number of items (0 = default)")
	itemsCmd.Flags().BoolVar(&itemsNoCovers, "no-covers", false, "Skip cover resolution")
	itemsCmd.Flags().BoolVar(&itemsJSON, "json", false, "Output the listing as JSON")
}

func runItems(cmd *cobra.Command, args []string) error {
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

	items, err := svc.FetchTopLevelItems(ctx, itemsLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch items: %w", err)
	}
	if !itemsNoCovers {
		items, err = svc.AttachCoverImages(ctx, items)
		if err != nil {
			return fmt.Errorf("failed to resolve covers: %w", err)
		}
	}

	if itemsJSON {
		out, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	// Pretty Console Output
	fmt.Println("\n--- Shelf Items ---")
	covered := 0
	for i, it := range items {
		marker := " "
		if it.CoverURL != "" {
			marker = "*"
			covered++
		}
		line := fmt.Sprintf("%3d. [%s] %s", i+1, marker, it.Title)
		if names := creatorNames(it.Creators); names != "" {
			line += " - " + names
		}
		if it.Year > 0 {
			line += fmt.Sprintf(" (%d)", it.Year)
		}
		fmt.Println(line)
	}
	fmt.Println("-------------------")
	fmt.Printf("Items:   %d\n", len(items))
	if !itemsNoCovers {
		fmt.Printf("Covers:  %d/%d (marked *)\n", covered, len(items))
	}

	logg.Info("Listing complete", zap.Int("items", len(items)))
	return nil
}

// creatorNames joins creator display names for one console line.
func creatorNames(creators []models.Creator) string {
	var names []string
	for _, c := range creators {
		if n := c.Display(); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}
