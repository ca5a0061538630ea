package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"shelf-gateway/core/config"
	"shelf-gateway/core/logger"
	"shelf-gateway/core/zotero"
	"shelf-gateway/feature/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showJSON bool

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "View one item's detail bundle",
	Long:  `Fetches an item together with its attachments, notes, resolved cover and related items.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runShowItem(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output the full bundle as JSON")
}

func runShowItem(ctx context.Context, key string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	zc, err := zotero.NewClient(cfg.Zotero)
	if err != nil {
		logg.Fatal("Failed to create library client", zap.Error(err))
	}

	svc := bundle.NewService(zc, logg)

	logg.Info("Fetching item bundle...", zap.String("key", key))
	b, err := svc.Fetch(ctx, key)
	if err != nil {
		logg.Fatal("Bundle fetch failed", zap.Error(err))
	}

	if showJSON {
		out, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			logg.Fatal("Failed to encode bundle", zap.Error(err))
		}
		fmt.Println(string(out))
		return
	}

	// Pretty Console Output
	fmt.Println("\n--- Item Detail View ---")
	fmt.Printf("Key:            %s\n", b.Item.Key)
	fmt.Printf("Title:          %s\n", b.Item.Title)
	if names := creatorNames(b.Item.Creators); names != "" {
		fmt.Printf("Creators:       %s\n", names)
	}
	if b.Item.Year > 0 {
		fmt.Printf("Year:           %d\n", b.Item.Year)
	}
	fmt.Println("------------------------")
	fmt.Printf("Attachments:    %d\n", len(b.Attachments))
	for _, a := range b.Attachments {
		title := a.Title
		if title == "" {
			title = a.Filename
		}
		fmt.Printf("- %s  %s\n", a.Key, title)
	}
	fmt.Printf("Notes:          %d\n", len(b.Notes))
	fmt.Printf("Related:        %d\n", len(b.RelatedItems))
	for _, r := range b.RelatedItems {
		fmt.Printf("- %s  %s\n", r.Key, r.Title)
	}

	coverColor := "\033[32m" // Green
	coverText := b.Item.CoverURL
	if coverText == "" {
		coverColor = "\033[33m" // Yellow
		coverText = "none"
	}
	resetColor := "\033[0m"

	fmt.Printf("Cover:          %s%s%s\n", coverColor, coverText, resetColor)
	fmt.Println("------------------------")
}
