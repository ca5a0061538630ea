package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"shelf-gateway/core/config"
	"shelf-gateway/core/logger"
	"shelf-gateway/core/zotero"
	"shelf-gateway/feature/covers"
	"shelf-gateway/feature/library"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	coversLimit int
	coversJSON  bool
	coversOut   string
)

// coversCmd represents the covers command
var coversCmd = &cobra.Command{
	Use:   "covers",
	Short: "Audit cover coverage across the shelf",
	Long: `Resolves a cover for every listed item and reports which resolution
rule produced it. Items whose flagged notes no longer contain a usable image
are listed for manual cleanup.

Examples:
  # Console summary
  covers

  # Audit only the first 50 items
  covers --limit 50

  # Write the full report to a file
  covers --out report.json`,
	RunE: runCoversAudit,
}

func init() {
	RootCmd.AddCommand(coversCmd)

	coversCmd.Flags().IntVar(&coversLimit, "limit", 0, "Maximum number of items to audit (0 = default)")
	coversCmd.Flags().BoolVar(&coversJSON, "json", false, "Output the full report as JSON")
	coversCmd.Flags().StringVar(&coversOut, "out", "", "Write the full report as JSON to a file")
}

func runCoversAudit(cmd *cobra.Command, args []string) error {
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

	libSvc := library.NewService(zc, cfg.Zotero, logg)
	svc := covers.NewService(zc, libSvc, cfg.Zotero, logg)

	logg.Info("Auditing covers...")
	report, err := svc.Audit(ctx, coversLimit)
	if err != nil {
		return fmt.Errorf("failed to audit covers: %w", err)
	}

	if coversOut != "" {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := os.WriteFile(coversOut, out, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logg.Info("Report written", zap.String("path", coversOut))
	}

	if coversJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	// Pretty Console Output
	fmt.Println("\n--- Cover Report ---")
	fmt.Printf("Total:     %d\n", report.Total)

	coveredColor := "\033[32m" // Green
	if report.Missing > 0 {
		coveredColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"
	fmt.Printf("Covered:   %s%d%s\n", coveredColor, report.Covered, resetColor)
	fmt.Printf("Missing:   %d\n", report.Missing)

	if len(report.BySource) > 0 {
		fmt.Println("\nBy source:")
		for _, src := range []covers.Source{covers.SourceNamedAttachment, covers.SourceNote, covers.SourceScored} {
			if n := report.BySource[string(src)]; n > 0 {
				fmt.Printf("  %-18s %d\n", src, n)
			}
		}
	}

	var flagged []string
	for _, it := range report.Items {
		if len(it.FlaggedNotes) > 0 && it.CoverURL == "" {
			flagged = append(flagged, fmt.Sprintf("- %s  %s (notes: %s)",
				it.Key, it.Title, strings.Join(it.FlaggedNotes, ", ")))
		}
	}
	if len(flagged) > 0 {
		fmt.Println("\nFlagged notes without a usable image:")
		for _, line := range flagged {
			fmt.Println(line)
		}
	}
	fmt.Println("--------------------")

	return nil
}
