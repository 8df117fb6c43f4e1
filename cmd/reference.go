package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbakit/internal/cli"
	"github.com/theirongolddev/cbakit/internal/reference"

	"github.com/spf13/cobra"
)

var (
	flagReferenceExport bool
	flagReferencePlain  bool
)

var referenceCmd = &cobra.Command{
	Use:     "reference",
	Aliases: []string{"ref"},
	Short:   "Cost-benefit analysis steps and BCR vs Net Profit",
	Args:    cobra.NoArgs,
	RunE:    runReference,
}

func init() {
	referenceCmd.Flags().BoolVar(&flagReferenceExport, "export", false, "Write BCR_vs_Net_Profit.xlsx to the export directory")
	referenceCmd.Flags().BoolVar(&flagReferencePlain, "plain", false, "Print unstyled text (for piping)")
	rootCmd.AddCommand(referenceCmd)
}

func runReference(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if flagReferencePlain {
		fmt.Println(reference.PlainText())
	} else {
		fmt.Println()
		fmt.Println(cli.RenderTitle("COST-BENEFIT ANALYSIS"))
		fmt.Println()
		for i, s := range reference.Steps() {
			line := fmt.Sprintf("%2d. %s", i+1, s.Title)
			if s.Summary != "" {
				line += ": " + s.Summary
			}
			fmt.Println("  " + line)
			for _, p := range s.Points {
				if p.Title != "" {
					fmt.Printf("        - %s: %s\n", p.Title, p.Text)
				} else {
					fmt.Printf("        - %s\n", p.Text)
				}
			}
		}
		fmt.Println()

		cmp := reference.Comparison()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   cmp.Title,
			Headers: cmp.Headers,
			Rows:    cmp.Rows,
		}))
	}

	if !flagReferenceExport {
		return nil
	}
	fmt.Println()
	rep, err := newExporter(cfg, logger).ExportReference()
	if err != nil {
		return err
	}
	printReport(rep)
	return nil
}
