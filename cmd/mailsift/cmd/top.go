package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mailsift/mailsift/internal/backup"
	"github.com/mailsift/mailsift/internal/export"
	"github.com/mailsift/mailsift/internal/extract"
)

var (
	topLimit   int
	topJSON    bool
	topPreview bool
)

var topCmd = &cobra.Command{
	Use:   "top <archive.zip>",
	Short: "Show the most frequent contacts without writing files",
	Long: `Show the contacts that appear most often in a backup archive.

Runs the same extraction as 'extract' but only prints the ranking;
nothing is written to disk. Useful for a quick look at an archive
before committing to an export.

Examples:
  mailsift top backup.zip
  mailsift top backup.zip --limit 25
  mailsift top backup.zip --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := extract.DefaultOptions()
		opts.IncludePreview = cfg.Extract.Preview || topPreview

		members, err := backup.ReadMembers(args[0])
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}

		reg, _, err := extract.New(nil).Run(cmd.Context(), members, opts)
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}

		if topJSON {
			return outputReportJSON(export.BuildReport(reg, topLimit))
		}

		top := reg.TopN(topLimit)
		if len(top) == 0 {
			fmt.Println("No contacts found.")
			return nil
		}
		outputContactsTable(top)
		fmt.Printf("\nShowing %d of %d contacts\n", len(top), reg.Len())
		return nil
	},
}

// outputReportJSON prints an aggregation report as JSON.
func outputReportJSON(report export.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", export.TopPreviewLen, "Maximum number of contacts to show")
	topCmd.Flags().BoolVar(&topJSON, "json", false, "Output as JSON")
	topCmd.Flags().BoolVar(&topPreview, "preview", false, "Also scan message preview text")
}
