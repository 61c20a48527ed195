package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mailsift/mailsift/internal/backup"
	"github.com/mailsift/mailsift/internal/contacts"
	"github.com/mailsift/mailsift/internal/export"
	"github.com/mailsift/mailsift/internal/extract"
	"github.com/mailsift/mailsift/internal/textutil"
)

var (
	extractOut     string
	extractPreview bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive.zip>",
	Short: "Extract contacts from a backup archive",
	Long: `Extract contact lists from a mailbox backup archive.

Scans every message record in the archive for sender and recipient
addresses and writes three files to the output directory:

  contacts.csv           all contacts, most frequent first
  frequent-contacts.csv  contacts seen in 3 or more messages
  contacts.vcf           vCard 3.0 for address book import

Examples:
  mailsift extract backup.zip
  mailsift extract backup.zip --out ~/exported --preview`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath := args[0]

		outDir := cfg.Output.Dir
		if extractOut != "" {
			outDir = extractOut
		}

		opts := extract.DefaultOptions()
		opts.IncludePreview = cfg.Extract.Preview || extractPreview

		members, err := backup.ReadMembers(archivePath)
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		logger.Debug("archive read", "path", archivePath, "records", len(members))

		fmt.Printf("Extracting contacts from %s\n", archivePath)
		fmt.Printf("Records: %d\n", len(members))
		if opts.IncludePreview {
			fmt.Println("Preview scan: enabled")
		}
		fmt.Println()

		// Run the engine on a managed goroutine so the command stays
		// responsive to cancellation.
		var (
			reg     *contacts.Registry
			summary *extract.Summary
		)
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var runErr error
			reg, summary, runErr = extract.New(NewCLIProgress()).Run(ctx, members, opts)
			return runErr
		})
		if err := g.Wait(); err != nil {
			if ctx.Err() != nil {
				fmt.Println("\nExtraction interrupted. No files written.")
				return err
			}
			return fmt.Errorf("extract: %w", err)
		}

		sorted := reg.SortedByCount()
		paths, err := export.WriteFiles(outDir, export.Files{
			AllCSV:      export.CSV(sorted),
			FrequentCSV: export.FrequentCSV(sorted),
			VCard:       export.VCard(sorted),
		})
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		printExtractSummary(summary, reg, paths)
		return nil
	},
}

func printExtractSummary(summary *extract.Summary, reg *contacts.Registry, paths []string) {
	fmt.Println("Extraction complete!")
	fmt.Printf("  Duration:   %s\n", summary.Duration.Round(time.Millisecond))
	fmt.Printf("  Records:    %d processed", summary.MembersProcessed)
	if summary.MembersFailed > 0 {
		fmt.Printf(", %d failed", summary.MembersFailed)
	}
	fmt.Println()
	fmt.Printf("  Addresses:  %d occurrences\n", summary.Occurrences)
	fmt.Printf("  Contacts:   %d unique, %d frequent\n", reg.Len(), reg.FrequentLen())
	fmt.Println()
	for _, p := range paths {
		fmt.Printf("  Wrote %s\n", p)
	}

	if top := reg.TopN(export.TopPreviewLen); len(top) > 0 {
		fmt.Println()
		outputContactsTable(top)
	}
}

// outputContactsTable prints contacts as a table.
func outputContactsTable(list []contacts.Contact) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tNAME\tSOURCE\tCOUNT")
	fmt.Fprintln(w, "─────\t────\t──────\t─────")

	for _, c := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			textutil.TruncateRunes(textutil.SanitizeTerminal(c.Email), 40),
			textutil.TruncateRunes(textutil.SanitizeTerminal(c.Name), 30),
			c.Role,
			c.Count,
		)
	}
	w.Flush()
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "output directory (default from config, else ./contacts)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "also scan message preview text")
	rootCmd.AddCommand(extractCmd)
}
