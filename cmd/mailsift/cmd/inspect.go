package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mailsift/mailsift/internal/backup"
	"github.com/mailsift/mailsift/internal/extract"
	"github.com/mailsift/mailsift/internal/textutil"
)

var (
	inspectJSON    bool
	inspectPreview bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.zip>",
	Short: "Show per-record diagnostics for a backup archive",
	Long: `Inspect the message records inside a backup archive.

Reports each record's encoding and how many addresses extraction would
find in it, plus an archive-wide encoding breakdown. Records that are
neither byte-order marked nor valid UTF-8 are run through charset
detection to help diagnose mojibake.

Examples:
  mailsift inspect backup.zip
  mailsift inspect backup.zip --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := backup.ReadMembers(args[0])
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}

		report := buildInspectReport(members, cfg.Extract.Preview || inspectPreview)

		if inspectJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		outputInspectReport(args[0], report)
		return nil
	},
}

type recordReport struct {
	Name       string `json:"name"`
	Encoding   string `json:"encoding,omitempty"`
	Detected   string `json:"detected,omitempty"`
	Candidates int    `json:"candidates"`
	Error      string `json:"error,omitempty"`
}

type inspectReport struct {
	Records   int            `json:"records"`
	Failed    int            `json:"failed"`
	Encodings map[string]int `json:"encodings"`
	Details   []recordReport `json:"details"`
}

// buildInspectReport examines every member without mutating any state,
// so repeated inspections of one archive always agree.
func buildInspectReport(members []backup.Member, includePreview bool) inspectReport {
	report := inspectReport{
		Records:   len(members),
		Encodings: make(map[string]int),
		Details:   make([]recordReport, 0, len(members)),
	}

	for _, m := range members {
		rec := recordReport{Name: m.Name}
		if m.Err != nil {
			rec.Error = m.Err.Error()
			report.Failed++
			report.Details = append(report.Details, rec)
			continue
		}

		rec.Encoding = textutil.RecordEncoding(m.Data)
		if rec.Encoding == textutil.EncodingUTF8 && !utf8.Valid(m.Data) {
			rec.Detected = textutil.DetectCharset(m.Data)
		}
		report.Encodings[rec.Encoding]++

		text := textutil.DecodeRecord(m.Data)
		cands := extract.ScanFields(text)
		if includePreview {
			cands = append(cands, extract.ScanPreview(text)...)
		}
		rec.Candidates = len(cands)

		report.Details = append(report.Details, rec)
	}

	return report
}

func outputInspectReport(archivePath string, report inspectReport) {
	fmt.Printf("Archive: %s\n", archivePath)
	fmt.Printf("  Records:  %d\n", report.Records)
	if report.Failed > 0 {
		fmt.Printf("  Failed:   %d\n", report.Failed)
	}
	for _, enc := range []string{textutil.EncodingUTF8, textutil.EncodingUTF16LE, textutil.EncodingUTF16BE} {
		if n := report.Encodings[enc]; n > 0 {
			fmt.Printf("  %-9s %d\n", enc+":", n)
		}
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECORD\tENCODING\tDETECTED\tADDRESSES")
	fmt.Fprintln(w, "──────\t────────\t────────\t─────────")

	for _, rec := range report.Details {
		if rec.Error != "" {
			continue
		}
		detected := rec.Detected
		if detected == "" {
			detected = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			textutil.TruncateRunes(textutil.SanitizeTerminal(rec.Name), 40),
			rec.Encoding,
			detected,
			rec.Candidates,
		)
	}
	w.Flush()

	if report.Failed > 0 {
		fmt.Println("\nFailed records:")
		for _, rec := range report.Details {
			if rec.Error != "" {
				fmt.Printf("  %s: %s\n",
					textutil.SanitizeTerminal(rec.Name),
					textutil.SanitizeTerminal(rec.Error),
				)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output as JSON")
	inspectCmd.Flags().BoolVar(&inspectPreview, "preview", false, "Count preview text addresses too")
}
