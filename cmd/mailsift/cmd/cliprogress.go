package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/mailsift/mailsift/internal/extract"
	"github.com/mailsift/mailsift/internal/textutil"
)

// CLIProgress implements extract.Progress for terminal output. The
// running progress line goes to stderr and only when stderr is a
// terminal, so piped and redirected output stays clean.
type CLIProgress struct {
	startTime time.Time
	lastPrint time.Time
	tty       bool
}

func NewCLIProgress() *CLIProgress {
	fd := os.Stderr.Fd()
	return &CLIProgress{
		tty: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (p *CLIProgress) OnStart(totalMembers int) {
	p.startTime = time.Now()
	p.lastPrint = time.Time{}
}

func (p *CLIProgress) OnProgress(processed, total, contactsFound int) {
	if p.startTime.IsZero() {
		p.startTime = time.Now()
	}
	if !p.tty {
		return
	}
	// Throttle to every 2 seconds, but always render the final notification.
	if processed < total && time.Since(p.lastPrint) < 2*time.Second {
		return
	}
	p.lastPrint = time.Now()

	elapsed := time.Since(p.startTime)
	rate := 0.0
	if elapsed.Seconds() >= 1 {
		rate = float64(processed) / elapsed.Seconds()
	}

	fmt.Fprintf(os.Stderr, "\r  Records: %d/%d | Contacts: %d | Rate: %.0f/s | Elapsed: %s    ",
		processed, total, contactsFound, rate, formatDuration(elapsed))
}

func (p *CLIProgress) OnComplete(summary *extract.Summary) {
	if p.tty {
		fmt.Fprintln(os.Stderr) // Clear the progress line.
	}
}

func (p *CLIProgress) OnError(err error) {
	fmt.Fprintf(os.Stderr, "\nWarning: %s\n", textutil.SanitizeTerminal(err.Error()))
}

// formatDuration formats a duration as "Xm Ys" or "Xh Ym" for readability.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
