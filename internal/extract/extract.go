// Package extract turns backup archive members into aggregated
// contacts. The engine walks members sequentially, decodes each record,
// scans its structured recipient fields (and optionally its preview
// text), and folds every address occurrence into a contact registry.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/mailsift/mailsift/internal/backup"
	"github.com/mailsift/mailsift/internal/contacts"
	"github.com/mailsift/mailsift/internal/textutil"
)

// progressEvery is the member cadence for OnProgress notifications.
const progressEvery = 100

// Extractor runs the contact extraction engine.
type Extractor struct {
	progress Progress
}

// New creates an extractor. A nil progress reports nothing.
func New(progress Progress) *Extractor {
	if progress == nil {
		progress = NullProgress{}
	}
	return &Extractor{progress: progress}
}

// Run processes members in archive order and aggregates every address
// occurrence into one registry. Members that cannot be read or scanned
// are skipped and counted, never fatal. The only error Run returns is
// ctx cancellation, checked at member boundaries.
func (ex *Extractor) Run(ctx context.Context, members []backup.Member, opts Options) (*contacts.Registry, *Summary, error) {
	startTime := time.Now()
	summary := &Summary{MembersTotal: len(members)}
	reg := contacts.NewRegistry()

	ex.progress.OnStart(len(members))

	for i, m := range members {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}

		if err := ex.scanMember(reg, m, opts, summary); err != nil {
			summary.MembersFailed++
			ex.progress.OnError(fmt.Errorf("member %s: %w", m.Name, err))
		} else {
			summary.MembersProcessed++
		}

		if processed := i + 1; processed%progressEvery == 0 {
			ex.progress.OnProgress(processed, len(members), reg.Len())
		}
	}

	summary.Contacts = reg.Len()
	summary.Duration = time.Since(startTime)

	if len(members)%progressEvery != 0 {
		ex.progress.OnProgress(len(members), len(members), reg.Len())
	}
	ex.progress.OnComplete(summary)

	return reg, summary, nil
}

// scanMember decodes and scans one member. A panic while scanning a
// mangled record fails only that member.
func (ex *Extractor) scanMember(reg *contacts.Registry, m backup.Member, opts Options, summary *Summary) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scan record: %v", r)
		}
	}()

	if m.Err != nil {
		return m.Err
	}

	text := textutil.DecodeRecord(m.Data)
	cands := ScanFields(text)
	if opts.IncludePreview {
		cands = append(cands, ScanPreview(text)...)
	}
	for _, c := range cands {
		reg.Observe(c)
	}
	summary.Occurrences += len(cands)
	return nil
}
