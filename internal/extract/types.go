package extract

import "time"

// Options configures an extraction run.
type Options struct {
	// IncludePreview enables the heuristic preview-text scan in addition
	// to the structured field scan. Preview text is free-form, so this
	// trades extra contacts for occasional junk matches.
	IncludePreview bool
}

// DefaultOptions returns Options with the standard settings.
func DefaultOptions() Options {
	return Options{
		IncludePreview: false,
	}
}

// Summary holds statistics from a completed extraction run.
type Summary struct {
	Duration         time.Duration
	MembersTotal     int
	MembersProcessed int
	MembersFailed    int
	Occurrences      int
	Contacts         int
}

// Progress provides callbacks for extraction progress reporting.
// Callbacks fire on the extraction goroutine, so implementations must
// return quickly. Reporting is advisory and never affects output.
type Progress interface {
	// OnStart fires once before the first member is processed.
	OnStart(totalMembers int)
	// OnProgress fires after every 100th member and once at the end of
	// an uneven run.
	OnProgress(processed, total, contacts int)
	// OnComplete fires once with the final summary.
	OnComplete(summary *Summary)
	// OnError fires for each member that was skipped, with the reason.
	OnError(err error)
}

// NullProgress is a no-op implementation of Progress.
type NullProgress struct{}

func (NullProgress) OnStart(int)              {}
func (NullProgress) OnProgress(int, int, int) {}
func (NullProgress) OnComplete(*Summary)      {}
func (NullProgress) OnError(error)            {}
