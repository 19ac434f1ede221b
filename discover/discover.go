// Package discover provides people-discovery orchestration.
// It coordinates fetching, capture, extraction, and ingestion for one-off
// URLs and for registered sources, including the periodic due-source walk.
package discover

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/warmlinehq/warmline"
)

// Pipeline orchestrates the discovery of people from web pages.
type Pipeline struct {
	Sources   warmline.SourceService
	Fetcher   warmline.Fetcher
	Browser   warmline.Fetcher // optional fallback for thin captures
	Capturer  warmline.Capturer
	Extractor warmline.PeopleExtractor
	Submitter warmline.Submitter
	Review    warmline.ReviewFunc // optional, applied before submission
	Logger    *slog.Logger
	DryRun    bool
	Now       func() time.Time
}

// Result holds the outcome of processing a single page.
type Result struct {
	Extracted int
	Inserted  int
	Skipped   int
	Hash      string
	Unchanged bool
}

// Summary holds the aggregate outcome of a due-source walk.
type Summary struct {
	Sources   int
	Extracted int
	Inserted  int
	Skipped   int
	Errors    int
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// hashText returns a stable hex digest of the captured text, used to detect
// unchanged pages between checks.
func hashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
