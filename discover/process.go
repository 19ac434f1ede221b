package discover

import (
	"context"
	"unicode/utf8"

	"github.com/warmlinehq/warmline"
)

// capturePage fetches the URL and captures its visible text. When the plain
// fetch yields less than warmline.MinCaptureText characters and a browser
// fetcher is configured, the page is refetched with JavaScript rendering;
// pages that build their rosters client-side are near-empty without it.
func (p *Pipeline) capturePage(ctx context.Context, url string) (*warmline.PageCapture, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	capture, err := p.Capturer.Capture(html, url)
	if err != nil {
		return nil, err
	}

	chars := utf8.RuneCountInString(capture.Text)
	if chars >= warmline.MinCaptureText || p.Browser == nil {
		return capture, nil
	}

	p.logger().Info("capture too thin, refetching with browser",
		"url", url,
		"chars", chars,
	)

	html, err = p.Browser.Fetch(ctx, url)
	if err != nil {
		p.logger().Warn("browser refetch failed, keeping plain capture",
			"url", url,
			"error", err,
		)
		return capture, nil
	}

	rendered, err := p.Capturer.Capture(html, url)
	if err != nil {
		return capture, nil
	}
	return rendered, nil
}

// ProcessURL runs the full pipeline for one page: fetch, capture, extract,
// and submit. When lastHash matches the hash of the captured text the page
// is unchanged since the previous check and the completion call is skipped.
// In dry-run mode extraction happens but nothing is submitted.
func (p *Pipeline) ProcessURL(ctx context.Context, url, forTag, lastHash string) (*Result, error) {
	capture, err := p.capturePage(ctx, url)
	if err != nil {
		return nil, err
	}

	result := &Result{Hash: hashText(capture.Text)}

	if lastHash != "" && result.Hash == lastHash {
		p.logger().Info("page unchanged, skipping extraction", "url", url)
		result.Unchanged = true
		return result, nil
	}

	people, err := p.Extractor.ExtractPeople(ctx, capture)
	if err != nil {
		return nil, err
	}

	if p.Review != nil {
		people = p.Review(people)
	}
	result.Extracted = len(people)

	if p.DryRun || len(people) == 0 {
		return result, nil
	}

	outcome, err := p.Submitter.Submit(ctx, people, url, forTag)
	if outcome != nil {
		result.Inserted = outcome.Inserted
		result.Skipped = outcome.Skipped
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

// ProcessSource processes one registered source and records the check in
// the source's bookkeeping fields. LastCheckedAt advances even when the
// page failed to process, so a persistently broken source is not retried
// on every walk. Bookkeeping is skipped entirely in dry-run mode.
func (p *Pipeline) ProcessSource(ctx context.Context, src *warmline.Source) (*Result, error) {
	result, perr := p.ProcessURL(ctx, src.URL, src.ForTag, src.LastContentHash)

	if !p.DryRun {
		now := p.now()
		upd := warmline.SourceUpdate{LastCheckedAt: &now}
		if perr == nil && result != nil && !result.Unchanged {
			upd.LastPeopleCount = &result.Extracted
			upd.LastContentHash = &result.Hash
		}
		if _, err := p.Sources.UpdateSource(ctx, src.ID, upd); err != nil {
			p.logger().Error("failed to update source bookkeeping",
				"source_id", src.ID,
				"error", err,
			)
		}
	}

	return result, perr
}

// ProcessDue walks all sources due for a check at the current time and
// processes them sequentially. A failing source is counted and logged but
// does not stop the walk.
func (p *Pipeline) ProcessDue(ctx context.Context) (*Summary, error) {
	sources, err := p.Sources.FindDueSources(ctx, p.now())
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, src := range sources {
		result, err := p.ProcessSource(ctx, src)
		summary.Sources++
		if result != nil {
			summary.Extracted += result.Extracted
			summary.Inserted += result.Inserted
			summary.Skipped += result.Skipped
		}
		if err != nil {
			summary.Errors++
			p.logger().Error("source processing failed",
				"source_id", src.ID,
				"url", src.URL,
				"error", err,
			)
		}
	}
	return summary, nil
}
