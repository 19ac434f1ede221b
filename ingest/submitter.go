// Package ingest submits batches of extracted people to a store with
// conflict-as-duplicate semantics.
package ingest

import (
	"context"

	"github.com/warmlinehq/warmline"
)

// Ensure Submitter implements warmline.Submitter at compile time.
var _ warmline.Submitter = (*Submitter)(nil)

// Submitter writes extracted people to a store one row at a time, in list
// order. There is no batching and no parallel submission: each row is an
// independent insert attempt, so retrying a whole batch after a partial
// failure is safe. Already-inserted rows re-surface as conflicts.
type Submitter struct {
	store warmline.PeopleStore
}

// NewSubmitter creates a new Submitter.
func NewSubmitter(store warmline.PeopleStore) *Submitter {
	return &Submitter{store: store}
}

// Submit maps each person to a row and inserts it. A conflict counts as
// skipped and submission continues; any other failure aborts the remaining
// rows and is returned together with the counts accumulated so far. Rows
// inserted before the failure are not rolled back.
func (s *Submitter) Submit(ctx context.Context, people []*warmline.Person, sourceURL, forTag string) (*warmline.IngestOutcome, error) {
	if forTag == "" {
		forTag = warmline.DefaultTag
	}

	outcome := &warmline.IngestOutcome{}
	for _, p := range people {
		row := &warmline.PersonRow{
			Person:    *p,
			SourceURL: sourceURL,
			ForTag:    forTag,
			Status:    warmline.StatusDiscovered,
		}
		if err := row.Validate(); err != nil {
			return outcome, err
		}

		err := s.store.CreatePerson(ctx, row)
		switch {
		case err == nil:
			outcome.Inserted++
		case warmline.ErrorCode(err) == warmline.ECONFLICT:
			outcome.Skipped++
		default:
			return outcome, err
		}
	}

	return outcome, nil
}
