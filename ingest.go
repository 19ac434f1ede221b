package warmline

import "context"

// IngestOutcome holds the per-batch submission counts. Inserted plus Skipped
// equals the batch size unless a hard failure aborted the batch early.
type IngestOutcome struct {
	Inserted int `json:"insertedRows"`
	Skipped  int `json:"skippedRows"`
}

// Submitter submits a batch of extracted people to a store, one row at a
// time, in list order.
type Submitter interface {
	// Submit maps each person to a row and inserts it. Conflicts count as
	// skipped and submission continues; any other store failure aborts the
	// remaining rows and is returned together with the counts accumulated
	// so far. Rows inserted before the failure are not rolled back.
	Submit(ctx context.Context, people []*Person, sourceURL, forTag string) (*IngestOutcome, error)
}
