package warmline

import "context"

// Completion is the raw result of one completion request.
type Completion struct {
	// Text is the response text as produced by the model.
	Text string

	// Truncated is true when the service reports the response was cut off
	// for hitting the output-size limit.
	Truncated bool
}

// Completer sends a single prompt to an LLM completion service.
type Completer interface {
	// Complete sends one request and returns the raw response text plus a
	// truncation signal. No multi-turn context, no streaming.
	// Returns ECONFIG if the service credential is missing and ECOMPLETION
	// for a non-success response; neither is retried.
	Complete(ctx context.Context, prompt string) (*Completion, error)
}

// PeopleExtractor turns a page capture into a list of extracted people.
type PeopleExtractor interface {
	// ExtractPeople builds the extraction prompt, obtains a completion, and
	// repairs and decodes the response.
	// Returns EPARSE if the response cannot be repaired into a valid record
	// list; no partial results are returned.
	ExtractPeople(ctx context.Context, capture *PageCapture) ([]*Person, error)
}

// ReviewFunc is applied to extracted people before submission. It is a pure
// transform: the interactive review surface edits or removes records and
// returns what should be submitted.
type ReviewFunc func([]*Person) []*Person
