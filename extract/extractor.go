// Package extract turns page captures into lists of extracted people. It
// composes the extraction prompt, obtains a completion, and repairs and
// decodes the response.
package extract

import (
	"context"
	"strings"

	"github.com/warmlinehq/warmline"
)

// Ensure Extractor implements warmline.PeopleExtractor at compile time.
var _ warmline.PeopleExtractor = (*Extractor)(nil)

// Extractor implements warmline.PeopleExtractor over a Completer.
type Extractor struct {
	completer warmline.Completer
}

// NewExtractor creates a new Extractor.
func NewExtractor(completer warmline.Completer) *Extractor {
	return &Extractor{completer: completer}
}

// ExtractPeople runs one extraction over a capture. Errors from the
// completion call and the parse are terminal for the invocation; the caller
// retries by re-invoking the pipeline from capture onward.
func (e *Extractor) ExtractPeople(ctx context.Context, capture *warmline.PageCapture) ([]*warmline.Person, error) {
	if capture == nil || strings.TrimSpace(capture.Text) == "" {
		return nil, warmline.Errorf(warmline.EINVALID, "capture text required")
	}

	comp, err := e.completer.Complete(ctx, BuildPrompt(capture))
	if err != nil {
		return nil, err
	}

	return ParsePeople(comp.Text, comp.Truncated)
}
