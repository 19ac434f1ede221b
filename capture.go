package warmline

import "context"

// MaxCaptureText is the maximum number of bytes of page text retained in a
// capture. Longer pages are cut at this boundary and marked with
// TruncationMarker.
const MaxCaptureText = 15000

// MinCaptureText is the threshold below which a capture is considered too
// thin to be useful. Pipelines with a browser fetcher configured refetch the
// page with JavaScript rendering when the plain fetch yields less than this.
const MinCaptureText = 200

// TruncationMarker is appended to capture text that was cut at
// MaxCaptureText, so downstream consumers (and the LLM) know the content is
// incomplete.
const TruncationMarker = "\n[...truncated]"

// PageCapture is the text and metadata snapshot of one web page at
// extraction time. It is created once per extraction and discarded after the
// prompt is built.
type PageCapture struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Capturer produces a PageCapture from rendered page HTML.
// Implementations must not mutate the input; they operate on a parsed copy.
type Capturer interface {
	// Capture extracts the visible text of the page, inlining contact URLs
	// (professional-network profiles, mailto links) into the text so the
	// extraction step can see them. The text is bounded by MaxCaptureText.
	// Returns ENOPAGE if there is no content to capture.
	Capture(html, url string) (*PageCapture, error)
}

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch navigates to the URL and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
