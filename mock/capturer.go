package mock

import "github.com/warmlinehq/warmline"

var _ warmline.Capturer = (*Capturer)(nil)

// Capturer is a mock implementation of warmline.Capturer.
type Capturer struct {
	CaptureFn func(html, url string) (*warmline.PageCapture, error)
}

func (c *Capturer) Capture(html, url string) (*warmline.PageCapture, error) {
	return c.CaptureFn(html, url)
}
