package ocr

import "context"

// Result is the outcome of one extraction.
type Result struct {
	Text string
	// Confidence is a 0-100 percentage. Engines that do not report one
	// leave it at zero.
	Confidence float64
}

// ProgressFunc receives coarse extraction progress as a 0-100 percentage.
type ProgressFunc func(percent float64)

// Request carries one image to extract text from.
type Request struct {
	Image    []byte
	Filename string
	// Languages are engine-specific hints, e.g. "eng", "hin".
	Languages []string
	// OnProgress is optional; providers call it best-effort.
	OnProgress ProgressFunc
}

// Provider defines the contract for any OCR backend.
type Provider interface {
	// Extract runs text recognition on the image. A transport or engine
	// failure is returned as an error; an image that simply contains no
	// text yields a Result with empty Text and a nil error.
	Extract(ctx context.Context, req Request) (*Result, error)
}
