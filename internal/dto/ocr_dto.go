package dto

type ExtractTextResponse struct {
	Text string `json:"text"`
	// Confidence is a 0-100 percentage; 0 when the engine reports none.
	Confidence float64 `json:"confidence"`
}
