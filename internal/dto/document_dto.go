package dto

type GenerateDocumentRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=fir rti"`
	Query    string `json:"query" validate:"required"`
	Response string `json:"response" validate:"required"`
	Language string `json:"language"`
}

type GenerateDocumentResponse struct {
	Kind          string `json:"kind"`
	Body          string `json:"body"`
	Filename      string `json:"filename"`
	ShareUrl      string `json:"share_url"`
	PrintHtml     string `json:"print_html"`
	GeneratedDate string `json:"generated_date"`
	Disclaimer    string `json:"disclaimer"`
}
