package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AnalyzeResponse is the final response structure for a bundle analysis.
// It exposes only derived signals; raw page text never appears here.
type AnalyzeResponse struct {
	RequestID     string       `json:"request_id"`
	Status        RuleStatus   `json:"status"`
	Reasons       []string     `json:"reasons"`
	Actions       []string     `json:"actions"`
	FilesReceived []FileMeta   `json:"files_received"`
	FileResults   []FileResult `json:"file_results"`
	ProcessingMS  int64        `json:"processing_ms"`
	StoragePolicy string       `json:"storage_policy"`
}
