package dto

import "errors"

// Upload is one file accepted for analysis. Data lives only for the duration
// of the request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AnalyzeRequest represents one bundle analysis request.
type AnalyzeRequest struct {
	Uploads []Upload
}

// Validate performs basic validation on the request.
func (r *AnalyzeRequest) Validate() error {
	if len(r.Uploads) == 0 {
		return errors.New("no files provided")
	}
	return nil
}
