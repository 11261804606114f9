package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vizalabs/schengen-precheck/dto"
	"github.com/vizalabs/schengen-precheck/metrics"
	"github.com/vizalabs/schengen-precheck/utils"
)

// StoragePolicyNoPersist marks responses of a service that never writes
// document bytes or OCR text anywhere.
const StoragePolicyNoPersist = "no_persist"

var (
	defaultOverallReason = "Document pre-check completed; no critical issues were found."
	defaultOverallAction = "Review your document formats once more before applying."
)

// PrecheckService runs the bundle analysis pipeline: OCR, classification,
// field extraction and rule evaluation per file, then the cross-document
// date check and the final aggregation.
type PrecheckService struct {
	extractor           TextExtractor
	confidenceThreshold int
	metrics             *metrics.Metrics
}

func NewPrecheckService(extractor TextExtractor, confidenceThreshold int, m *metrics.Metrics) *PrecheckService {
	return &PrecheckService{
		extractor:           extractor,
		confidenceThreshold: confidenceThreshold,
		metrics:             m,
	}
}

// AnalyzeBundle processes every uploaded file and produces the overall
// traffic-light verdict. Files are processed concurrently; the result order
// always matches upload order. No failure on a single file aborts the
// analysis: extraction failures degrade that file's verdict instead.
func (s *PrecheckService) AnalyzeBundle(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	now := time.Now()

	results := make([]dto.FileResult, len(req.Uploads))
	var wg sync.WaitGroup
	for i := range req.Uploads {
		wg.Add(1)
		go func(i int, upload dto.Upload) {
			defer wg.Done()
			results[i] = s.analyzeFile(ctx, upload, now)
		}(i, req.Uploads[i])
	}
	wg.Wait()

	overall := dto.Verdict{Status: dto.StatusOK}
	for _, r := range results {
		overall = dto.CombineVerdicts(overall, r.Rule)
	}

	if cross := CrossDocumentCheck(results); cross != nil {
		overall.Status = dto.MaxStatus(overall.Status, cross.Status)
		for _, reason := range cross.Reasons {
			overall.Reasons = append(overall.Reasons, "[CROSS] "+reason)
		}
		overall.Actions = append(overall.Actions, cross.Actions...)
	}

	// The aggregate is never empty.
	if len(overall.Reasons) == 0 {
		overall.Reasons = []string{defaultOverallReason}
	}
	if len(overall.Actions) == 0 {
		overall.Actions = []string{defaultOverallAction}
	}

	filesReceived := make([]dto.FileMeta, len(results))
	for i, r := range results {
		filesReceived[i] = r.File
	}

	elapsed := time.Since(start)
	s.metrics.RecordBundle(string(overall.Status), elapsed)

	return &dto.AnalyzeResponse{
		RequestID:     uuid.New().String(),
		Status:        overall.Status,
		Reasons:       overall.Reasons,
		Actions:       overall.Actions,
		FilesReceived: filesReceived,
		FileResults:   results,
		ProcessingMS:  elapsed.Milliseconds(),
		StoragePolicy: StoragePolicyNoPersist,
	}, nil
}

// analyzeFile runs the per-file pipeline. It always returns a well-formed
// result; when no text can be extracted the file is reported as unknown with
// a warning verdict rather than failing the bundle.
func (s *PrecheckService) analyzeFile(ctx context.Context, upload dto.Upload, now time.Time) dto.FileResult {
	meta := dto.FileMeta{
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		SizeMB:      roundMB(len(upload.Data)),
	}

	extraction, err := s.extractor.Extract(ctx, upload.Data, upload.ContentType)
	if err != nil {
		log.Printf("Text extraction failed for %s: %v", upload.Filename, err)
		return s.failedExtractionResult(meta)
	}

	docType := utils.DetectDocType(extraction.Text, s.confidenceThreshold)
	docRole := dto.RoleOf(docType)
	fields := utils.ExtractFieldsByType(docType, extraction.Text, extraction.Pages, now)
	rule := EvaluateRules(docType, fields, now)

	s.metrics.RecordClassification(string(docType))

	return dto.FileResult{
		File:           meta,
		DocType:        docType,
		DocRole:        docRole,
		PagesProcessed: extraction.PagesProcessed,
		Fields:         fields,
		Rule:           rule,
		LLMPayloadPreview: dto.PolicyPreview{
			DocType:    docType,
			DocRole:    docRole,
			Fields:     fields,
			RuleResult: rule,
			Policy:     dto.PolicyNoRawData,
		},
	}
}

func (s *PrecheckService) failedExtractionResult(meta dto.FileMeta) dto.FileResult {
	fields := &dto.GenericFields{}
	rule := warning(
		"No text could be extracted from the document.",
		"Check that the file is a readable PDF or image and upload it again.",
	)
	return dto.FileResult{
		File:    meta,
		DocType: dto.DocTypeUnknown,
		DocRole: dto.RoleOf(dto.DocTypeUnknown),
		Fields:  fields,
		Rule:    rule,
		LLMPayloadPreview: dto.PolicyPreview{
			DocType:    dto.DocTypeUnknown,
			DocRole:    dto.RoleOf(dto.DocTypeUnknown),
			Fields:     fields,
			RuleResult: rule,
			Policy:     dto.PolicyNoRawData,
		},
	}
}

func roundMB(n int) float64 {
	mb := float64(n) / (1024 * 1024)
	return float64(int(mb*100+0.5)) / 100
}
