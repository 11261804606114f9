package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/vizalabs/schengen-precheck/dto"
)

// minEmbeddedTextLength is the threshold below which a PDF is treated as
// scanned and sent through image OCR instead.
const minEmbeddedTextLength = 20

// ExtractionResult is the OCR collaborator output for one file: ordered page
// texts plus their newline-joined concatenation. It is request-scoped and
// never stored.
type ExtractionResult struct {
	Text           string
	PagesProcessed int
	Pages          []dto.PageText
}

// TextExtractor turns raw document bytes into page-level text. The core
// pipeline only depends on this interface; page text may be partial,
// mis-segmented or multilingual.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, contentType string) (*ExtractionResult, error)
}

// OCRClient recognizes text on a single page image.
type OCRClient interface {
	ExtractFromImage(img image.Image) (string, error)
	ExtractFromBytes(data []byte) (string, error)
}

// BarcodeDecoder best-effort decodes a machine-readable payload (QR or
// barcode) from a page image. E-tickets and insurance policies often carry
// their key fields only in a barcode.
type BarcodeDecoder interface {
	DecodePayload(img image.Image) (string, bool)
}

type ocrTextExtractor struct {
	pdfProcessor PDFProcessor
	ocr          OCRClient
	barcodes     BarcodeDecoder
	maxPDFPages  int
}

// NewTextExtractor composes the PDF processor, the OCR client and the barcode
// decoder into the extraction collaborator used by the pre-check service.
func NewTextExtractor(pdfProcessor PDFProcessor, ocr OCRClient, barcodes BarcodeDecoder, maxPDFPages int) TextExtractor {
	return &ocrTextExtractor{
		pdfProcessor: pdfProcessor,
		ocr:          ocr,
		barcodes:     barcodes,
		maxPDFPages:  maxPDFPages,
	}
}

func (e *ocrTextExtractor) Extract(ctx context.Context, data []byte, contentType string) (*ExtractionResult, error) {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return e.extractFromPDF(ctx, data)
	}
	return e.extractFromImageFile(data)
}

func (e *ocrTextExtractor) extractFromPDF(ctx context.Context, data []byte) (*ExtractionResult, error) {
	// Embedded text first; OCR only when the PDF looks scanned.
	pages, err := e.pdfProcessor.ExtractPageTexts(data, e.maxPDFPages)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}
	if len(strings.TrimSpace(joinPages(pages))) >= minEmbeddedTextLength {
		return resultFromPages(pages), nil
	}

	images, err := e.pdfProcessor.ExtractImages(data, e.maxPDFPages)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images from scanned pdf: %w", err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("no pages could be extracted from pdf")
	}

	var ocrPages []dto.PageText
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := e.ocr.ExtractFromImage(img)
		if err != nil {
			log.Printf("OCR failed for page %d: %v", i+1, err)
			continue
		}
		if payload, ok := e.barcodes.DecodePayload(img); ok {
			text = text + "\n" + payload
		}
		ocrPages = append(ocrPages, dto.PageText{Page: i + 1, Text: text})
	}

	if len(ocrPages) == 0 {
		return nil, fmt.Errorf("no text could be extracted from pdf")
	}
	return resultFromPages(ocrPages), nil
}

func (e *ocrTextExtractor) extractFromImageFile(data []byte) (*ExtractionResult, error) {
	text, err := e.ocr.ExtractFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("image OCR failed: %w", err)
	}

	// Barcode decode needs a decoded image; formats Go cannot decode (webp)
	// simply skip this step.
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		if payload, ok := e.barcodes.DecodePayload(img); ok {
			text = text + "\n" + payload
		}
	}

	return resultFromPages([]dto.PageText{{Page: 1, Text: text}}), nil
}

func resultFromPages(pages []dto.PageText) *ExtractionResult {
	return &ExtractionResult{
		Text:           joinPages(pages),
		PagesProcessed: len(pages),
		Pages:          pages,
	}
}

func joinPages(pages []dto.PageText) string {
	texts := make([]string, 0, len(pages))
	for _, p := range pages {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n")
}
