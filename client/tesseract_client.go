package client

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient wraps Tesseract OCR. It runs one pass per configured
// language (the first is mandatory, the rest best-effort) and merges the
// results, because Turkish passports and bank statements mix scripts the
// English model alone misses.
type TesseractClient struct {
	dataPath  string
	languages []string
}

func NewTesseractClient(dataPath string, languages []string) *TesseractClient {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &TesseractClient{
		dataPath:  dataPath,
		languages: languages,
	}
}

// ExtractFromImage OCRs a decoded page image.
func (tc *TesseractClient) ExtractFromImage(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode page image: %w", err)
	}
	return tc.ExtractFromBytes(buf.Bytes())
}

// ExtractFromBytes OCRs raw image bytes.
func (tc *TesseractClient) ExtractFromBytes(data []byte) (string, error) {
	var texts []string
	for i, lang := range tc.languages {
		text, err := tc.runPass(data, lang)
		if err != nil {
			// Only the primary language pass is required; a missing
			// secondary traineddata must not fail the page.
			if i == 0 {
				return "", err
			}
			log.Printf("Secondary OCR pass (%s) failed: %v", lang, err)
			continue
		}
		texts = append(texts, text)
	}
	return mergeAndDeduplicate(texts), nil
}

func (tc *TesseractClient) runPass(data []byte, lang string) (string, error) {
	c := gosseract.NewClient()
	defer c.Close()

	if tc.dataPath != "" {
		c.SetTessdataPrefix(tc.dataPath)
	}
	if err := c.SetLanguage(lang); err != nil {
		return "", fmt.Errorf("failed to set language %s: %w", lang, err)
	}
	if err := c.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}

// mergeAndDeduplicate combines per-language OCR outputs, dropping lines that
// repeat across passes.
func mergeAndDeduplicate(texts []string) string {
	seen := make(map[string]bool)
	var result []string

	for _, text := range texts {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			normalized := strings.ToLower(line)
			if !seen[normalized] {
				seen[normalized] = true
				result = append(result, line)
			}
		}
	}
	return strings.Join(result, "\n")
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
