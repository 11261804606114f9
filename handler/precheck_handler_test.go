package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vizalabs/schengen-precheck/dto"
	"github.com/vizalabs/schengen-precheck/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	text string
}

func (s *stubExtractor) Extract(_ context.Context, _ []byte, _ string) (*service.ExtractionResult, error) {
	return &service.ExtractionResult{
		Text:           s.text,
		PagesProcessed: 1,
		Pages:          []dto.PageText{{Page: 1, Text: s.text}},
	}, nil
}

func newTestRouter(maxFileBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewPrecheckService(&stubExtractor{text: "Hesap Özeti iban bakiye ekstre"}, 2, nil)
	h := NewPrecheckHandler(svc, maxFileBytes)

	router := gin.New()
	router.POST("/api/v1/precheck/analyze", h.Analyze)
	return router
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for filename, contentType := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="files[]"; filename="%s"`, filename))
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("file content bytes"))
		require.NoError(t, err)
	}
	if len(files) == 0 {
		require.NoError(t, writer.WriteField("note", "empty"))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestAnalyzeNoFiles(t *testing.T) {
	router := newTestRouter(10 << 20)
	body, contentType := multipartBody(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/precheck/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "No files")
}

func TestAnalyzeUnsupportedMediaType(t *testing.T) {
	router := newTestRouter(10 << 20)
	body, contentType := multipartBody(t, map[string]string{"notes.txt": "text/plain"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/precheck/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestAnalyzeFileTooLarge(t *testing.T) {
	// Cap below the payload size so the size check fires.
	router := newTestRouter(4)
	body, contentType := multipartBody(t, map[string]string{"big.pdf": "application/pdf"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/precheck/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "big.pdf")
}

func TestAnalyzeSuccess(t *testing.T) {
	router := newTestRouter(10 << 20)
	body, contentType := multipartBody(t, map[string]string{"statement.pdf": "application/pdf"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/precheck/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Fields is a per-type record, so the body is decoded generically.
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["request_id"])
	assert.Equal(t, "no_persist", resp["storage_policy"])

	fileResults, ok := resp["file_results"].([]interface{})
	require.True(t, ok)
	require.Len(t, fileResults, 1)
	first, ok := fileResults[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "bank_statement", first["doc_type"])
}
