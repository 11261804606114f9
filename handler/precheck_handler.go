package handler

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vizalabs/schengen-precheck/dto"
	"github.com/vizalabs/schengen-precheck/service"
)

// allowedContentTypes are the media types admitted for analysis.
var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
}

type PrecheckHandler struct {
	precheckService *service.PrecheckService
	maxFileBytes    int64
}

func NewPrecheckHandler(precheckService *service.PrecheckService, maxFileBytes int64) *PrecheckHandler {
	return &PrecheckHandler{
		precheckService: precheckService,
		maxFileBytes:    maxFileBytes,
	}
}

// Analyze handles the POST /precheck/analyze endpoint
func (h *PrecheckHandler) Analyze(c *gin.Context) {
	log.Println("Received bundle analysis request")

	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	files := form.File["files[]"]
	if len(files) == 0 {
		h.sendError(c, http.StatusBadRequest, "No files provided", nil)
		return
	}

	uploads := make([]dto.Upload, 0, len(files))
	for _, fileHeader := range files {
		ctype := strings.ToLower(fileHeader.Header.Get("Content-Type"))
		if !allowedContentTypes[ctype] {
			h.sendError(c, http.StatusUnsupportedMediaType,
				fmt.Sprintf("Unsupported file type: %s", ctype), nil)
			return
		}
		if fileHeader.Size > h.maxFileBytes {
			h.sendError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File too large: %s (%.2f MB)", fileHeader.Filename,
					float64(fileHeader.Size)/(1024*1024)), nil)
			return
		}

		data, err := readUpload(fileHeader)
		if err != nil {
			h.sendError(c, http.StatusBadRequest,
				fmt.Sprintf("Failed to read file %s", fileHeader.Filename), err)
			return
		}

		uploads = append(uploads, dto.Upload{
			Filename:    fileHeader.Filename,
			ContentType: ctype,
			Data:        data,
		})
	}

	log.Printf("Processing %d files", len(uploads))

	response, err := h.precheckService.AnalyzeBundle(c.Request.Context(), &dto.AnalyzeRequest{Uploads: uploads})
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to analyze documents", err)
		return
	}

	log.Printf("Bundle analysis completed with status %s", response.Status)
	c.JSON(http.StatusOK, response)
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// sendError sends a structured error response
func (h *PrecheckHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
