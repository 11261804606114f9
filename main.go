package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/vizalabs/schengen-precheck/client"
	"github.com/vizalabs/schengen-precheck/config"
	"github.com/vizalabs/schengen-precheck/handler"
	"github.com/vizalabs/schengen-precheck/metrics"
	"github.com/vizalabs/schengen-precheck/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize OCR clients
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	defer tesseractClient.Close()
	barcodeClient := client.NewBarcodeClient()

	// Initialize PDF processor and the text extraction collaborator
	pdfProcessor := service.NewPDFProcessor()
	textExtractor := service.NewTextExtractor(pdfProcessor, tesseractClient, barcodeClient, cfg.MaxPDFPages)

	// Initialize observability
	m := metrics.New("precheck-api")

	// Initialize service layer
	precheckService := service.NewPrecheckService(textExtractor, cfg.ConfidenceThreshold, m)

	// Initialize handler layer
	precheckHandler := handler.NewPrecheckHandler(precheckService, cfg.MaxFileBytes)

	// Setup Gin router
	router := gin.Default()
	router.Use(m.GinMiddleware("precheck-api"))

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Schengen Document Pre-check",
		})
	})

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		precheck := api.Group("/precheck")
		{
			precheck.POST("/analyze", precheckHandler.Analyze)
		}
	}

	// Start server
	log.Printf("Starting Schengen Document Pre-check Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
