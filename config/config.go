package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort          string
	TesseractDataPath   string
	OCRLanguages        []string
	MaxFileBytes        int64
	MaxPDFPages         int
	ConfidenceThreshold int
}

func LoadConfig() *Config {
	// Missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		TesseractDataPath:   getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		OCRLanguages:        strings.Split(getEnv("OCR_LANGUAGES", "eng,tur"), ","),
		MaxFileBytes:        int64(getEnvInt("MAX_FILE_MB", 10)) * 1024 * 1024,
		MaxPDFPages:         getEnvInt("MAX_PDF_PAGES", 6),
		ConfidenceThreshold: getEnvInt("CONFIDENCE_THRESHOLD", 2),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
