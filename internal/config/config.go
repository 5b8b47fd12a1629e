package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL string // VASO_DATABASE_URL (required)
	HTTPAddr    string // VASO_HTTP_ADDR (default ":8080")
	NATSURL     string // VASO_NATS_URL (optional, empty = no events)
	AuthToken   string // VASO_AUTH_TOKEN (optional, empty = auth disabled)

	// Pathfinding
	MaxPathDepth int // VASO_MAX_PATH_DEPTH (default 20)

	// Export settings
	ExportInterval   time.Duration // VASO_EXPORT_INTERVAL (default 0 = disabled)
	ExportS3Bucket   string        // VASO_EXPORT_S3_BUCKET (enables S3 when set)
	ExportS3Endpoint string        // VASO_EXPORT_S3_ENDPOINT (custom endpoint for MinIO)
	ExportS3Region   string        // VASO_EXPORT_S3_REGION (default "us-east-1")
	ExportS3Key      string        // VASO_EXPORT_S3_KEY (default "vaso/dataset.jsonl")
	ExportGitRepo    string        // VASO_EXPORT_GIT_REPO (enables git when set; path to clone)
	ExportGitFile    string        // VASO_EXPORT_GIT_FILE (default "vessels.jsonl")
	ExportGitBranch  string        // VASO_EXPORT_GIT_BRANCH (default "main")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:      os.Getenv("VASO_DATABASE_URL"),
		HTTPAddr:         envOrDefault("VASO_HTTP_ADDR", ":8080"),
		NATSURL:          os.Getenv("VASO_NATS_URL"),
		AuthToken:        os.Getenv("VASO_AUTH_TOKEN"),
		ExportS3Bucket:   os.Getenv("VASO_EXPORT_S3_BUCKET"),
		ExportS3Endpoint: os.Getenv("VASO_EXPORT_S3_ENDPOINT"),
		ExportS3Region:   envOrDefault("VASO_EXPORT_S3_REGION", "us-east-1"),
		ExportS3Key:      envOrDefault("VASO_EXPORT_S3_KEY", "vaso/dataset.jsonl"),
		ExportGitRepo:    os.Getenv("VASO_EXPORT_GIT_REPO"),
		ExportGitFile:    envOrDefault("VASO_EXPORT_GIT_FILE", "vessels.jsonl"),
		ExportGitBranch:  envOrDefault("VASO_EXPORT_GIT_BRANCH", "main"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("VASO_DATABASE_URL is required")
	}

	depthStr := envOrDefault("VASO_MAX_PATH_DEPTH", "20")
	depth, err := strconv.Atoi(depthStr)
	if err != nil {
		return nil, fmt.Errorf("VASO_MAX_PATH_DEPTH: %w", err)
	}
	if depth < 1 {
		return nil, fmt.Errorf("VASO_MAX_PATH_DEPTH must be at least 1, got %d", depth)
	}
	c.MaxPathDepth = depth

	intervalStr := envOrDefault("VASO_EXPORT_INTERVAL", "0")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("VASO_EXPORT_INTERVAL: %w", err)
		}
		c.ExportInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
