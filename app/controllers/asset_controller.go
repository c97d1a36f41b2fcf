package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/branch-locator/app/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version of the asset host
const Version = "1.0.0"

// AssetController serves the branch dataset at its fixed relative path
type AssetController struct {
	dir       string
	file      string
	logger    *zap.Logger
	startTime time.Time
}

// NewAssetController creates an AssetController serving dir/file
func NewAssetController(dir, file string, logger *zap.Logger) *AssetController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetController{
		dir:       dir,
		file:      file,
		logger:    logger,
		startTime: time.Now(),
	}
}

// FileName the relative path the dataset is served under
func (ac *AssetController) FileName() string { return ac.file }

func (ac *AssetController) path() string { return filepath.Join(ac.dir, ac.file) }

// Dataset streams the dataset file unchanged
func (ac *AssetController) Dataset(c *gin.Context) {
	info, err := os.Stat(ac.path())
	if err != nil || info.IsDir() {
		ac.logger.Warn("Dataset not available", zap.String("path", ac.path()), zap.Error(err))
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:     "DATASET_NOT_FOUND",
			Message:   "dataset file is not available",
			Path:      c.Request.URL.Path,
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.File(ac.path())
}

// HealthCheck reports uptime and whether the dataset is present
func (ac *AssetController) HealthCheck(c *gin.Context) {
	dataset := map[string]string{"file": ac.file, "status": "missing"}
	status := "degraded"
	if info, err := os.Stat(ac.path()); err == nil && !info.IsDir() {
		dataset["status"] = "present"
		dataset["size"] = strconv.FormatInt(info.Size(), 10)
		dataset["modified"] = info.ModTime().Format(time.RFC3339)
		status = "healthy"
	}

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(ac.startTime).String(),
		Version:   Version,
		Dataset:   dataset,
	})
}
