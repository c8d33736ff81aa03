package handler

import (
	"net/http"

	"storefront-service/internal/storage"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UploadImage stores an uploaded product image under a randomized
// filename and returns the public URL to reference from the product.
func UploadImage(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("upload")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
	}
	defer src.Close()

	filename := storage.GenerateFilename(fileHeader.Filename)
	url, err := uploads.Save(filename, src)
	if err != nil {
		log.Error("Failed to store upload",
			zap.String("filename", filename),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}

	log.Info("Image uploaded",
		zap.String("original", fileHeader.Filename),
		zap.String("filename", filename))
	return c.JSON(http.StatusCreated, echo.Map{"url": url, "filename": filename})
}
