package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/cart-backend/internal/app/service"
	apperrors "github.com/ikkim/cart-backend/internal/errors"
	"github.com/ikkim/cart-backend/internal/middleware"
)

type UploadController struct {
	uploadService service.UploadService
}

func NewUploadController(uploadService service.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// GeneratePresignedURL returns a presigned S3 PUT for a cart item image.
// POST /api/v1/uploads/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid presigned URL request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "filename and content_type are required")
		return
	}

	upload, err := ctrl.uploadService.PresignItemImage(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedImageType):
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType, err.Error())
		case errors.Is(err, service.ErrUploadsDisabled):
			apperrors.ServiceUnavailable(c, apperrors.UploadUnavailable, err.Error())
		default:
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, apperrors.ParseError(err, "upload").Message)
		}
		return
	}

	c.JSON(http.StatusOK, upload)
}
