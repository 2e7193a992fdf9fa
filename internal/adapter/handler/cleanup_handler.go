package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/pixforge/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/pixforge/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/pixforge/internal/pkg/httputil"
	"github.com/marcos-nsantos/pixforge/internal/usecase/cleanup"
)

type CleanupHandler struct {
	cleanupSvc CleanupService
}

func NewCleanupHandler(cleanupSvc CleanupService) *CleanupHandler {
	return &CleanupHandler{cleanupSvc: cleanupSvc}
}

// Cleanup accepts an optional body naming files to delete. A missing or
// unparsable body means a full sweep. Files that fail to delete are left to
// later sweeps and never fail the request.
func (h *CleanupHandler) Cleanup(c *gin.Context) {
	var req request.CleanupRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			req = request.CleanupRequest{}
		}
	}

	h.cleanupSvc.Cleanup(c.Request.Context(), cleanup.CleanupInput{
		UploadedFile: req.UploadedFile,
		ResizedFile:  req.ResizedFile,
	})

	httputil.OK(c, response.CleanupResponse{
		Success: true,
		Message: "Cleanup completed successfully",
	})
}
