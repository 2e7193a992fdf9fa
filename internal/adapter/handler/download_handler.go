package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/pkg/httputil"
)

const previewCacheControl = "public, max-age=300"

type DownloadHandler struct {
	downloadSvc DownloadService
}

func NewDownloadHandler(downloadSvc DownloadService) *DownloadHandler {
	return &DownloadHandler{downloadSvc: downloadSvc}
}

func (h *DownloadHandler) Download(c *gin.Context) {
	file, err := h.downloadSvc.Download(c.Request.Context(), c.Param("fileName"))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Serve returns a handler for previews of one area, mounted on a wildcard route.
func (h *DownloadHandler) Serve(area entity.Area) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimPrefix(c.Param("path"), "/")

		file, err := h.downloadSvc.Serve(c.Request.Context(), area, name)
		if err != nil {
			httputil.HandleError(c, err)
			return
		}

		c.Header("Cache-Control", previewCacheControl)
		c.Data(http.StatusOK, file.ContentType, file.Data)
	}
}
