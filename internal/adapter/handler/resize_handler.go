package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/pixforge/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/pixforge/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/pkg/httputil"
	"github.com/marcos-nsantos/pixforge/internal/usecase/resize"
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

// room for the JSON fields around fileData
const jsonOverhead = 64 << 10

type ResizeHandler struct {
	resizeSvc   ResizeService
	maxBodySize int64
}

// NewResizeHandler caps the JSON body at what an inline file of maxFileSize
// bytes needs once base64 encoded.
func NewResizeHandler(resizeSvc ResizeService, maxFileSize int64) *ResizeHandler {
	if maxFileSize <= 0 {
		maxFileSize = upload.MaxFileSize
	}
	return &ResizeHandler{
		resizeSvc:   resizeSvc,
		maxBodySize: int64(base64.StdEncoding.EncodedLen(int(maxFileSize))) + jsonOverhead,
	}
}

func (h *ResizeHandler) Resize(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodySize)

	var req request.ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.HandleError(c, domain.ErrFileTooLarge)
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.resizeSvc.Resize(c.Request.Context(), resize.ResizeInput{
		FileName:   req.FileName,
		Mode:       entity.ResizeMode(strings.ToLower(strings.TrimSpace(req.ResizeType))),
		Width:      req.Width,
		Height:     req.Height,
		Percentage: req.Percentage,
		Data:       req.FileData,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ResizeResultToResponse(result))
}
