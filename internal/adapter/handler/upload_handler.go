package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/pixforge/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/pkg/httputil"
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

// room for the multipart envelope around the file part
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploadSvc   UploadService
	maxFileSize int64
}

func NewUploadHandler(uploadSvc UploadService, maxFileSize int64) *UploadHandler {
	if maxFileSize <= 0 {
		maxFileSize = upload.MaxFileSize
	}
	return &UploadHandler{uploadSvc: uploadSvc, maxFileSize: maxFileSize}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.HandleError(c, domain.ErrFileTooLarge)
			return
		}
		httputil.HandleError(c, domain.ErrNoFileProvided)
		return
	}
	defer file.Close()

	result, err := h.uploadSvc.Upload(c.Request.Context(), upload.UploadInput{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.UploadResultToResponse(result))
}
