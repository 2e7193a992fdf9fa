package response

import (
	"github.com/marcos-nsantos/pixforge/internal/usecase/resize"
)

type ResizeResponse struct {
	Success         bool   `json:"success"`
	ResizedFileName string `json:"resizedFileName"`
	OriginalName    string `json:"originalName"`
	ResizedPath     string `json:"resizedPath,omitempty"`
	ResizedData     []byte `json:"resizedData,omitempty"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
}

func ResizeResultToResponse(result *resize.ResizeResult) ResizeResponse {
	return ResizeResponse{
		Success:         true,
		ResizedFileName: result.File.Name,
		OriginalName:    result.OriginalName,
		ResizedPath:     result.File.Path,
		ResizedData:     result.File.Data,
		Width:           result.Width,
		Height:          result.Height,
	}
}
