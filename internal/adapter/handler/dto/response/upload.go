package response

import (
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

type UploadResponse struct {
	Success      bool   `json:"success"`
	FileID       string `json:"fileId"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	FileType     string `json:"fileType"`
	FilePath     string `json:"filePath,omitempty"`
	FileData     []byte `json:"fileData,omitempty"`
}

func UploadResultToResponse(result *upload.UploadResult) UploadResponse {
	f := result.File
	return UploadResponse{
		Success:      true,
		FileID:       f.ID.String(),
		FileName:     f.Name,
		OriginalName: f.OriginalName,
		FileType:     f.MediaType,
		FilePath:     f.Path,
		FileData:     f.Data,
	}
}
