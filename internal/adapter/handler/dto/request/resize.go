package request

type ResizeRequest struct {
	FileName   string `json:"fileName"`
	ResizeType string `json:"resizeType"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Percentage int    `json:"percentage"`
	FileData   []byte `json:"fileData"`
}

type CleanupRequest struct {
	UploadedFile string `json:"uploadedFile"`
	ResizedFile  string `json:"resizedFile"`
}
