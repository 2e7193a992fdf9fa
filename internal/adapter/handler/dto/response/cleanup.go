package response

type CleanupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
