package response

type UploadSignatureResponse struct {
	Signature    string `json:"signature"`
	Timestamp    int64  `json:"timestamp"`
	Folder       string `json:"folder"`
	ResourceType string `json:"resource_type"`
	APIKey       string `json:"api_key"`
	CloudName    string `json:"cloud_name"`
}
