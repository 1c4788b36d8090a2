package request

type UploadSignatureRequest struct {
	Folder       string `json:"folder"`
	ResourceType string `json:"resource_type" validate:"omitempty,oneof=image video raw auto"`
}
