package request

type CreateLabRequest struct {
	Title       string  `json:"ten" validate:"required,max=200"`
	Category    string  `json:"loai" validate:"required,max=50"`
	Description *string `json:"mota,omitempty"`
	PDFURL      *string `json:"pdf_url,omitempty" validate:"omitempty,url"`
}

type UpdateLabProgressRequest struct {
	Progress int `json:"tiendo" validate:"min=0,max=100"`
}
