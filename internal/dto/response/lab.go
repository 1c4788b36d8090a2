package response

type LabResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	PDFURL      *string `json:"pdf_url,omitempty"`
	Progress    int     `json:"progress"`
	Status      string  `json:"status"`
}

type LabOverviewResponse struct {
	Labs          []LabResponse `json:"labs"`
	CompletedLabs int           `json:"completed_labs"`
	TotalLabs     int           `json:"total_labs"`
	TotalXP       int           `json:"total_xp"`
}
