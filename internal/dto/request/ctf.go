package request

type CTFListRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Status   string `json:"status" validate:"omitempty,oneof=completed available locked"`
}

type CreateCTFRequest struct {
	Title       string  `json:"ten" validate:"required,max=200"`
	Description *string `json:"mota,omitempty"`
	Category    string  `json:"loaictf" validate:"required,max=50"`
	Audience    string  `json:"choai" validate:"required,max=50"`
	Author      string  `json:"tacgia" validate:"required,max=100"`
	Points      int     `json:"diem" validate:"min=0"`
}

type UpdateCTFProgressRequest struct {
	Progress int `json:"tiendo" validate:"min=0,max=100"`
}

// SubmitCTFAnswerRequest carries a text answer, a file URL, or both. The
// service rejects submissions with neither.
type SubmitCTFAnswerRequest struct {
	AnswerText    *string `json:"answerText,omitempty"`
	AnswerFileURL *string `json:"answerFileUrl,omitempty" validate:"omitempty,url"`
}
