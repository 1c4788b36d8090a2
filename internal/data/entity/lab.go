package entity

type Lab struct {
	ID          int64   `db:"id"`
	Title       string  `db:"ten"`
	Category    string  `db:"loai"`
	Description *string `db:"mota"`
	PDFURL      *string `db:"pdf_url"`
}

// LabProgress joins a lab with one user's progress percentage (0-100,
// 0 when the user never opened it).
type LabProgress struct {
	Lab
	Progress int
}
