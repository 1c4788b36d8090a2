package entity

type CTFChallenge struct {
	ID          int64   `db:"id"`
	Title       string  `db:"ten"`
	Description *string `db:"mota"`
	Category    string  `db:"loaictf"`
	Audience    string  `db:"choai"`
	Author      *string `db:"tacgia"`
	Points      int     `db:"diem"`
}

// CTFProgress joins a challenge with one user's progress percentage and, when
// the user has submitted, their answer. A submitted answer pins progress to 100.
type CTFProgress struct {
	CTFChallenge
	Progress      int
	AnswerText    *string `db:"dap_an"`
	AnswerFileURL *string `db:"dap_an_file"`
}
