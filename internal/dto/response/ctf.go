package response

type CTFChallengeResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	Author      *string `json:"author,omitempty"`
	Points      int     `json:"points"`
	Progress    int     `json:"progress"`
	Status      string  `json:"status"`
}

// CTFDetailResponse is one challenge plus the caller's submission state.
type CTFDetailResponse struct {
	CTFChallengeResponse
	Audience        string  `json:"audience"`
	HasSubmitted    bool    `json:"has_submitted"`
	SubmittedAnswer *string `json:"submitted_answer,omitempty"`
	SubmittedFile   *string `json:"submitted_file,omitempty"`
}

type CTFOverviewResponse struct {
	Challenges          []CTFChallengeResponse `json:"challenges"`
	CompletedChallenges int                    `json:"completed_challenges"`
	TotalChallenges     int                    `json:"total_challenges"`
	TotalPoints         int                    `json:"total_points"`
}
