package response

import (
	"time"

	"cyberlearn/internal/data/entity"
)

// UserResponse is the public view of a user. The password hash never leaves
// the entity layer.
type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"ten"`
	Email      string            `json:"email"`
	BirthDate  *string           `json:"ngaysinh,omitempty"`
	Role       entity.UserRole   `json:"role"`
	CourseTier entity.CourseTier `json:"course_type,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type DashboardStat struct {
	Title string `json:"title"`
	Value int64  `json:"value"`
}

type DashboardResponse struct {
	Stats []DashboardStat `json:"stats"`
}

func UserToResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		CourseTier: user.CourseTier,
		CreatedAt:  user.CreatedAt,
	}

	if user.BirthDate != nil {
		birth := user.BirthDate.Format("2006-01-02")
		resp.BirthDate = &birth
	}

	return resp
}
