package usecase

import (
	"context"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*response.DashboardResponse, error)

	// Admin endpoints
	ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user %s", userID.String())
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetDashboard(ctx context.Context, userID uuid.UUID) (*response.DashboardResponse, error) {
	stats, err := s.repo.User.DashboardStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &response.DashboardResponse{
		Stats: []response.DashboardStat{
			{Title: "Khóa học đang học", Value: stats.ActiveCourses},
			{Title: "Bài học đã hoàn thành", Value: stats.CompletedLessons},
			{Title: "Lab đã hoàn thành", Value: stats.CompletedLabs},
			{Title: "Bài kiểm tra đã làm", Value: stats.CompletedTests},
		},
	}, nil
}

func (s *userService) ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.User.Count(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.Limit(), total), nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.Wrap(apperr.ErrNotFound, "user %s", id.String())
	}

	if err := s.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
		return err
	}

	return s.repo.User.Delete(ctx, id)
}
