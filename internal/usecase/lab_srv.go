package usecase

import (
	"context"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/data/entity"
	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const labCompletionXP = 100

type LabService interface {
	GetLabs(ctx context.Context, userID uuid.UUID) (*response.LabOverviewResponse, error)
	GetLab(ctx context.Context, userID uuid.UUID, labID int64) (*response.LabResponse, error)
	CreateLab(ctx context.Context, req *request.CreateLabRequest) (*response.LabResponse, error)
	UpdateProgress(ctx context.Context, userID uuid.UUID, labID int64, progress int) error
}

type labService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLabService(repo *repository.Repository, log *zap.Logger) LabService {
	return &labService{
		repo: repo,
		log:  log.With(zap.String("service", "lab")),
	}
}

func (s *labService) GetLabs(ctx context.Context, userID uuid.UUID) (*response.LabOverviewResponse, error) {
	labs, err := s.repo.Lab.FindAllWithProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &response.LabOverviewResponse{
		Labs:      make([]response.LabResponse, len(labs)),
		TotalLabs: len(labs),
	}

	for i, lab := range labs {
		status := "available"
		if lab.Progress >= 100 {
			status = "completed"
			overview.CompletedLabs++
			overview.TotalXP += labCompletionXP
		} else if lab.Progress > 0 {
			status = "in-progress"
		}

		overview.Labs[i] = response.LabResponse{
			ID:          lab.ID,
			Title:       lab.Title,
			Category:    lab.Category,
			Description: lab.Description,
			PDFURL:      lab.PDFURL,
			Progress:    lab.Progress,
			Status:      status,
		}
	}

	return overview, nil
}

func (s *labService) GetLab(ctx context.Context, userID uuid.UUID, labID int64) (*response.LabResponse, error) {
	lab, err := s.repo.Lab.FindByIDWithProgress(ctx, userID, labID)
	if err != nil {
		return nil, err
	}
	if lab == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "lab %d", labID)
	}

	status := "available"
	if lab.Progress >= 100 {
		status = "completed"
	} else if lab.Progress > 0 {
		status = "in-progress"
	}

	return &response.LabResponse{
		ID:          lab.ID,
		Title:       lab.Title,
		Category:    lab.Category,
		Description: lab.Description,
		PDFURL:      lab.PDFURL,
		Progress:    lab.Progress,
		Status:      status,
	}, nil
}

func (s *labService) CreateLab(ctx context.Context, req *request.CreateLabRequest) (*response.LabResponse, error) {
	lab := &entity.Lab{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		PDFURL:      req.PDFURL,
	}

	if err := s.repo.Lab.Create(ctx, lab); err != nil {
		return nil, err
	}

	s.log.Info("Lab created", zap.Int64("lab_id", lab.ID), zap.String("title", lab.Title))

	return &response.LabResponse{
		ID:          lab.ID,
		Title:       lab.Title,
		Category:    lab.Category,
		Description: lab.Description,
		PDFURL:      lab.PDFURL,
		Status:      "available",
	}, nil
}

func (s *labService) UpdateProgress(ctx context.Context, userID uuid.UUID, labID int64, progress int) error {
	lab, err := s.repo.Lab.FindByID(ctx, labID)
	if err != nil {
		return err
	}
	if lab == nil {
		return apperr.Wrap(apperr.ErrNotFound, "lab %d", labID)
	}

	return s.repo.Lab.UpsertProgress(ctx, userID, labID, progress)
}
