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

type CTFService interface {
	GetChallenges(ctx context.Context, userID uuid.UUID, req *request.CTFListRequest) (*response.CTFOverviewResponse, error)
	GetChallenge(ctx context.Context, userID uuid.UUID, challengeID int64) (*response.CTFDetailResponse, error)
	CreateChallenge(ctx context.Context, req *request.CreateCTFRequest) (*response.CTFChallengeResponse, error)
	UpdateProgress(ctx context.Context, userID uuid.UUID, challengeID int64, progress int) error
	SubmitAnswer(ctx context.Context, userID uuid.UUID, challengeID int64, req *request.SubmitCTFAnswerRequest) error
}

type ctfService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCTFService(repo *repository.Repository, log *zap.Logger) CTFService {
	return &ctfService{
		repo: repo,
		log:  log.With(zap.String("service", "ctf")),
	}
}

// difficulty buckets follow the point value of the challenge.
func difficultyFor(points int) string {
	switch {
	case points >= 300:
		return "Khó"
	case points >= 150:
		return "Trung bình"
	default:
		return "Dễ"
	}
}

func (s *ctfService) GetChallenges(ctx context.Context, userID uuid.UUID, req *request.CTFListRequest) (*response.CTFOverviewResponse, error) {
	challenges, err := s.repo.CTF.FindAllWithProgress(ctx, userID, repository.CTFFilter{
		Search:   req.Search,
		Category: req.Category,
		Status:   req.Status,
	})
	if err != nil {
		return nil, err
	}

	overview := &response.CTFOverviewResponse{
		Challenges:      make([]response.CTFChallengeResponse, len(challenges)),
		TotalChallenges: len(challenges),
	}

	for i, ch := range challenges {
		status := "locked"
		switch {
		case ch.Progress >= 100:
			status = "completed"
			overview.CompletedChallenges++
			overview.TotalPoints += ch.Points
		case ch.Progress > 0:
			status = "available"
		}

		overview.Challenges[i] = response.CTFChallengeResponse{
			ID:          ch.ID,
			Title:       ch.Title,
			Description: ch.Description,
			Category:    ch.Category,
			Difficulty:  difficultyFor(ch.Points),
			Author:      ch.Author,
			Points:      ch.Points,
			Progress:    ch.Progress,
			Status:      status,
		}
	}

	return overview, nil
}

func (s *ctfService) GetChallenge(ctx context.Context, userID uuid.UUID, challengeID int64) (*response.CTFDetailResponse, error) {
	ch, err := s.repo.CTF.FindByIDWithProgress(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "ctf %d", challengeID)
	}

	status := "locked"
	switch {
	case ch.Progress >= 100:
		status = "completed"
	case ch.Progress > 0:
		status = "available"
	}

	return &response.CTFDetailResponse{
		CTFChallengeResponse: response.CTFChallengeResponse{
			ID:          ch.ID,
			Title:       ch.Title,
			Description: ch.Description,
			Category:    ch.Category,
			Difficulty:  difficultyFor(ch.Points),
			Author:      ch.Author,
			Points:      ch.Points,
			Progress:    ch.Progress,
			Status:      status,
		},
		Audience:        ch.Audience,
		HasSubmitted:    ch.AnswerText != nil || ch.AnswerFileURL != nil,
		SubmittedAnswer: ch.AnswerText,
		SubmittedFile:   ch.AnswerFileURL,
	}, nil
}

func (s *ctfService) CreateChallenge(ctx context.Context, req *request.CreateCTFRequest) (*response.CTFChallengeResponse, error) {
	challenge := &entity.CTFChallenge{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Audience:    req.Audience,
		Author:      &req.Author,
		Points:      req.Points,
	}

	if err := s.repo.CTF.Create(ctx, challenge); err != nil {
		return nil, err
	}

	s.log.Info("CTF challenge created", zap.Int64("ctf_id", challenge.ID), zap.String("title", challenge.Title))

	return &response.CTFChallengeResponse{
		ID:          challenge.ID,
		Title:       challenge.Title,
		Description: challenge.Description,
		Category:    challenge.Category,
		Difficulty:  difficultyFor(challenge.Points),
		Author:      challenge.Author,
		Points:      challenge.Points,
		Status:      "locked",
	}, nil
}

func (s *ctfService) UpdateProgress(ctx context.Context, userID uuid.UUID, challengeID int64, progress int) error {
	challenge, err := s.repo.CTF.FindByID(ctx, challengeID)
	if err != nil {
		return err
	}
	if challenge == nil {
		return apperr.Wrap(apperr.ErrNotFound, "ctf %d", challengeID)
	}

	return s.repo.CTF.UpsertProgress(ctx, userID, challengeID, progress)
}

// SubmitAnswer stores the user's answer and marks the challenge solved.
// At least one of the answer text and the file URL must be present.
func (s *ctfService) SubmitAnswer(ctx context.Context, userID uuid.UUID, challengeID int64, req *request.SubmitCTFAnswerRequest) error {
	if req.AnswerText == nil && req.AnswerFileURL == nil {
		return apperr.Wrap(apperr.ErrMissingField, "cần nộp đáp án hoặc file bài làm")
	}

	challenge, err := s.repo.CTF.FindByID(ctx, challengeID)
	if err != nil {
		return err
	}
	if challenge == nil {
		return apperr.Wrap(apperr.ErrNotFound, "ctf %d", challengeID)
	}

	if err := s.repo.CTF.SubmitAnswer(ctx, userID, challengeID, req.AnswerText, req.AnswerFileURL); err != nil {
		return err
	}

	s.log.Info("CTF answer submitted",
		zap.String("user_id", userID.String()),
		zap.Int64("ctf_id", challengeID),
	)

	return nil
}
