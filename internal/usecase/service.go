package usecase

import (
	"cyberlearn/internal/catalog"
	"cyberlearn/internal/data/repository"
	"cyberlearn/pkg/database"
	"cyberlearn/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Payment PaymentService
	Course  CourseService
	Lab     LabService
	CTF     CTFService
	Chatbot ChatbotService
	Upload  UploadService
}

func NewService(
	db database.PgxIface,
	repo *repository.Repository,
	cat *catalog.Catalog,
	roles *catalog.RoleOrder,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config.Session.ExpiryHours, log),
		User:    NewUserService(repo, log),
		Payment: NewPaymentService(db, repo, cat, roles, log),
		Course:  NewCourseService(repo, log),
		Lab:     NewLabService(repo, log),
		CTF:     NewCTFService(repo, log),
		Chatbot: NewChatbotService(repo, config.Chatbot, log),
		Upload:  NewUploadService(config.Cloudinary, log),
	}
}
