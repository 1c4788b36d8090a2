package repository

import (
	"cyberlearn/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Payment PaymentRepository
	Course  CourseRepository
	Lab     LabRepository
	CTF     CTFRepository
	Chatbot ChatbotRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Payment: NewPaymentRepository(db, log),
		Course:  NewCourseRepository(db, log),
		Lab:     NewLabRepository(db, log),
		CTF:     NewCTFRepository(db, log),
		Chatbot: NewChatbotRepository(db, log),
	}
}
