package wire

import (
	"net/http"

	"cyberlearn/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func authRoutes(r chi.Router, h *adaptor.Handler, authMW func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMW)
			r.Post("/logout", h.Auth.Logout)
		})
	})
}

func userRoutes(r chi.Router, h *adaptor.Handler) {
	r.Route("/user", func(r chi.Router) {
		r.Get("/profile", h.User.Profile)
		r.Get("/dashboard", h.User.Dashboard)
	})
}

func paymentRoutes(r chi.Router, h *adaptor.Handler) {
	r.Route("/payment", func(r chi.Router) {
		r.Post("/", h.Payment.Create)
		r.Get("/", h.Payment.List)
		r.Get("/{id}", h.Payment.GetByID)
	})
}

func courseRoutes(r chi.Router, h *adaptor.Handler) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.Course.List)
		r.Get("/{id}", h.Course.Detail)
		r.Post("/enroll", h.Course.Enroll)
		r.Post("/lessons/complete", h.Course.CompleteLesson)
	})
}

func labRoutes(r chi.Router, h *adaptor.Handler) {
	r.Route("/labs", func(r chi.Router) {
		r.Get("/", h.Lab.List)
		r.Get("/{id}", h.Lab.Get)
		r.Put("/{id}/progress", h.Lab.UpdateProgress)
	})
}

func ctfRoutes(r chi.Router, h *adaptor.Handler) {
	r.Route("/ctf", func(r chi.Router) {
		r.Get("/", h.CTF.List)
		r.Get("/{id}", h.CTF.Get)
		r.Post("/{id}/submit", h.CTF.Submit)
		r.Put("/{id}/progress", h.CTF.UpdateProgress)
	})
}

func chatbotRoutes(r chi.Router, h *adaptor.Handler) {
	r.Route("/chatbot", func(r chi.Router) {
		r.Post("/", h.Chatbot.Chat)
		r.Get("/topics", h.Chatbot.Topics)
		r.Get("/topics/{id}/questions", h.Chatbot.Questions)
	})
}

func uploadRoutes(r chi.Router, h *adaptor.Handler) {
	r.Route("/upload", func(r chi.Router) {
		r.Post("/signature", h.Upload.Signature)
	})
}

// adminRoutes are mounted under /api/admin behind the admin middleware.
func adminRoutes(r chi.Router, h *adaptor.Handler) {
	r.Get("/users", h.User.List)
	r.Delete("/users/{id}", h.User.Delete)

	r.Put("/payment/{id}/approve", h.Payment.Approve)
	r.Put("/payment/{id}/reject", h.Payment.Reject)

	r.Post("/labs", h.Lab.Create)
	r.Post("/ctf", h.CTF.Create)
}
