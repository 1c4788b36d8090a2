// Package wire assembles the application graph: repositories, services,
// handlers and the chi router.
package wire

import (
	"net/http"

	"cyberlearn/internal/adaptor"
	"cyberlearn/internal/catalog"
	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/usecase"
	"cyberlearn/pkg/database"
	"cyberlearn/pkg/middleware"
	"cyberlearn/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func Setup(config *utils.Config, db database.PgxIface, log *zap.Logger) http.Handler {
	repo := repository.NewRepository(db, log)

	// Built once at startup and shared read-only from here on.
	cat := catalog.Default()
	roles := catalog.DefaultRoleOrder()

	service := usecase.NewService(db, repo, cat, roles, config, log)
	handler := adaptor.NewHandler(service, log)

	authMW := middleware.AuthSession(repo.Session, repo.User, log)
	adminMW := middleware.Admin(log)

	r := chi.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS())

	r.Route("/api", func(r chi.Router) {
		authRoutes(r, handler, authMW)

		r.Group(func(r chi.Router) {
			r.Use(authMW)

			userRoutes(r, handler)
			paymentRoutes(r, handler)
			courseRoutes(r, handler)
			labRoutes(r, handler)
			ctfRoutes(r, handler)
			chatbotRoutes(r, handler)
			uploadRoutes(r, handler)

			r.Route("/admin", func(r chi.Router) {
				r.Use(adminMW)
				adminRoutes(r, handler)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.Ping(req.Context()); err != nil {
			utils.ResponseInternalError(w, "database unreachable")
			return
		}
		utils.ResponseSuccess(w, "ok", nil)
	})

	return r
}
