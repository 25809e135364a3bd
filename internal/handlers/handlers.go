package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"TodoKeeper/internal/config"
	"TodoKeeper/internal/middleware"
	"TodoKeeper/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	itemHandler := NewItemHandler(itemService, logger)

	// Public routes
	r.Post("/api/signup", userHandler.Signup)
	r.Post("/api/login", userHandler.Login)
	r.Get("/api/ping", pingHandler(db, logger))

	// Item routes за строгим auth-гейтом
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(config.AuthSecret))
		pr.Get("/api/items", itemHandler.GetItems)
		pr.Post("/api/item", itemHandler.AddItem)
		pr.Put("/api/item/{index}", itemHandler.ToggleItem)
		pr.Delete("/api/item/{index}", itemHandler.DeleteItem)
	})

	return &Handler{Router: r}
}

// pingHandler проверяет доступность хранилища.
func pingHandler(db *gorm.DB, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			logger.Errorw("ping: store unavailable", "error", err)
			http.Error(w, "store unavailable", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
