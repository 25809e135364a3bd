package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"TodoKeeper/internal/auth"
	"TodoKeeper/internal/config"
	"TodoKeeper/internal/handlers"
	"TodoKeeper/internal/middleware"
	"TodoKeeper/internal/model"
	"TodoKeeper/internal/repo"
	"TodoKeeper/internal/service"
)

const testSecret = "test-secret"

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SaveItems(ctx context.Context, userID string, items model.ItemList) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// newTestDB — in-memory SQLite для ping-хендлера и сквозных сценариев
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// newTestRouter собирает роутер поверх переданного репозитория
func newTestRouter(t *testing.T, ur repo.UserRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret, BcryptCost: bcrypt.MinCost}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur, cfg.AuthSecret, cfg.BcryptCost)
	itemSvc := service.NewItemService(ur, logger)

	h := handlers.NewHandler(userSvc, itemSvc, newTestDB(t), logger, cfg)
	return h.Router
}

// addAuthHeader выписывает валидный токен и кладёт его в заголовок запроса
func addAuthHeader(t *testing.T, req *http.Request, userID, secret string) {
	t.Helper()
	token, err := auth.BuildJWTString(userID, secret, auth.TokenTTL)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}
	req.Header.Set(middleware.TokenHeader, token)
}
