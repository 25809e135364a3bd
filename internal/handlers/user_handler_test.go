package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"TodoKeeper/internal/auth"
	"TodoKeeper/internal/model"
)

func TestUser_Signup(t *testing.T) {
	m := new(mockUserRepo)
	router := newTestRouter(t, m)

	t.Run("created", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@x.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: "u-42", Email: "john@x.com", UserName: "John"}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "john@x.com" && u.PasswordHash != ""
		})).Return(created, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"email":"john@x.com","userName":"John","password":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		// тело ответа — токен, subject которого равен id созданного пользователя
		uid, err := auth.ParseUserID(strings.TrimSpace(rr.Body.String()), testSecret)
		assert.NoError(t, err)
		assert.Equal(t, "u-42", uid)
		m.AssertExpectations(t)
	})

	t.Run("duplicate email is 401", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@x.com").Return(&model.User{ID: "u-1", Email: "john@x.com"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"email":"john@x.com","userName":"John","password":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		m.AssertExpectations(t)
	})

	t.Run("missing password is 400", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@x.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"email":"john@x.com","userName":"John"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid email is 400", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "nope").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"email":"nope","userName":"John","password":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("broken json is 400", func(t *testing.T) {
		m.ExpectedCalls = nil

		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUser_Login(t *testing.T) {
	m := new(mockUserRepo)
	router := newTestRouter(t, m)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@x.com").Return(&model.User{ID: "u-2", Email: "alice@x.com", PasswordHash: string(hash)}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"alice@x.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		uid, err := auth.ParseUserID(strings.TrimSpace(rr.Body.String()), testSecret)
		assert.NoError(t, err)
		assert.Equal(t, "u-2", uid)
		m.AssertExpectations(t)
	})

	t.Run("wrong password is 400", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@x.com").Return(&model.User{ID: "u-2", Email: "alice@x.com", PasswordHash: string(hash)}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"alice@x.com","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		m.AssertExpectations(t)
	})

	t.Run("unknown email is 400 too", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "ghost@x.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"ghost@x.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		// неизвестный email и неверный пароль снаружи не различаются
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		m.AssertExpectations(t)
	})
}
