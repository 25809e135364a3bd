package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"TodoKeeper/internal/model"
)

// UserRepository — минимальный контракт доступа к записям пользователей
// для слоя сервиса: поиск по email, поиск по id, создание и полная
// перезапись списка items.
type UserRepository interface {
	// CreateUser создаёт пользователя и присваивает ему id.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail возвращает пользователя по email.
	// Если не найден — gorm.ErrRecordNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID возвращает пользователя по id.
	// Если не найден — gorm.ErrRecordNotFound.
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// SaveItems целиком заменяет колонку items пользователя.
	// Запись уровня документа: кто записал последним, тот и победил.
	SaveItems(ctx context.Context, userID string, items model.ItemList) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Items == nil {
		user.Items = model.ItemList{}
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) SaveItems(ctx context.Context, userID string, items model.ItemList) error {
	if items == nil {
		items = model.ItemList{}
	}
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("items", items)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
