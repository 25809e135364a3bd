package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"TodoKeeper/internal/model"
	"TodoKeeper/internal/repo"
)

// ItemService — операции над списком дел одного пользователя.
//
// Все мутации — read-modify-write с полной перезаписью колонки items,
// без optimistic-lock. Два конкурентных запроса к одному пользователю
// читают одно и то же состояние, и чья запись ляжет последней, та и
// останется. Это осознанно сохранённое поведение исходной системы.
type ItemService struct {
	repo   repo.UserRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.UserRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger}
}

// List возвращает список дел и отображаемое имя пользователя.
func (s *ItemService) List(ctx context.Context, userID string) (model.ItemList, string, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	return user.Items, user.UserName, nil
}

// Append добавляет элемент в конец списка и возвращает обновлённый список.
func (s *ItemService) Append(ctx context.Context, userID string, item model.Item) (model.ItemList, error) {
	if len(item) == 0 {
		return nil, ErrEmptyItem
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := append(user.Items, item)
	if err := s.saveItems(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleDone переключает поле done элемента по позиции.
// Отсутствующее done читается как false и после переключения станет true.
func (s *ItemService) ToggleDone(ctx context.Context, userID string, index int) (model.ItemList, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(user.Items) {
		return nil, ErrIndexOutOfRange
	}
	user.Items[index]["done"] = !user.Items[index].Done()
	if err := s.saveItems(ctx, userID, user.Items); err != nil {
		return nil, err
	}
	return user.Items, nil
}

// Remove удаляет ровно один элемент по позиции; хвост сдвигается на один вниз.
func (s *ItemService) Remove(ctx context.Context, userID string, index int) (model.ItemList, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(user.Items) {
		return nil, ErrIndexOutOfRange
	}
	items := append(user.Items[:index], user.Items[index+1:]...)
	if err := s.saveItems(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// loadUser резолвит id из токена в запись пользователя. Валидный токен
// обязан резолвиться; промах — внутренняя рассогласованность.
func (s *ItemService) loadUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warnw("token subject not found in store", "user_id", userID)
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func (s *ItemService) saveItems(ctx context.Context, userID string, items model.ItemList) error {
	if err := s.repo.SaveItems(ctx, userID, items); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}
