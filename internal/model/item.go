package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Item — произвольный объект клиента. Фиксированной схемы нет: единственное
// соглашение — булево поле done, которое переключает PUT /api/item/{index}.
// Все остальные поля прозрачно сохраняются как есть.
type Item map[string]any

// Done возвращает текущее значение поля done; отсутствие поля читается как false.
func (it Item) Done() bool {
	v, ok := it["done"].(bool)
	return ok && v
}

// ItemList — упорядоченный список Item. Индекс в списке — адрес элемента
// для операций toggle/remove.
type ItemList []Item

// Value сериализует список в JSON для хранения одной текстовой колонкой.
func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ItemList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	return string(b), nil
}

// Scan читает JSON-колонку обратно в список.
func (l *ItemList) Scan(src any) error {
	if src == nil {
		*l = ItemList{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported items column type %T", src)
	}
	if len(b) == 0 {
		*l = ItemList{}
		return nil
	}
	if err := json.Unmarshal(b, l); err != nil {
		return fmt.Errorf("unmarshal items: %w", err)
	}
	return nil
}
