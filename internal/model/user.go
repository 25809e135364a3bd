package model

// User — серверная модель аккаунта со списком дел.
// Items хранится одной JSON-колонкой: запись пользователя перезаписывается
// целиком, как один документ.
type User struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Email    string `gorm:"not null;uniqueIndex" json:"email"`
	UserName string `gorm:"not null" json:"userName"`

	// PasswordHash — bcrypt-хеш, в JSON не отдаётся никогда.
	PasswordHash string `gorm:"not null" json:"-"`

	Items ItemList `gorm:"type:text" json:"items"`
}
