package domain

// User is a Telegram chat subscribed to order notifications.
type User struct {
	ChatID int64 `json:"chat_id" gorm:"primaryKey"`
}
