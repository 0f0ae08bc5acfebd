package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Chat is one turn of the conversation: the user's request paired with the
// generated HTML it produced. Rows are written once and never updated.
type Chat struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserId    string    `gorm:"type:varchar(36);index" json:"userId"`
	Message   string    `gorm:"type:text" json:"message"`
	Response  string    `gorm:"type:text" json:"response"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type ChatStore struct {
	db *gorm.DB
}

func NewChatStore(db *gorm.DB) *ChatStore {
	return &ChatStore{db: db}
}

func (s *ChatStore) Create(chat *Chat) error {
	if err := s.db.Create(chat).Error; err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

// ListByUser returns every turn for the user, newest first. A user with no
// history gets an empty slice, not nil, so the JSON encoding stays an array.
func (s *ChatStore) ListByUser(userId string) ([]Chat, error) {
	chats := make([]Chat, 0)
	err := s.db.Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	return chats, nil
}

func (s *ChatStore) CountSince(t time.Time) (int64, error) {
	var count int64
	if err := s.db.Model(&Chat{}).Where("created_at >= ?", t).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("database query failed: %w", err)
	}
	return count, nil
}
