package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

type MessageRole string

const (
  MessageRoleUser      MessageRole = "user"
  MessageRoleAssistant MessageRole = "assistant"
)

// Message is append-only: rows are never updated after creation and replay
// order is strictly created_at ascending.
type Message struct {
  ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
  ConversationID  uuid.UUID    `gorm:"type:uuid;index;not null;column:conversation_id" json:"conversation_id"`
  Role            MessageRole  `gorm:"not null;column:role" json:"role"`
  Content         string       `gorm:"not null;column:content" json:"content"`
  CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
}

func (Message) TableName() string {
  return "message"
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
  if m.ID == uuid.Nil {
    m.ID = uuid.New()
  }
  return nil
}
