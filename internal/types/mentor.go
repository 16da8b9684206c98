package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

// MentorConversation carries no mode state at all; the client usually drops the
// id after rendering a reply, so most mentor turns start a fresh row.
type MentorConversation struct {
  ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
  CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
}

func (MentorConversation) TableName() string {
  return "mentor_conversation"
}

func (c *MentorConversation) BeforeCreate(tx *gorm.DB) error {
  if c.ID == uuid.Nil {
    c.ID = uuid.New()
  }
  return nil
}

type MentorMessage struct {
  ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
  ConversationID  uuid.UUID    `gorm:"type:uuid;index;not null;column:conversation_id" json:"conversation_id"`
  Role            MessageRole  `gorm:"not null;column:role" json:"role"`
  Content         string       `gorm:"not null;column:content" json:"content"`
  CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
}

func (MentorMessage) TableName() string {
  return "mentor_message"
}

func (m *MentorMessage) BeforeCreate(tx *gorm.DB) error {
  if m.ID == uuid.Nil {
    m.ID = uuid.New()
  }
  return nil
}
