package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// Conversation is one long-lived tutoring dialogue. The per-mode state structs
// have no identity of their own; they live inside the row as typed JSON columns.
type Conversation struct {
  ID                uuid.UUID                             `gorm:"type:uuid;primaryKey" json:"id"`
  Title             string                                `gorm:"not null;column:title" json:"title"`
  LongTermMemory    datatypes.JSONType[LongTermMemory]    `gorm:"column:long_term_memory" json:"long_term_memory"`
  StudyState        datatypes.JSONType[StudyState]        `gorm:"column:study_state" json:"study_state"`
  CompetitiveState  datatypes.JSONType[CompetitiveState]  `gorm:"column:competitive_state" json:"competitive_state"`
  ExamState         datatypes.JSONType[ExamState]         `gorm:"column:exam_state" json:"exam_state"`
  CreatedAt         time.Time                             `gorm:"not null" json:"created_at"`
  UpdatedAt         time.Time                             `gorm:"not null" json:"updated_at"`
}

func (Conversation) TableName() string {
  return "conversation"
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
  if c.ID == uuid.Nil {
    c.ID = uuid.New()
  }
  return nil
}

const DefaultConversationTitle = "Study Session"

type LongTermMemory struct {
  Summary       string     `json:"summary"`
  LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
}

type SyllabusSource string

const (
  SyllabusSourceUpload SyllabusSource = "UPLOAD"
  SyllabusSourceFetch  SyllabusSource = "FETCH"
)
