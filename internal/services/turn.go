package services

import (
  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/types"
)

// TurnResult is what every mode hands back to its handler: the (possibly
// freshly created) conversation id and the generated reply text.
type TurnResult struct {
  ConversationID  uuid.UUID
  Reply           string
}

type AcademicData struct {
  Institution  string  `json:"institution"`
  Level        string  `json:"level"`
  Board        string  `json:"board"`
  Degree       string  `json:"degree"`
  Major        string  `json:"major"`
}

type Profile struct {
  AcademicData  *AcademicData  `json:"academicData"`
}

func (p *Profile) academicData() AcademicData {
  if p == nil || p.AcademicData == nil {
    return AcademicData{}
  }
  return *p.AcademicData
}

func historyToAIMessages(system string, history []*types.Message) []AIMessage {
  out := make([]AIMessage, 0, len(history)+1)
  out = append(out, AIMessage{Role: aiRoleSystem, Content: system})
  for _, m := range history {
    out = append(out, AIMessage{Role: string(m.Role), Content: m.Content})
  }
  return out
}
