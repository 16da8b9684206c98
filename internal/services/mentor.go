package services

import (
  "context"

  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/repos"
  "github.com/yungbote/athena-backend/internal/types"
)

const mentorHistoryWindow = 10

type MentorTurnInput struct {
  ConversationID  *uuid.UUID
  UserMessage     string
}

// MentorService keeps its own lightweight conversation store, fully separate
// from the main conversation table. No phases, no memory compaction.
type MentorService interface {
  HandleTurn(ctx context.Context, in MentorTurnInput) (*TurnResult, error)
}

type mentorService struct {
  sessions  SessionService
  messages  repos.MentorMessageRepo
  ai        AIClient
  log       *logger.Logger
}

func NewMentorService(
  sessions SessionService,
  messages repos.MentorMessageRepo,
  ai AIClient,
  baseLog *logger.Logger,
) MentorService {
  svcLog := baseLog.With("service", "MentorService")
  return &mentorService{
    sessions: sessions,
    messages: messages,
    ai:       ai,
    log:      svcLog,
  }
}

func (ms *mentorService) HandleTurn(ctx context.Context, in MentorTurnInput) (*TurnResult, error) {
  convo, release, err := ms.sessions.BeginMentor(ctx, in.ConversationID)
  if err != nil {
    return nil, err
  }
  defer release()

  if _, err := ms.messages.Create(ctx, nil, &types.MentorMessage{
    ConversationID: convo.ID,
    Role:           types.MessageRoleUser,
    Content:        in.UserMessage,
  }); err != nil {
    return nil, err
  }

  history, err := ms.messages.ListRecent(ctx, nil, convo.ID, mentorHistoryWindow)
  if err != nil {
    return nil, err
  }

  aiMessages := make([]AIMessage, 0, len(history)+1)
  aiMessages = append(aiMessages, AIMessage{Role: aiRoleSystem, Content: mentorSystemPrompt})
  for _, m := range history {
    aiMessages = append(aiMessages, AIMessage{Role: string(m.Role), Content: m.Content})
  }

  completion, err := ms.ai.Chat(ctx, aiMessages)
  if err != nil {
    return nil, err
  }

  if _, err := ms.messages.Create(ctx, nil, &types.MentorMessage{
    ConversationID: convo.ID,
    Role:           types.MessageRoleAssistant,
    Content:        completion.Content,
  }); err != nil {
    return nil, err
  }
  return &TurnResult{ConversationID: convo.ID, Reply: completion.Content}, nil
}
