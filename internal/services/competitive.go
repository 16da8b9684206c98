package services

import (
  "context"

  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/repos"
  "github.com/yungbote/athena-backend/internal/types"
)

const competitiveHistoryWindow = 10

type CompetitiveTurnInput struct {
  ConversationID  *uuid.UUID
  UserMessage     string
}

type CompetitiveService interface {
  HandleTurn(ctx context.Context, in CompetitiveTurnInput) (*TurnResult, error)
}

type competitiveService struct {
  sessions  SessionService
  messages  repos.MessageRepo
  ai        AIClient
  log       *logger.Logger
}

func NewCompetitiveService(
  sessions SessionService,
  messages repos.MessageRepo,
  ai AIClient,
  baseLog *logger.Logger,
) CompetitiveService {
  svcLog := baseLog.With("service", "CompetitiveService")
  return &competitiveService{
    sessions: sessions,
    messages: messages,
    ai:       ai,
    log:      svcLog,
  }
}

func (cs *competitiveService) HandleTurn(ctx context.Context, in CompetitiveTurnInput) (*TurnResult, error) {
  convo, release, err := cs.sessions.Begin(ctx, in.ConversationID, ConversationDefaults{
    Title:             "Competitive Prep Session",
    CompetitiveActive: true,
  })
  if err != nil {
    return nil, err
  }
  defer release()

  if _, err := cs.messages.Create(ctx, nil, &types.Message{
    ConversationID: convo.ID,
    Role:           types.MessageRoleUser,
    Content:        in.UserMessage,
  }); err != nil {
    return nil, err
  }

  history, err := cs.messages.ListRecent(ctx, nil, convo.ID, competitiveHistoryWindow)
  if err != nil {
    return nil, err
  }
  completion, err := cs.ai.Chat(ctx, historyToAIMessages(competitiveSystemPrompt, history))
  if err != nil {
    return nil, err
  }

  if _, err := cs.messages.Create(ctx, nil, &types.Message{
    ConversationID: convo.ID,
    Role:           types.MessageRoleAssistant,
    Content:        completion.Content,
  }); err != nil {
    return nil, err
  }
  return &TurnResult{ConversationID: convo.ID, Reply: completion.Content}, nil
}
