package services

import (
  "context"

  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/repos"
  "github.com/yungbote/athena-backend/internal/types"
)

const (
  assignmentHistoryWindow  = 50
  compactionInterval       = 15
)

type AssignmentTurnInput struct {
  ConversationID  *uuid.UUID
  UserMessage     string
}

// AssignmentService is the only mode that feeds long-term memory: every
// compactionInterval messages it folds older history into a rolling summary
// that is prepended to the standing instruction.
type AssignmentService interface {
  HandleTurn(ctx context.Context, in AssignmentTurnInput) (*TurnResult, error)
}

type assignmentService struct {
  sessions  SessionService
  messages  repos.MessageRepo
  memory    MemoryService
  ai        AIClient
  log       *logger.Logger
}

func NewAssignmentService(
  sessions SessionService,
  messages repos.MessageRepo,
  memory MemoryService,
  ai AIClient,
  baseLog *logger.Logger,
) AssignmentService {
  svcLog := baseLog.With("service", "AssignmentService")
  return &assignmentService{
    sessions: sessions,
    messages: messages,
    memory:   memory,
    ai:       ai,
    log:      svcLog,
  }
}

func (as *assignmentService) HandleTurn(ctx context.Context, in AssignmentTurnInput) (*TurnResult, error) {
  convo, release, err := as.sessions.Begin(ctx, in.ConversationID, ConversationDefaults{
    Title: "Assignment / Project Session",
  })
  if err != nil {
    return nil, err
  }
  defer release()

  if _, err := as.messages.Create(ctx, nil, &types.Message{
    ConversationID: convo.ID,
    Role:           types.MessageRoleUser,
    Content:        in.UserMessage,
  }); err != nil {
    return nil, err
  }

  history, err := as.messages.ListRecent(ctx, nil, convo.ID, assignmentHistoryWindow)
  if err != nil {
    return nil, err
  }

  system := buildAssignmentSystemPrompt(convo.LongTermMemory.Data().Summary)
  completion, err := as.ai.Chat(ctx, historyToAIMessages(system, history))
  if err != nil {
    return nil, err
  }

  if _, err := as.messages.Create(ctx, nil, &types.Message{
    ConversationID: convo.ID,
    Role:           types.MessageRoleAssistant,
    Content:        completion.Content,
  }); err != nil {
    return nil, err
  }

  count, err := as.messages.CountByConversation(ctx, nil, convo.ID)
  if err != nil {
    return nil, err
  }
  if count%compactionInterval == 0 {
    if err := as.memory.Compact(ctx, convo); err != nil {
      return nil, err
    }
  }

  return &TurnResult{ConversationID: convo.ID, Reply: completion.Content}, nil
}
