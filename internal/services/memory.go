package services

import (
  "context"
  "strings"
  "time"

  "gorm.io/datatypes"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/repos"
  "github.com/yungbote/athena-backend/internal/types"
)

// memoryWindowSize bounds how many messages feed one compaction pass. The
// window is anchored at the START of the conversation.
const memoryWindowSize = 25

// MemoryService folds conversation history into the rolling long-term summary
// and renames the conversation from that summary.
type MemoryService interface {
  Compact(ctx context.Context, convo *types.Conversation) error
}

type memoryService struct {
  conversations  repos.ConversationRepo
  messages       repos.MessageRepo
  ai             AIClient
  log            *logger.Logger
}

func NewMemoryService(
  conversations repos.ConversationRepo,
  messages repos.MessageRepo,
  ai AIClient,
  baseLog *logger.Logger,
) MemoryService {
  svcLog := baseLog.With("service", "MemoryService")
  return &memoryService{
    conversations: conversations,
    messages:      messages,
    ai:            ai,
    log:           svcLog,
  }
}

func (ms *memoryService) Compact(ctx context.Context, convo *types.Conversation) error {
  window, err := ms.messages.ListOldest(ctx, nil, convo.ID, memoryWindowSize)
  if err != nil {
    return err
  }

  aiMessages := make([]AIMessage, 0, len(window)+1)
  aiMessages = append(aiMessages, AIMessage{Role: aiRoleSystem, Content: memorySummaryPrompt})
  for _, m := range window {
    aiMessages = append(aiMessages, AIMessage{Role: string(m.Role), Content: m.Content})
  }

  summaryCompletion, err := ms.ai.Chat(ctx, aiMessages)
  if err != nil {
    return err
  }
  summary := summaryCompletion.Content

  titleCompletion, err := ms.ai.Chat(ctx, []AIMessage{
    {Role: aiRoleUser, Content: buildTitlePrompt(summary)},
  })
  if err != nil {
    return err
  }

  now := time.Now().UTC()
  convo.LongTermMemory = datatypes.NewJSONType(types.LongTermMemory{
    Summary:       summary,
    LastUpdatedAt: &now,
  })
  convo.Title = strings.TrimSpace(titleCompletion.Content)

  ms.log.Info("compacted long-term memory", "conversation_id", convo.ID.String())
  return ms.conversations.Save(ctx, nil, convo)
}
