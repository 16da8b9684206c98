package services

import (
  "context"
  "regexp"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/repos"
  "github.com/yungbote/athena-backend/internal/types"
)

const examHistoryWindow = 20

var examFetchIntentRe = regexp.MustCompile(`(?i)fetch|get|generate|you do|don'?t have|create|make syllabus`)

type ExamTurnInput struct {
  ConversationID  *uuid.UUID
  UserMessage     string
  Profile         *Profile
  FileUploaded    bool
}

// ExamService is mostly a free-chat passthrough with a standing instruction;
// the only hard-coded branches are file upload and explicit syllabus-fetch
// intent.
type ExamService interface {
  HandleTurn(ctx context.Context, in ExamTurnInput) (*TurnResult, error)
}

type examService struct {
  sessions       SessionService
  conversations  repos.ConversationRepo
  messages       repos.MessageRepo
  ai             AIClient
  log            *logger.Logger
}

func NewExamService(
  sessions SessionService,
  conversations repos.ConversationRepo,
  messages repos.MessageRepo,
  ai AIClient,
  baseLog *logger.Logger,
) ExamService {
  svcLog := baseLog.With("service", "ExamService")
  return &examService{
    sessions:      sessions,
    conversations: conversations,
    messages:      messages,
    ai:            ai,
    log:           svcLog,
  }
}

func (es *examService) HandleTurn(ctx context.Context, in ExamTurnInput) (*TurnResult, error) {
  convo, release, err := es.sessions.Begin(ctx, in.ConversationID, ConversationDefaults{
    Title:      "Exam Preparation",
    ExamActive: true,
  })
  if err != nil {
    return nil, err
  }
  defer release()

  state := convo.ExamState.Data()
  now := time.Now().UTC()
  state.LastActivityAt = &now

  if strings.TrimSpace(in.UserMessage) != "" {
    if _, err := es.messages.Create(ctx, nil, &types.Message{
      ConversationID: convo.ID,
      Role:           types.MessageRoleUser,
      Content:        in.UserMessage,
    }); err != nil {
      return nil, err
    }
  }

  // Upload short-circuits the turn: no gateway call, fixed acknowledgement.
  if in.FileUploaded {
    state.SyllabusSource = types.SyllabusSourceUpload
    state.Phase = types.ExamPhaseSyllabusPresent
    if err := es.saveState(ctx, convo, &state); err != nil {
      return nil, err
    }
    return &TurnResult{ConversationID: convo.ID, Reply: examUploadAck}, nil
  }

  if examFetchIntentRe.MatchString(in.UserMessage) && state.Subject != "" {
    completion, err := es.ai.Chat(ctx, []AIMessage{
      {Role: aiRoleUser, Content: buildExamFetchPrompt(state, in.Profile.academicData())},
    })
    if err != nil {
      return nil, err
    }
    state.SyllabusText = completion.Content
    state.SyllabusSource = types.SyllabusSourceFetch
    state.Phase = types.ExamPhaseSyllabusPresent
    if err := es.saveState(ctx, convo, &state); err != nil {
      return nil, err
    }
    return &TurnResult{ConversationID: convo.ID, Reply: examSyllabusFetchedReply(state.SyllabusText)}, nil
  }

  if err := es.saveState(ctx, convo, &state); err != nil {
    return nil, err
  }

  history, err := es.messages.ListRecent(ctx, nil, convo.ID, examHistoryWindow)
  if err != nil {
    return nil, err
  }
  completion, err := es.ai.Chat(ctx, historyToAIMessages(examSystemPrompt, history))
  if err != nil {
    return nil, err
  }

  if _, err := es.messages.Create(ctx, nil, &types.Message{
    ConversationID: convo.ID,
    Role:           types.MessageRoleAssistant,
    Content:        completion.Content,
  }); err != nil {
    return nil, err
  }
  return &TurnResult{ConversationID: convo.ID, Reply: completion.Content}, nil
}

func (es *examService) saveState(ctx context.Context, convo *types.Conversation, state *types.ExamState) error {
  convo.ExamState = datatypes.NewJSONType(*state)
  return es.conversations.Save(ctx, nil, convo)
}
