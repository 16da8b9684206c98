package services

import (
  "context"
  "strings"

  "github.com/google/uuid"
  "gorm.io/datatypes"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/repos"
  "github.com/yungbote/athena-backend/internal/types"
)

type StudyTurnInput struct {
  ConversationID  *uuid.UUID
  UserMessage     string
  Profile         *Profile
}

// StudyService runs the guided study flow: greet, capture a subject, obtain
// and lock a syllabus, then cycle each unit through teaching steps and
// question batches.
type StudyService interface {
  HandleTurn(ctx context.Context, in StudyTurnInput) (*TurnResult, error)
}

type studyService struct {
  sessions       SessionService
  conversations  repos.ConversationRepo
  messages       repos.MessageRepo
  ai             AIClient
  log            *logger.Logger
}

func NewStudyService(
  sessions SessionService,
  conversations repos.ConversationRepo,
  messages repos.MessageRepo,
  ai AIClient,
  baseLog *logger.Logger,
) StudyService {
  svcLog := baseLog.With("service", "StudyService")
  return &studyService{
    sessions:      sessions,
    conversations: conversations,
    messages:      messages,
    ai:            ai,
    log:           svcLog,
  }
}

func (ss *studyService) HandleTurn(ctx context.Context, in StudyTurnInput) (*TurnResult, error) {
  convo, release, err := ss.sessions.Begin(ctx, in.ConversationID, ConversationDefaults{})
  if err != nil {
    return nil, err
  }
  defer release()

  msg := strings.TrimSpace(in.UserMessage)
  upper := strings.ToUpper(msg)
  state := convo.StudyState.Data()

  if _, err := ss.messages.Create(ctx, nil, &types.Message{
    ConversationID: convo.ID,
    Role:           types.MessageRoleUser,
    Content:        in.UserMessage,
  }); err != nil {
    return nil, err
  }

  var reply string
  switch state.Phase {
  case types.StudyPhaseGreet:
    reply, err = ss.stepGreet(ctx, convo, &state)
  case types.StudyPhaseAskSubject:
    reply, err = ss.stepAskSubject(ctx, convo, &state, msg)
  case types.StudyPhaseAskSyllabusSource:
    reply, err = ss.stepAskSyllabusSource(ctx, convo, &state, upper, in.Profile.academicData())
  case types.StudyPhaseSyllabusReady:
    reply, err = ss.stepSyllabusReady(ctx, convo, &state, upper)
  case types.StudyPhaseTeaching:
    reply, err = ss.stepTeaching(ctx, convo, &state)
  case types.StudyPhaseQuestionMode:
    reply, err = ss.stepQuestionMode(ctx, convo, &state, upper)
  default:
    // Unknown phase in a stored row; restart the flow rather than wedge.
    ss.log.Warn("conversation in unknown study phase, resetting", "conversation_id", convo.ID.String(), "phase", string(state.Phase))
    state = types.DefaultStudyState()
    reply, err = ss.stepGreet(ctx, convo, &state)
  }
  if err != nil {
    return nil, err
  }

  if _, err := ss.messages.Create(ctx, nil, &types.Message{
    ConversationID: convo.ID,
    Role:           types.MessageRoleAssistant,
    Content:        reply,
  }); err != nil {
    return nil, err
  }

  return &TurnResult{ConversationID: convo.ID, Reply: reply}, nil
}

func (ss *studyService) stepGreet(ctx context.Context, convo *types.Conversation, state *types.StudyState) (string, error) {
  state.Phase = types.StudyPhaseAskSubject
  if err := ss.saveState(ctx, convo, state); err != nil {
    return "", err
  }
  return studyGreeting, nil
}

func (ss *studyService) stepAskSubject(ctx context.Context, convo *types.Conversation, state *types.StudyState, msg string) (string, error) {
  state.Subject = ExtractSubject(msg)
  state.Phase = types.StudyPhaseAskSyllabusSource
  if err := ss.saveState(ctx, convo, state); err != nil {
    return "", err
  }
  return studySubjectReply(state.Subject), nil
}

func (ss *studyService) stepAskSyllabusSource(ctx context.Context, convo *types.Conversation, state *types.StudyState, upper string, profile AcademicData) (string, error) {
  switch {
  case strings.HasPrefix(upper, "UPLOAD"):
    state.SyllabusSource = types.SyllabusSourceUpload
    state.SyllabusText = syllabusUploadPlaceholder
    state.Phase = types.StudyPhaseSyllabusReady
    if err := ss.saveState(ctx, convo, state); err != nil {
      return "", err
    }
    return syllabusUploadAck, nil

  case strings.HasPrefix(upper, "FETCH"):
    completion, err := ss.ai.Chat(ctx, []AIMessage{
      {Role: aiRoleUser, Content: buildFetchSyllabusPrompt(state.Subject, profile)},
    })
    if err != nil {
      return "", err
    }
    state.SyllabusText = completion.Content
    state.SyllabusSource = types.SyllabusSourceFetch
    state.Phase = types.StudyPhaseSyllabusReady
    if err := ss.saveState(ctx, convo, state); err != nil {
      return "", err
    }
    return syllabusFetchedReply(state.SyllabusText), nil

  default:
    // Neither source keyword; hold the phase and ask again.
    return syllabusSourceReprompt, nil
  }
}

func (ss *studyService) stepSyllabusReady(ctx context.Context, convo *types.Conversation, state *types.StudyState, upper string) (string, error) {
  if upper != "LOCK" && upper != "LOCK SYLLABUS" {
    return syllabusLockReprompt, nil
  }

  completion, err := ss.ai.Chat(ctx, []AIMessage{
    {Role: aiRoleUser, Content: buildUnitSplitPrompt(state.SyllabusText)},
  })
  if err != nil {
    return "", err
  }

  // On a malformed payload the state is NOT saved; the conversation stays in
  // SYLLABUS_READY and the user can retry the lock.
  units, err := ParseUnits(completion.Content)
  if err != nil {
    return "", err
  }

  state.ParsedUnits = units
  state.CurrentUnitIndex = 0
  state.TeachingStep = types.TeachingStepDetail
  state.CurrentQuestionTypeIndex = 0
  state.QuestionBatch = 0
  state.Phase = types.StudyPhaseTeaching
  if err := ss.saveState(ctx, convo, state); err != nil {
    return "", err
  }
  return syllabusLockedReply(units[0].Title), nil
}

func (ss *studyService) stepTeaching(ctx context.Context, convo *types.Conversation, state *types.StudyState) (string, error) {
  if state.UnitsExhausted() {
    return studyAllUnitsDone, nil
  }
  unit := state.ParsedUnits[state.CurrentUnitIndex]

  completion, err := ss.ai.Chat(ctx, []AIMessage{
    {Role: aiRoleUser, Content: buildTeachingPrompt(state.Subject, unit, state.TeachingStep)},
  })
  if err != nil {
    return "", err
  }

  switch state.TeachingStep {
  case types.TeachingStepDetail:
    state.TeachingStep = types.TeachingStepELI5
  case types.TeachingStepELI5:
    state.TeachingStep = types.TeachingStepShort
  case types.TeachingStepShort:
    state.TeachingStep = types.TeachingStepSummary
  default:
    state.Phase = types.StudyPhaseQuestionMode
    state.TeachingStep = types.TeachingStepDetail
    if err := ss.saveState(ctx, convo, state); err != nil {
      return "", err
    }
    return teachingQuestionsReply(completion.Content), nil
  }

  if err := ss.saveState(ctx, convo, state); err != nil {
    return "", err
  }
  return teachingContinueReply(completion.Content), nil
}

func (ss *studyService) stepQuestionMode(ctx context.Context, convo *types.Conversation, state *types.StudyState, upper string) (string, error) {
  if state.UnitsExhausted() {
    return studyAllUnitsDone, nil
  }
  unit := state.ParsedUnits[state.CurrentUnitIndex]
  questionType := state.QuestionTypes[state.CurrentQuestionTypeIndex]

  if upper == "NO" {
    state.CurrentQuestionTypeIndex++
    state.QuestionBatch = 0

    if state.CurrentQuestionTypeIndex >= len(state.QuestionTypes) {
      state.CurrentUnitIndex++
      state.CurrentQuestionTypeIndex = 0
      state.Phase = types.StudyPhaseTeaching
      if err := ss.saveState(ctx, convo, state); err != nil {
        return "", err
      }
      if state.UnitsExhausted() {
        return studyAllUnitsDone, nil
      }
      return questionModeNextUnitReply(state.ParsedUnits[state.CurrentUnitIndex].Title), nil
    }

    if err := ss.saveState(ctx, convo, state); err != nil {
      return "", err
    }
    return questionModeNextTypeReply(state.QuestionTypes[state.CurrentQuestionTypeIndex]), nil
  }

  // Persist the batch counter before the gateway call so a failed call does
  // not silently reuse the same batch number.
  state.QuestionBatch++
  if err := ss.saveState(ctx, convo, state); err != nil {
    return "", err
  }

  completion, err := ss.ai.Chat(ctx, []AIMessage{
    {Role: aiRoleUser, Content: buildQuestionPrompt(state.Subject, unit, questionType)},
  })
  if err != nil {
    return "", err
  }
  return questionBatchReply(completion.Content, questionType), nil
}

func (ss *studyService) saveState(ctx context.Context, convo *types.Conversation, state *types.StudyState) error {
  convo.StudyState = datatypes.NewJSONType(*state)
  return ss.conversations.Save(ctx, nil, convo)
}
