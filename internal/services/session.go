package services

import (
  "context"
  "sync"

  "github.com/google/uuid"
  "golang.org/x/sync/semaphore"
  "gorm.io/datatypes"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/repos"
  "github.com/yungbote/athena-backend/internal/types"
)

// ConversationDefaults seeds a conversation created on a mode's first turn.
type ConversationDefaults struct {
  Title              string
  CompetitiveActive  bool
  ExamActive         bool
}

// SessionService resolves an optional client-supplied conversation id into a
// live conversation and serializes turns against it. The release func returned
// by Begin / BeginMentor MUST be called once the turn is fully persisted.
type SessionService interface {
  Begin(ctx context.Context, id *uuid.UUID, defaults ConversationDefaults) (*types.Conversation, func(), error)
  BeginMentor(ctx context.Context, id *uuid.UUID) (*types.MentorConversation, func(), error)
}

type sessionService struct {
  conversations        repos.ConversationRepo
  mentorConversations  repos.MentorConversationRepo
  locks                *conversationLocks
  log                  *logger.Logger
}

func NewSessionService(
  conversations repos.ConversationRepo,
  mentorConversations repos.MentorConversationRepo,
  baseLog *logger.Logger,
) SessionService {
  svcLog := baseLog.With("service", "SessionService")
  return &sessionService{
    conversations:       conversations,
    mentorConversations: mentorConversations,
    locks:               newConversationLocks(),
    log:                 svcLog,
  }
}

func (ss *sessionService) Begin(ctx context.Context, id *uuid.UUID, defaults ConversationDefaults) (*types.Conversation, func(), error) {
  if id != nil && *id != uuid.Nil {
    // Lock before reading so a concurrent turn cannot slip between the
    // lookup and the state transition.
    release, err := ss.locks.acquire(ctx, *id)
    if err != nil {
      return nil, nil, err
    }
    convo, err := ss.conversations.GetByID(ctx, nil, *id)
    if err != nil {
      release()
      return nil, nil, err
    }
    if convo != nil {
      return convo, release, nil
    }
    // Stale id from the client; fall through and start fresh.
    release()
    ss.log.Warn("unknown conversation id, creating a new conversation", "conversation_id", id.String())
  }

  convo, err := ss.createWithDefaults(ctx, defaults)
  if err != nil {
    return nil, nil, err
  }
  release, err := ss.locks.acquire(ctx, convo.ID)
  if err != nil {
    return nil, nil, err
  }
  return convo, release, nil
}

func (ss *sessionService) BeginMentor(ctx context.Context, id *uuid.UUID) (*types.MentorConversation, func(), error) {
  if id != nil && *id != uuid.Nil {
    release, err := ss.locks.acquire(ctx, *id)
    if err != nil {
      return nil, nil, err
    }
    convo, err := ss.mentorConversations.GetByID(ctx, nil, *id)
    if err != nil {
      release()
      return nil, nil, err
    }
    if convo != nil {
      return convo, release, nil
    }
    release()
  }

  convo, err := ss.mentorConversations.Create(ctx, nil, &types.MentorConversation{})
  if err != nil {
    return nil, nil, err
  }
  release, err := ss.locks.acquire(ctx, convo.ID)
  if err != nil {
    return nil, nil, err
  }
  return convo, release, nil
}

func (ss *sessionService) createWithDefaults(ctx context.Context, defaults ConversationDefaults) (*types.Conversation, error) {
  title := defaults.Title
  if title == "" {
    title = types.DefaultConversationTitle
  }

  examState := types.DefaultExamState()
  examState.Active = defaults.ExamActive

  convo := &types.Conversation{
    Title:            title,
    LongTermMemory:   datatypes.NewJSONType(types.LongTermMemory{}),
    StudyState:       datatypes.NewJSONType(types.DefaultStudyState()),
    CompetitiveState: datatypes.NewJSONType(types.CompetitiveState{Active: defaults.CompetitiveActive}),
    ExamState:        datatypes.NewJSONType(examState),
  }
  return ss.conversations.Create(ctx, nil, convo)
}

// conversationLocks hands out one binary semaphore per conversation id.
// Entries are refcounted so the map does not grow with dead conversations.
type conversationLocks struct {
  mu       sync.Mutex
  entries  map[uuid.UUID]*lockEntry
}

type lockEntry struct {
  sem   *semaphore.Weighted
  refs  int
}

func newConversationLocks() *conversationLocks {
  return &conversationLocks{entries: make(map[uuid.UUID]*lockEntry)}
}

func (cl *conversationLocks) acquire(ctx context.Context, id uuid.UUID) (func(), error) {
  cl.mu.Lock()
  entry, ok := cl.entries[id]
  if !ok {
    entry = &lockEntry{sem: semaphore.NewWeighted(1)}
    cl.entries[id] = entry
  }
  entry.refs++
  cl.mu.Unlock()

  if err := entry.sem.Acquire(ctx, 1); err != nil {
    cl.drop(id, entry)
    return nil, err
  }

  var once sync.Once
  release := func() {
    once.Do(func() {
      entry.sem.Release(1)
      cl.drop(id, entry)
    })
  }
  return release, nil
}

func (cl *conversationLocks) drop(id uuid.UUID, entry *lockEntry) {
  cl.mu.Lock()
  entry.refs--
  if entry.refs == 0 {
    delete(cl.entries, id)
  }
  cl.mu.Unlock()
}
