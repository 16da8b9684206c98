package repos

import (
  "context"
  "errors"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/types"
)

type MentorConversationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, convo *types.MentorConversation) (*types.MentorConversation, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MentorConversation, error)
}

type mentorConversationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMentorConversationRepo(db *gorm.DB, baseLog *logger.Logger) MentorConversationRepo {
  repoLog := baseLog.With("repo", "MentorConversationRepo")
  return &mentorConversationRepo{db: db, log: repoLog}
}

func (mr *mentorConversationRepo) Create(ctx context.Context, tx *gorm.DB, convo *types.MentorConversation) (*types.MentorConversation, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  if err := transaction.WithContext(ctx).Create(convo).Error; err != nil {
    return nil, err
  }
  return convo, nil
}

func (mr *mentorConversationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MentorConversation, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var result types.MentorConversation
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

type MentorMessageRepo interface {
  Create(ctx context.Context, tx *gorm.DB, msg *types.MentorMessage) (*types.MentorMessage, error)
  ListRecent(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID, limit int) ([]*types.MentorMessage, error)
}

type mentorMessageRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMentorMessageRepo(db *gorm.DB, baseLog *logger.Logger) MentorMessageRepo {
  repoLog := baseLog.With("repo", "MentorMessageRepo")
  return &mentorMessageRepo{db: db, log: repoLog}
}

func (mr *mentorMessageRepo) Create(ctx context.Context, tx *gorm.DB, msg *types.MentorMessage) (*types.MentorMessage, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  if err := transaction.WithContext(ctx).Create(msg).Error; err != nil {
    return nil, err
  }
  return msg, nil
}

func (mr *mentorMessageRepo) ListRecent(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID, limit int) ([]*types.MentorMessage, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var results []*types.MentorMessage
  query := transaction.WithContext(ctx).
    Where("conversation_id = ?", conversationID).
    Order("created_at DESC")
  if limit > 0 {
    query = query.Limit(limit)
  }
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  reverse(results)
  return results, nil
}
