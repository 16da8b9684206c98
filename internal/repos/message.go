package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/types"
)

type MessageRepo interface {
  Create(ctx context.Context, tx *gorm.DB, msg *types.Message) (*types.Message, error)
  // ListOldest returns up to limit messages ordered created_at ascending,
  // starting from the beginning of the conversation.
  ListOldest(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID, limit int) ([]*types.Message, error)
  // ListRecent returns up to limit of the newest messages, re-ordered oldest
  // first so they can be replayed into a prompt directly.
  ListRecent(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID, limit int) ([]*types.Message, error)
  ListByConversation(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID) ([]*types.Message, error)
  CountByConversation(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID) (int64, error)
}

type messageRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
  repoLog := baseLog.With("repo", "MessageRepo")
  return &messageRepo{db: db, log: repoLog}
}

func (mr *messageRepo) Create(ctx context.Context, tx *gorm.DB, msg *types.Message) (*types.Message, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  if err := transaction.WithContext(ctx).Create(msg).Error; err != nil {
    return nil, err
  }
  return msg, nil
}

func (mr *messageRepo) ListOldest(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID, limit int) ([]*types.Message, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var results []*types.Message
  query := transaction.WithContext(ctx).
    Where("conversation_id = ?", conversationID).
    Order("created_at ASC")
  if limit > 0 {
    query = query.Limit(limit)
  }
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (mr *messageRepo) ListRecent(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID, limit int) ([]*types.Message, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var results []*types.Message
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

func (mr *messageRepo) ListByConversation(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID) ([]*types.Message, error) {
  return mr.ListOldest(ctx, tx, conversationID, 0)
}

func (mr *messageRepo) CountByConversation(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = mr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Message{}).
    Where("conversation_id = ?", conversationID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func reverse[T any](s []*T) {
  for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
    s[i], s[j] = s[j], s[i]
  }
}
