package repos

import (
  "context"
  "errors"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/types"
)

type ConversationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, convo *types.Conversation) (*types.Conversation, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Conversation, error)
  Save(ctx context.Context, tx *gorm.DB, convo *types.Conversation) error
  ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Conversation, error)
}

type conversationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewConversationRepo(db *gorm.DB, baseLog *logger.Logger) ConversationRepo {
  repoLog := baseLog.With("repo", "ConversationRepo")
  return &conversationRepo{db: db, log: repoLog}
}

func (cr *conversationRepo) Create(ctx context.Context, tx *gorm.DB, convo *types.Conversation) (*types.Conversation, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if err := transaction.WithContext(ctx).Create(convo).Error; err != nil {
    return nil, err
  }
  return convo, nil
}

// GetByID returns (nil, nil) when no row exists; callers treat a stale or
// unknown id as "start a fresh conversation".
func (cr *conversationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Conversation, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var result types.Conversation
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

func (cr *conversationRepo) Save(ctx context.Context, tx *gorm.DB, convo *types.Conversation) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  return transaction.WithContext(ctx).Save(convo).Error
}

func (cr *conversationRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Conversation, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Conversation
  query := transaction.WithContext(ctx).Order("created_at DESC")
  if limit > 0 {
    query = query.Limit(limit)
  }
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
