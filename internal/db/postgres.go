package db

import (
  "fmt"

  "gorm.io/driver/postgres"
  "gorm.io/gorm"

  "github.com/yungbote/athena-backend/internal/config"
  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/types"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(cfg config.PostgresConfig, log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  serviceLog.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    serviceLog.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("failed to connect to postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Conversation{},
    &types.Message{},
    &types.MentorConversation{},
    &types.MentorMessage{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
