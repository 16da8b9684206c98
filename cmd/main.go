package main

import (
  "context"
  "fmt"
  "os"

  "github.com/yungbote/athena-backend/internal/config"
  "github.com/yungbote/athena-backend/internal/db"
  "github.com/yungbote/athena-backend/internal/handlers"
  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/middleware"
  "github.com/yungbote/athena-backend/internal/observability"
  "github.com/yungbote/athena-backend/internal/repos"
  "github.com/yungbote/athena-backend/internal/server"
  "github.com/yungbote/athena-backend/internal/services"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Config
  cfg, err := config.Load(log)
  if err != nil {
    log.Error("Could not load config", "error", err)
    os.Exit(1)
  }

  // Tracing
  shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "athena-backend",
    Environment: os.Getenv("DEPLOY_ENV"),
    Version:     os.Getenv("SERVICE_VERSION"),
  })
  if shutdownOTel != nil {
    defer shutdownOTel(context.Background())
  }

  // Postgres
  postgresService, err := db.NewPostgresService(cfg.Postgres, log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  conversationRepo := repos.NewConversationRepo(thePG, log)
  messageRepo := repos.NewMessageRepo(thePG, log)
  mentorConversationRepo := repos.NewMentorConversationRepo(thePG, log)
  mentorMessageRepo := repos.NewMentorMessageRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  aiClient, err := services.NewOpenAIClient(cfg.OpenAI, log)
  if err != nil {
    log.Error("Could not init AIClient", "error", err)
    os.Exit(1)
  }
  sessionService := services.NewSessionService(conversationRepo, mentorConversationRepo, log)
  memoryService := services.NewMemoryService(conversationRepo, messageRepo, aiClient, log)
  studyService := services.NewStudyService(sessionService, conversationRepo, messageRepo, aiClient, log)
  examService := services.NewExamService(sessionService, conversationRepo, messageRepo, aiClient, log)
  mentorService := services.NewMentorService(sessionService, mentorMessageRepo, aiClient, log)
  competitiveService := services.NewCompetitiveService(sessionService, messageRepo, aiClient, log)
  assignmentService := services.NewAssignmentService(sessionService, messageRepo, memoryService, aiClient, log)

  // Handlers
  log.Info("Setting up Handlers from main...")
  chatHandler := handlers.NewChatHandler(studyService, log)
  examHandler := handlers.NewExamHandler(examService, log)
  mentorHandler := handlers.NewMentorHandler(mentorService, log)
  competitionHandler := handlers.NewCompetitionHandler(competitiveService, log)
  assignmentHandler := handlers.NewAssignmentHandler(assignmentService, log)
  conversationHandler := handlers.NewConversationHandler(conversationRepo, messageRepo, log)
  requestIDMiddleware := middleware.NewRequestIDMiddleware(log)

  // Router
  router := server.NewRouter(server.RouterConfig{
    ChatHandler:         chatHandler,
    ExamHandler:         examHandler,
    MentorHandler:       mentorHandler,
    CompetitionHandler:  competitionHandler,
    AssignmentHandler:   assignmentHandler,
    ConversationHandler: conversationHandler,
    RequestIDMiddleware: requestIDMiddleware,
  })

  addr := ":" + cfg.Port
  log.Info("Athena backend listening", "addr", addr)
  if err := router.Run(addr); err != nil {
    log.Error("Server exited", "error", err)
    os.Exit(1)
  }
}
