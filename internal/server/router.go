package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

  "github.com/yungbote/athena-backend/internal/handlers"
  "github.com/yungbote/athena-backend/internal/middleware"
)

type RouterConfig struct {
  ChatHandler          *handlers.ChatHandler
  ExamHandler          *handlers.ExamHandler
  MentorHandler        *handlers.MentorHandler
  CompetitionHandler   *handlers.CompetitionHandler
  AssignmentHandler    *handlers.AssignmentHandler
  ConversationHandler  *handlers.ConversationHandler
  RequestIDMiddleware  *middleware.RequestIDMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-ID"},
    AllowCredentials: true,
  }))
  router.Use(otelgin.Middleware("athena-backend"))
  router.Use(cfg.RequestIDMiddleware.Attach())

  router.GET("/healthcheck", handlers.HealthCheck)

  // Chat modes
  ai := router.Group("/ai")
  {
    ai.POST("/chat", cfg.ChatHandler.StudyTurn)
    ai.POST("/exam", cfg.ExamHandler.ExamTurn)
    ai.POST("/mentor", cfg.MentorHandler.MentorTurn)
    ai.POST("/competition", cfg.CompetitionHandler.CompetitionTurn)
    ai.POST("/assignment", cfg.AssignmentHandler.AssignmentTurn)
  }

  // Conversation browsing
  router.GET("/conversations", cfg.ConversationHandler.List)
  router.GET("/conversations/:id/messages", cfg.ConversationHandler.Messages)

  return router
}
