package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/services"
)

type TurnRequest struct {
  UserMessage     string             `json:"userMessage"`
  ConversationID  *uuid.UUID         `json:"conversationId"`
  Profile         *services.Profile  `json:"profile"`
}

type TurnResponse struct {
  ConversationID  uuid.UUID  `json:"conversationId"`
  Reply           string     `json:"reply"`
}

type ChatHandler struct {
  studyService  services.StudyService
  log           *logger.Logger
}

func NewChatHandler(studyService services.StudyService, baseLog *logger.Logger) *ChatHandler {
  return &ChatHandler{
    studyService: studyService,
    log:          baseLog.With("handler", "ChatHandler"),
  }
}

func (ch *ChatHandler) StudyTurn(c *gin.Context) {
  var req TurnRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
    return
  }
  if req.UserMessage == "" {
    RespondError(c, http.StatusBadRequest, "invalid_request", "userMessage is required")
    return
  }

  result, err := ch.studyService.HandleTurn(c.Request.Context(), services.StudyTurnInput{
    ConversationID: req.ConversationID,
    UserMessage:    req.UserMessage,
    Profile:        req.Profile,
  })
  if err != nil {
    ch.log.Error("study turn failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "turn_failed", "AI failed")
    return
  }
  RespondOK(c, TurnResponse{ConversationID: result.ConversationID, Reply: result.Reply})
}
