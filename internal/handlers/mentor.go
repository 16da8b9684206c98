package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/services"
)

type MentorTurnRequest struct {
  UserMessage           string      `json:"userMessage"`
  MentorConversationID  *uuid.UUID  `json:"mentorConversationId"`
}

type MentorTurnResponse struct {
  MentorConversationID  uuid.UUID  `json:"mentorConversationId"`
  Reply                 string     `json:"reply"`
}

type MentorHandler struct {
  mentorService  services.MentorService
  log            *logger.Logger
}

func NewMentorHandler(mentorService services.MentorService, baseLog *logger.Logger) *MentorHandler {
  return &MentorHandler{
    mentorService: mentorService,
    log:           baseLog.With("handler", "MentorHandler"),
  }
}

func (mh *MentorHandler) MentorTurn(c *gin.Context) {
  var req MentorTurnRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
    return
  }
  if req.UserMessage == "" {
    RespondError(c, http.StatusBadRequest, "invalid_request", "userMessage is required")
    return
  }

  result, err := mh.mentorService.HandleTurn(c.Request.Context(), services.MentorTurnInput{
    ConversationID: req.MentorConversationID,
    UserMessage:    req.UserMessage,
  })
  if err != nil {
    mh.log.Error("mentor turn failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "turn_failed", "Mentor mode failed")
    return
  }
  RespondOK(c, MentorTurnResponse{MentorConversationID: result.ConversationID, Reply: result.Reply})
}
