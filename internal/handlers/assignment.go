package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/services"
)

type AssignmentHandler struct {
  assignmentService  services.AssignmentService
  log                *logger.Logger
}

func NewAssignmentHandler(assignmentService services.AssignmentService, baseLog *logger.Logger) *AssignmentHandler {
  return &AssignmentHandler{
    assignmentService: assignmentService,
    log:               baseLog.With("handler", "AssignmentHandler"),
  }
}

func (ah *AssignmentHandler) AssignmentTurn(c *gin.Context) {
  var req TurnRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
    return
  }
  if req.UserMessage == "" {
    RespondError(c, http.StatusBadRequest, "invalid_request", "userMessage is required")
    return
  }

  result, err := ah.assignmentService.HandleTurn(c.Request.Context(), services.AssignmentTurnInput{
    ConversationID: req.ConversationID,
    UserMessage:    req.UserMessage,
  })
  if err != nil {
    ah.log.Error("assignment turn failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "turn_failed", "Assignment mode failed")
    return
  }
  RespondOK(c, TurnResponse{ConversationID: result.ConversationID, Reply: result.Reply})
}
