package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/services"
)

type CompetitionHandler struct {
  competitiveService  services.CompetitiveService
  log                 *logger.Logger
}

func NewCompetitionHandler(competitiveService services.CompetitiveService, baseLog *logger.Logger) *CompetitionHandler {
  return &CompetitionHandler{
    competitiveService: competitiveService,
    log:                baseLog.With("handler", "CompetitionHandler"),
  }
}

func (ch *CompetitionHandler) CompetitionTurn(c *gin.Context) {
  var req TurnRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
    return
  }
  if req.UserMessage == "" {
    RespondError(c, http.StatusBadRequest, "invalid_request", "userMessage is required")
    return
  }

  result, err := ch.competitiveService.HandleTurn(c.Request.Context(), services.CompetitiveTurnInput{
    ConversationID: req.ConversationID,
    UserMessage:    req.UserMessage,
  })
  if err != nil {
    ch.log.Error("competition turn failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "turn_failed", "Competitive mode failed")
    return
  }
  RespondOK(c, TurnResponse{ConversationID: result.ConversationID, Reply: result.Reply})
}
