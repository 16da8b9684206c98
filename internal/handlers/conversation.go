package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/repos"
)

const conversationListLimit = 50

type ConversationHandler struct {
  conversations  repos.ConversationRepo
  messages       repos.MessageRepo
  log            *logger.Logger
}

func NewConversationHandler(
  conversations repos.ConversationRepo,
  messages repos.MessageRepo,
  baseLog *logger.Logger,
) *ConversationHandler {
  return &ConversationHandler{
    conversations: conversations,
    messages:      messages,
    log:           baseLog.With("handler", "ConversationHandler"),
  }
}

// List returns the newest conversations as a bare JSON array; the client
// renders it directly as the sidebar.
func (ch *ConversationHandler) List(c *gin.Context) {
  convos, err := ch.conversations.ListRecent(c.Request.Context(), nil, conversationListLimit)
  if err != nil {
    ch.log.Error("conversation list failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "list_failed", "could not list conversations")
    return
  }
  RespondOK(c, convos)
}

func (ch *ConversationHandler) Messages(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", "conversation id is not valid")
    return
  }

  msgs, err := ch.messages.ListByConversation(c.Request.Context(), nil, id)
  if err != nil {
    ch.log.Error("message list failed", "error", err, "conversation_id", id.String())
    RespondError(c, http.StatusInternalServerError, "list_failed", "could not list messages")
    return
  }
  RespondOK(c, msgs)
}
