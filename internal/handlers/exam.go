package handlers

import (
  "encoding/json"
  "net/http"
  "strings"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/athena-backend/internal/logger"
  "github.com/yungbote/athena-backend/internal/services"
)

type ExamHandler struct {
  examService  services.ExamService
  log          *logger.Logger
}

func NewExamHandler(examService services.ExamService, baseLog *logger.Logger) *ExamHandler {
  return &ExamHandler{
    examService: examService,
    log:         baseLog.With("handler", "ExamHandler"),
  }
}

// ExamTurn accepts both plain JSON bodies and multipart forms; multipart is
// how the client attaches a syllabus file. An empty userMessage is allowed
// when a file is present.
func (eh *ExamHandler) ExamTurn(c *gin.Context) {
  var (
    req          TurnRequest
    fileUploaded bool
  )

  if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
    req.UserMessage = c.PostForm("userMessage")
    if raw := c.PostForm("conversationId"); raw != "" {
      id, err := uuid.Parse(raw)
      if err != nil {
        RespondError(c, http.StatusBadRequest, "invalid_request", "conversationId is not a valid id")
        return
      }
      req.ConversationID = &id
    }
    if raw := c.PostForm("profile"); raw != "" {
      if err := json.Unmarshal([]byte(raw), &req.Profile); err != nil {
        RespondError(c, http.StatusBadRequest, "invalid_request", "profile is not valid JSON")
        return
      }
    }
    if _, err := c.FormFile("file"); err == nil {
      fileUploaded = true
    }
  } else {
    if err := c.ShouldBindJSON(&req); err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
      return
    }
  }

  if req.UserMessage == "" && !fileUploaded {
    RespondError(c, http.StatusBadRequest, "invalid_request", "userMessage or a file is required")
    return
  }

  result, err := eh.examService.HandleTurn(c.Request.Context(), services.ExamTurnInput{
    ConversationID: req.ConversationID,
    UserMessage:    req.UserMessage,
    Profile:        req.Profile,
    FileUploaded:   fileUploaded,
  })
  if err != nil {
    eh.log.Error("exam turn failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "turn_failed", "Exam mode failed")
    return
  }
  RespondOK(c, TurnResponse{ConversationID: result.ConversationID, Reply: result.Reply})
}
