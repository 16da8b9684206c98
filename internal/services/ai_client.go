package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"

  "github.com/yungbote/athena-backend/internal/config"
  "github.com/yungbote/athena-backend/internal/logger"
)

const (
  aiRoleSystem    = "system"
  aiRoleUser      = "user"
  aiRoleAssistant = "assistant"
)

// AIClient is the completion gateway: an ordered list of role-tagged turns in,
// one generated turn out. Calls are single-shot; a provider error fails the
// whole turn with no retry.
type AIClient interface {
  Chat(ctx context.Context, messages []AIMessage) (*AICompletion, error)
}

type AIMessage struct {
  Role     string  `json:"role"`
  Content  string  `json:"content"`
}

type AICompletion struct {
  Content  string
}

type aiClient struct {
  log         *logger.Logger
  httpClient  *http.Client
  apiKey      string
  baseURL     string
  chatModel   string
}

func NewOpenAIClient(cfg config.OpenAIConfig, baseLog *logger.Logger) (AIClient, error) {
  if cfg.APIKey == "" {
    return nil, fmt.Errorf("OPENAI_API_KEY is not set")
  }
  return &aiClient{
    log:        baseLog.With("service", "AIClient"),
    httpClient: &http.Client{Timeout: cfg.Timeout},
    apiKey:     cfg.APIKey,
    baseURL:    cfg.BaseURL,
    chatModel:  cfg.ChatModel,
  }, nil
}

type chatCompletionsRequest struct {
  Model     string       `json:"model"`
  Messages  []AIMessage  `json:"messages"`
}

type chatCompletionsResponse struct {
  Choices []struct {
    Message struct {
      Role     string  `json:"role"`
      Content  string  `json:"content"`
    } `json:"message"`
  } `json:"choices"`
}

func (c *aiClient) Chat(ctx context.Context, messages []AIMessage) (*AICompletion, error) {
  if len(messages) == 0 {
    return nil, fmt.Errorf("no messages to send")
  }

  var buf bytes.Buffer
  if err := json.NewEncoder(&buf).Encode(chatCompletionsRequest{
    Model:    c.chatModel,
    Messages: messages,
  }); err != nil {
    return nil, err
  }

  req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", &buf)
  if err != nil {
    return nil, err
  }
  req.Header.Set("Authorization", "Bearer "+c.apiKey)
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, fmt.Errorf("openai request failed: %w", err)
  }
  defer resp.Body.Close()

  raw, err := io.ReadAll(resp.Body)
  if err != nil {
    return nil, err
  }
  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return nil, fmt.Errorf("openai http %d: %s", resp.StatusCode, string(raw))
  }

  var parsed chatCompletionsResponse
  if err := json.Unmarshal(raw, &parsed); err != nil {
    return nil, fmt.Errorf("openai decode error: %w", err)
  }
  if len(parsed.Choices) == 0 {
    return nil, fmt.Errorf("openai returned no choices")
  }
  return &AICompletion{Content: parsed.Choices[0].Message.Content}, nil
}
