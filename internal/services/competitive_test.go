package services

import (
	"context"
	"strings"
	"testing"
)

func TestCompetitiveTurn(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCompetitiveService(env.sessions, env.messages, env.ai, env.log)

	env.ai.replies = []string{"Strengths: clear thesis"}
	result, err := svc.HandleTurn(context.Background(), CompetitiveTurnInput{UserMessage: "judge my essay"})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if result.Reply != "Strengths: clear thesis" {
		t.Fatalf("reply = %q", result.Reply)
	}

	call := env.ai.lastCall()
	if len(call) == 0 || !strings.Contains(call[0].Content, "Judge Simulator") {
		t.Fatalf("judge instruction missing: %+v", call)
	}

	convo, err := env.conversations.GetByID(context.Background(), nil, result.ConversationID)
	if err != nil || convo == nil {
		t.Fatalf("GetByID: %v, %v", convo, err)
	}
	if convo.Title != "Competitive Prep Session" {
		t.Fatalf("title = %q", convo.Title)
	}
	if !convo.CompetitiveState.Data().Active {
		t.Fatalf("competitive state not active")
	}

	msgs, err := env.messages.ListByConversation(context.Background(), nil, result.ConversationID)
	if err != nil {
		t.Fatalf("ListByConversation: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
}
