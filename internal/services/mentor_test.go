package services

import (
	"context"
	"strings"
	"testing"
)

func TestMentorTurnKeepsSeparateStore(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMentorService(env.sessions, env.mentorMsgs, env.ai, env.log)

	env.ai.replies = []string{"you've got this"}
	result, err := svc.HandleTurn(context.Background(), MentorTurnInput{UserMessage: "I feel burnt out"})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if result.Reply != "you've got this" {
		t.Fatalf("reply = %q", result.Reply)
	}

	call := env.ai.lastCall()
	if len(call) == 0 || !strings.Contains(call[0].Content, "supportive academic mentor") {
		t.Fatalf("mentor instruction missing: %+v", call)
	}

	// Mentor messages land in the mentor tables, not the main message log.
	mentorHistory, err := env.mentorMsgs.ListRecent(context.Background(), nil, result.ConversationID, 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(mentorHistory) != 2 {
		t.Fatalf("mentor messages = %d, want 2", len(mentorHistory))
	}
	mainHistory, err := env.messages.ListByConversation(context.Background(), nil, result.ConversationID)
	if err != nil {
		t.Fatalf("ListByConversation: %v", err)
	}
	if len(mainHistory) != 0 {
		t.Fatalf("main messages = %d, want 0", len(mainHistory))
	}
}

func TestMentorResolvesExistingConversation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMentorService(env.sessions, env.mentorMsgs, env.ai, env.log)

	first, err := svc.HandleTurn(context.Background(), MentorTurnInput{UserMessage: "hi"})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	second, err := svc.HandleTurn(context.Background(), MentorTurnInput{
		ConversationID: &first.ConversationID,
		UserMessage:    "still here",
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if second.ConversationID != first.ConversationID {
		t.Fatalf("conversation changed: %s vs %s", second.ConversationID, first.ConversationID)
	}
}
