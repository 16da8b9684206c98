package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/athena-backend/internal/types"
)

func TestSessionCreatesWithDefaults(t *testing.T) {
	env := newTestEnv(t)

	convo, release, err := env.sessions.Begin(context.Background(), nil, ConversationDefaults{
		Title:             "Competitive Prep Session",
		CompetitiveActive: true,
	})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer release()

	if convo.ID == uuid.Nil {
		t.Fatalf("conversation id not assigned")
	}
	if convo.Title != "Competitive Prep Session" {
		t.Fatalf("title = %q", convo.Title)
	}
	if !convo.CompetitiveState.Data().Active {
		t.Fatalf("competitive state not active")
	}
	if convo.ExamState.Data().Active {
		t.Fatalf("exam state should be inactive")
	}
	if convo.StudyState.Data().Phase != types.StudyPhaseGreet {
		t.Fatalf("study phase = %s", convo.StudyState.Data().Phase)
	}
}

func TestSessionDefaultTitle(t *testing.T) {
	env := newTestEnv(t)

	convo, release, err := env.sessions.Begin(context.Background(), nil, ConversationDefaults{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer release()

	if convo.Title != types.DefaultConversationTitle {
		t.Fatalf("title = %q, want %q", convo.Title, types.DefaultConversationTitle)
	}
}

func TestSessionResolvesExisting(t *testing.T) {
	env := newTestEnv(t)

	created, release, err := env.sessions.Begin(context.Background(), nil, ConversationDefaults{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	release()

	resolved, release, err := env.sessions.Begin(context.Background(), &created.ID, ConversationDefaults{})
	if err != nil {
		t.Fatalf("Begin existing: %v", err)
	}
	defer release()

	if resolved.ID != created.ID {
		t.Fatalf("resolved %s, want %s", resolved.ID, created.ID)
	}
}

func TestSessionStaleIDStartsFresh(t *testing.T) {
	env := newTestEnv(t)

	stale := uuid.New()
	convo, release, err := env.sessions.Begin(context.Background(), &stale, ConversationDefaults{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer release()

	if convo.ID == stale {
		t.Fatalf("stale id must not be reused")
	}
}

func TestSessionSerializesTurns(t *testing.T) {
	env := newTestEnv(t)

	convo, release, err := env.sessions.Begin(context.Background(), nil, ConversationDefaults{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	id := convo.ID

	acquired := make(chan struct{})
	go func() {
		_, secondRelease, err := env.sessions.Begin(context.Background(), &id, ConversationDefaults{})
		if err != nil {
			t.Errorf("second Begin: %v", err)
			close(acquired)
			return
		}
		close(acquired)
		secondRelease()
	}()

	select {
	case <-acquired:
		t.Fatalf("second turn acquired the lock while the first held it")
	case <-time.After(100 * time.Millisecond):
	}

	release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatalf("second turn never acquired the lock")
	}
}

func TestSessionAcquireHonorsContext(t *testing.T) {
	env := newTestEnv(t)

	convo, release, err := env.sessions.Begin(context.Background(), nil, ConversationDefaults{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer release()
	id := convo.ID

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, _, err := env.sessions.Begin(ctx, &id, ConversationDefaults{}); err == nil {
		t.Fatalf("Begin should fail when the context expires while waiting")
	}
}
