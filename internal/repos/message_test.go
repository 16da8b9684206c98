package repos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/athena-backend/internal/types"
)

func TestMessageWindows(t *testing.T) {
	db, log := newTestDB(t)
	conversations := NewConversationRepo(db, log)
	messages := NewMessageRepo(db, log)
	ctx := context.Background()

	convo, err := conversations.Create(ctx, nil, &types.Conversation{
		Title:      "Study Session",
		StudyState: datatypes.NewJSONType(types.DefaultStudyState()),
	})
	if err != nil {
		t.Fatalf("Create conversation: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 6; i++ {
		if _, err := messages.Create(ctx, nil, &types.Message{
			ConversationID: convo.ID,
			Role:           types.MessageRoleUser,
			Content:        fmt.Sprintf("m%d", i),
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("Create message: %v", err)
		}
	}

	// Recent window keeps the newest N but returns them oldest first.
	recent, err := messages.ListRecent(ctx, nil, convo.ID, 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("recent window = %d, want 3", len(recent))
	}
	for i, want := range []string{"m3", "m4", "m5"} {
		if recent[i].Content != want {
			t.Fatalf("recent[%d] = %q, want %q", i, recent[i].Content, want)
		}
	}

	// Oldest window is anchored at the start of the conversation.
	oldest, err := messages.ListOldest(ctx, nil, convo.ID, 2)
	if err != nil {
		t.Fatalf("ListOldest: %v", err)
	}
	if len(oldest) != 2 || oldest[0].Content != "m0" || oldest[1].Content != "m1" {
		t.Fatalf("oldest window = %+v", oldest)
	}

	count, err := messages.CountByConversation(ctx, nil, convo.ID)
	if err != nil {
		t.Fatalf("CountByConversation: %v", err)
	}
	if count != 6 {
		t.Fatalf("count = %d, want 6", count)
	}

	all, err := messages.ListByConversation(ctx, nil, convo.ID)
	if err != nil {
		t.Fatalf("ListByConversation: %v", err)
	}
	if len(all) != 6 || all[0].Content != "m0" || all[5].Content != "m5" {
		t.Fatalf("full list = %+v", all)
	}
}
