package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/athena-backend/internal/logger"
	"github.com/yungbote/athena-backend/internal/repos"
	"github.com/yungbote/athena-backend/internal/types"
)

type fakeAI struct {
	mu      sync.Mutex
	replies []string
	calls   [][]AIMessage
	err     error
}

func (f *fakeAI) Chat(_ context.Context, messages []AIMessage) (*AICompletion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return nil, f.err
	}
	reply := "ok"
	if len(f.replies) > 0 {
		reply = f.replies[0]
		f.replies = f.replies[1:]
	}
	return &AICompletion{Content: reply}, nil
}

func (f *fakeAI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAI) lastCall() []AIMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

type testEnv struct {
	db            *gorm.DB
	log           *logger.Logger
	ai            *fakeAI
	conversations repos.ConversationRepo
	messages      repos.MessageRepo
	mentorConvos  repos.MentorConversationRepo
	mentorMsgs    repos.MentorMessageRepo
	sessions      SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "athena_test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Conversation{},
		&types.Message{},
		&types.MentorConversation{},
		&types.MentorMessage{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	conversations := repos.NewConversationRepo(db, log)
	messages := repos.NewMessageRepo(db, log)
	mentorConvos := repos.NewMentorConversationRepo(db, log)
	mentorMsgs := repos.NewMentorMessageRepo(db, log)

	return &testEnv{
		db:            db,
		log:           log,
		ai:            &fakeAI{},
		conversations: conversations,
		messages:      messages,
		mentorConvos:  mentorConvos,
		mentorMsgs:    mentorMsgs,
		sessions:      NewSessionService(conversations, mentorConvos, log),
	}
}
