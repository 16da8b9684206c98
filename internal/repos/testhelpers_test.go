package repos

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/athena-backend/internal/logger"
	"github.com/yungbote/athena-backend/internal/types"
)

func newTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
	t.Helper()

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repos_test.db")), &gorm.Config{})
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
	return db, log
}
