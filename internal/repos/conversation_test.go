package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/athena-backend/internal/types"
)

func TestConversationStateRoundTrip(t *testing.T) {
	db, log := newTestDB(t)
	repo := NewConversationRepo(db, log)
	ctx := context.Background()

	state := types.DefaultStudyState()
	state.Phase = types.StudyPhaseTeaching
	state.Subject = "Thermodynamics"
	state.SyllabusSource = types.SyllabusSourceFetch
	state.ParsedUnits = []types.StudyUnit{
		{Title: "U1", Topics: []string{"laws", "entropy"}},
		{Title: "U2", Topics: []string{"cycles"}},
	}
	state.CurrentUnitIndex = 1
	state.TeachingStep = types.TeachingStepShort
	state.CurrentQuestionTypeIndex = 3
	state.QuestionBatch = 2

	created, err := repo.Create(ctx, nil, &types.Conversation{
		Title:            "Study Session",
		StudyState:       datatypes.NewJSONType(state),
		LongTermMemory:   datatypes.NewJSONType(types.LongTermMemory{Summary: "working on unit 2"}),
		CompetitiveState: datatypes.NewJSONType(types.CompetitiveState{}),
		ExamState:        datatypes.NewJSONType(types.DefaultExamState()),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("id not generated")
	}

	loaded, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded == nil {
		t.Fatalf("conversation not found")
	}

	got := loaded.StudyState.Data()
	if got.Phase != types.StudyPhaseTeaching || got.Subject != "Thermodynamics" {
		t.Fatalf("study state = %+v", got)
	}
	if len(got.ParsedUnits) != 2 || got.ParsedUnits[1].Title != "U2" {
		t.Fatalf("parsed units = %+v", got.ParsedUnits)
	}
	if got.CurrentUnitIndex != 1 || got.TeachingStep != types.TeachingStepShort {
		t.Fatalf("cursor fields = %+v", got)
	}
	if got.CurrentQuestionTypeIndex != 3 || got.QuestionBatch != 2 {
		t.Fatalf("question fields = %+v", got)
	}
	if loaded.LongTermMemory.Data().Summary != "working on unit 2" {
		t.Fatalf("memory = %+v", loaded.LongTermMemory.Data())
	}
}

func TestConversationGetByIDMissing(t *testing.T) {
	db, log := newTestDB(t)
	repo := NewConversationRepo(db, log)

	loaded, err := repo.GetByID(context.Background(), nil, uuid.New())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded != nil {
		t.Fatalf("want nil for missing row, got %+v", loaded)
	}
}

func TestConversationSaveUpdatesState(t *testing.T) {
	db, log := newTestDB(t)
	repo := NewConversationRepo(db, log)
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Conversation{
		Title:      "Study Session",
		StudyState: datatypes.NewJSONType(types.DefaultStudyState()),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	state := created.StudyState.Data()
	state.Phase = types.StudyPhaseAskSubject
	created.StudyState = datatypes.NewJSONType(state)
	created.Title = "Thermodynamics Basics"
	if err := repo.Save(ctx, nil, created); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil || loaded == nil {
		t.Fatalf("GetByID: %v, %v", loaded, err)
	}
	if loaded.Title != "Thermodynamics Basics" {
		t.Fatalf("title = %q", loaded.Title)
	}
	if loaded.StudyState.Data().Phase != types.StudyPhaseAskSubject {
		t.Fatalf("phase = %s", loaded.StudyState.Data().Phase)
	}
}
