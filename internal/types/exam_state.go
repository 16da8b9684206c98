package types

import "time"

// ExamPhase only distinguishes whether a syllabus exists yet; everything else
// about the exam flow is delegated to the completion gateway's standing
// instruction rather than branched on here.
type ExamPhase string

const (
  ExamPhaseFreeChat        ExamPhase = "FREE_CHAT"
  ExamPhaseSyllabusPresent ExamPhase = "SYLLABUS_PRESENT"
)

type ExamUnit struct {
  UnitTitle  string    `json:"unit_title"`
  Topics     []string  `json:"topics"`
  Completed  bool      `json:"completed"`
}

type ExamState struct {
  Active                bool            `json:"active"`
  Phase                 ExamPhase       `json:"phase"`
  ExamType              string          `json:"exam_type,omitempty"`
  ClassLevel            string          `json:"class_level,omitempty"`
  Degree                string          `json:"degree,omitempty"`
  CourseType            string          `json:"course_type,omitempty"`
  Subject               string          `json:"subject,omitempty"`
  SubjectCode           string          `json:"subject_code,omitempty"`
  SyllabusText          string          `json:"syllabus_text,omitempty"`
  SyllabusSource        SyllabusSource  `json:"syllabus_source,omitempty"`
  ParsedStructure       []ExamUnit      `json:"parsed_structure,omitempty"`
  CurrentUnitIndex      int             `json:"current_unit_index"`
  AwaitingConfirmation  string          `json:"awaiting_confirmation,omitempty"`
  LastActivityAt        *time.Time      `json:"last_activity_at,omitempty"`
}

func DefaultExamState() ExamState {
  return ExamState{
    Phase: ExamPhaseFreeChat,
  }
}

type CompetitiveState struct {
  Active  bool  `json:"active"`
}
