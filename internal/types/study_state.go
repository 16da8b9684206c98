package types

// StudyPhase is the closed set of states the study-mode machine moves through.
type StudyPhase string

const (
  StudyPhaseGreet             StudyPhase = "GREET"
  StudyPhaseAskSubject        StudyPhase = "ASK_SUBJECT"
  StudyPhaseAskSyllabusSource StudyPhase = "ASK_SYLLABUS_SOURCE"
  StudyPhaseSyllabusReady     StudyPhase = "SYLLABUS_READY"
  StudyPhaseTeaching          StudyPhase = "TEACHING"
  StudyPhaseQuestionMode      StudyPhase = "QUESTION_MODE"
)

// TeachingStep cycles DETAIL -> ELI5 -> SHORT -> SUMMARY within one unit.
type TeachingStep string

const (
  TeachingStepDetail  TeachingStep = "DETAIL"
  TeachingStepELI5    TeachingStep = "ELI5"
  TeachingStepShort   TeachingStep = "SHORT"
  TeachingStepSummary TeachingStep = "SUMMARY"
)

type StudyUnit struct {
  Title   string    `json:"title"`
  Topics  []string  `json:"topics"`
}

type StudyState struct {
  Phase                     StudyPhase      `json:"phase"`
  Subject                   string          `json:"subject,omitempty"`
  SyllabusText              string          `json:"syllabus_text,omitempty"`
  SyllabusSource            SyllabusSource  `json:"syllabus_source,omitempty"`
  ParsedUnits               []StudyUnit     `json:"parsed_units,omitempty"`
  CurrentUnitIndex          int             `json:"current_unit_index"`
  TeachingStep              TeachingStep    `json:"teaching_step"`
  QuestionTypes             []string        `json:"question_types"`
  CurrentQuestionTypeIndex  int             `json:"current_question_type_index"`
  QuestionBatch             int             `json:"question_batch"`
}

// CurrentUnitIndex may equal len(ParsedUnits); that is the "syllabus exhausted"
// sentinel, not an error.
func (s StudyState) UnitsExhausted() bool {
  return s.CurrentUnitIndex >= len(s.ParsedUnits)
}

func DefaultQuestionTypes() []string {
  return []string{
    "MCQs",
    "Fill in the blanks",
    "True or False",
    "Match the following",
    "Short answer",
    "Long answer",
    "Case study",
    "Numericals",
  }
}

func DefaultStudyState() StudyState {
  return StudyState{
    Phase:         StudyPhaseGreet,
    TeachingStep:  TeachingStepDetail,
    QuestionTypes: DefaultQuestionTypes(),
  }
}
