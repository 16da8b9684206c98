package services

import (
  "encoding/json"
  "fmt"
  "regexp"
  "strings"

  "github.com/yungbote/athena-backend/internal/types"
)

var subjectPatterns = []*regexp.Regexp{
  regexp.MustCompile(`(?i)study (.+)`),
  regexp.MustCompile(`(?i)learn (.+)`),
  regexp.MustCompile(`(?i)about (.+)`),
}

// ExtractSubject pulls a subject out of a free-form request ("I want to study
// calculus"). When no pattern matches, the whole trimmed input is the subject.
func ExtractSubject(input string) string {
  for _, re := range subjectPatterns {
    match := re.FindStringSubmatch(input)
    if len(match) > 1 {
      if subject := strings.TrimSpace(match[1]); subject != "" {
        return subject
      }
    }
  }
  return strings.TrimSpace(input)
}

var jsonFenceRe = regexp.MustCompile("(?i)```json")

// ParseUnits decodes the unit-split payload. Markdown code fences are
// stripped first; anything that is not a JSON array after that is rejected as
// malformed rather than guessed at.
func ParseUnits(raw string) ([]types.StudyUnit, error) {
  cleaned := jsonFenceRe.ReplaceAllString(raw, "")
  cleaned = strings.ReplaceAll(cleaned, "```", "")
  cleaned = strings.TrimSpace(cleaned)

  if !strings.HasPrefix(cleaned, "[") || !strings.HasSuffix(cleaned, "]") {
    return nil, fmt.Errorf("unit split is not a JSON array: %w", ErrMalformedStructuredOutput)
  }

  var units []types.StudyUnit
  if err := json.Unmarshal([]byte(cleaned), &units); err != nil {
    return nil, fmt.Errorf("unit split failed to decode: %w", ErrMalformedStructuredOutput)
  }
  if len(units) == 0 {
    return nil, fmt.Errorf("unit split produced no units: %w", ErrMalformedStructuredOutput)
  }
  return units, nil
}
