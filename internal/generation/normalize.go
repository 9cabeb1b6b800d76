package generation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/campuskit/coursegen-service/internal/extract"
	"github.com/campuskit/coursegen-service/internal/models"
)

var (
	fenceOpenRe = regexp.MustCompile("```[a-zA-Z0-9]*\\s*")

	// Matches a question label that directly follows a line of text, so a
	// blank line can be inserted between them. Already-separated labels are
	// left untouched, which makes the rewrite idempotent.
	questionLabelRe = regexp.MustCompile(`(?i)([^\n])\n(Q\d+\s*\(\d+\s*marks\))`)
)

// NormalizeQuestionBank cleans a raw model reply into presentable bank text:
// code fences go, anything before the mandatory title line goes, and every
// question label gets a blank line in front of it.
func NormalizeQuestionBank(raw, titleLine string) string {
	text := fenceOpenRe.ReplaceAllString(raw, "")
	text = strings.ReplaceAll(text, "```", "")

	titleRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(titleLine))
	if loc := titleRe.FindStringIndex(text); loc != nil {
		text = text[loc[0]:]
	}

	text = questionLabelRe.ReplaceAllString(text, "$1\n\n$2")

	return strings.TrimSpace(text)
}

// QuizParseError reports a reply that could not be read as the required
// questions JSON. Sample holds a shortened copy of the offending reply for
// the caller to surface.
type QuizParseError struct {
	Sample string
}

func (e *QuizParseError) Error() string {
	return "model did not return valid questions JSON"
}

type quizReply struct {
	Questions []models.MCQItem `json:"questions"`
}

// ParseQuizReply decodes a model reply into MCQ items. A direct decode is
// tried first; when the model wraps the JSON in fences or commentary, the
// span from the first '{' to the last '}' is retried before giving up.
// Control characters other than tab, CR and LF are dropped beforehand since
// model output occasionally embeds them and they break JSON decoding.
func ParseQuizReply(raw string) ([]models.MCQItem, error) {
	content := extract.SafeUTF8(raw)
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, content)

	if items, ok := decodeQuestions(content); ok {
		return items, nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		if items, ok := decodeQuestions(content[start : end+1]); ok {
			return items, nil
		}
	}

	return nil, &QuizParseError{Sample: extract.Shorten(content, 1000)}
}

func decodeQuestions(s string) ([]models.MCQItem, bool) {
	var reply quizReply
	if err := json.Unmarshal([]byte(s), &reply); err != nil {
		return nil, false
	}
	if reply.Questions == nil {
		return nil, false
	}
	return reply.Questions, true
}
