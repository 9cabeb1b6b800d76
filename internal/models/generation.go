package models

// QuestionType discriminates the two free-text question bank categories.
type QuestionType string

const (
	QuestionTypeIA  QuestionType = "IA"
	QuestionTypeESE QuestionType = "ESE"
)

// GenerationMode selects between a fresh generation and an amendment of a
// prior result.
type GenerationMode string

const (
	ModeInitial GenerationMode = "initial"
	ModeEdit    GenerationMode = "edit"
)

// QuestionCounts carries the exact per-category question counts for the
// question bank family. Only the pair matching the question type is consulted.
type QuestionCounts struct {
	IA2Marks   int `json:"ia2marks" validate:"min=0,max=50"`
	IA5Marks   int `json:"ia5marks" validate:"min=0,max=50"`
	ESE5Marks  int `json:"ese5marks" validate:"min=0,max=50"`
	ESE10Marks int `json:"ese10marks" validate:"min=0,max=50"`
}

// TotalFor returns the summed count for one question type family.
func (c QuestionCounts) TotalFor(qt QuestionType) int {
	if qt == QuestionTypeESE {
		return c.ESE5Marks + c.ESE10Marks
	}
	return c.IA2Marks + c.IA5Marks
}

// MCQItem is one multiple-choice question as returned by the generation
// service. Items are validated individually at commit time; a proposed list
// may still contain malformed entries.
type MCQItem struct {
	QuestionText string   `json:"questiontext"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Feedback     string   `json:"feedback,omitempty"`
}

// QuizSettings carries the structured-quiz generation knobs.
type QuizSettings struct {
	QuizName         string  `json:"quizname" validate:"required,min=1,max=254"`
	NumQuestions     int     `json:"numquestions" validate:"required,min=1,max=50"`
	MarksPerQuestion float64 `json:"marksperquestion" validate:"min=0"`
	TimeLimitMinutes int     `json:"timelimitminutes" validate:"min=0"`
	Instructions     string  `json:"instructions"`
}
