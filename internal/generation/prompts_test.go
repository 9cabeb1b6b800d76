package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuskit/coursegen-service/internal/models"
)

func testCourse() *models.Course {
	return &models.Course{
		ID:        42,
		FullName:  "Data Structures and Algorithms",
		ShortName: "CS201",
		Visible:   true,
	}
}

func TestQuestionBankTitle(t *testing.T) {
	assert.Equal(t, "CS201 - IA QUESTION BANK",
		QuestionBankTitle("CS201", models.QuestionTypeIA))
	assert.Equal(t, "CS201 - ESE QUESTION BANK",
		QuestionBankTitle("CS201", models.QuestionTypeESE))
}

func TestCompileQuestionBankPrompts_InitialMode(t *testing.T) {
	system, user := CompileQuestionBankPrompts(QuestionBankPromptInput{
		Course:       testCourse(),
		QuestionType: models.QuestionTypeIA,
		Counts:       models.QuestionCounts{IA2Marks: 4, IA5Marks: 6},
		Mode:         models.ModeInitial,
		Context: BuildContext([]SourceDoc{
			{File: &models.StoredFile{Name: "trees.pdf", Path: "/w1/"}, SectionName: "Trees"},
		}),
	})

	assert.Contains(t, system, `"CS201 - IA QUESTION BANK"`)
	assert.Contains(t, system, "Trees, trees")

	assert.Contains(t, user, "MODE: initial")
	assert.Contains(t, user, "EXACT 2-mark questions: 4")
	assert.Contains(t, user, "EXACT 5-mark questions: 6")
	assert.NotContains(t, user, "EXACT 10-mark questions")
	assert.Contains(t, user, "- trees.pdf (Section: Trees, Path: /w1/)")
	assert.NotContains(t, user, "Previous Question Bank")
}

func TestCompileQuestionBankPrompts_EditModeCarriesPreviousText(t *testing.T) {
	previous := "CS201 - IA QUESTION BANK\n\nQ1 (2 marks): Define a binary tree."

	_, user := CompileQuestionBankPrompts(QuestionBankPromptInput{
		Course:       testCourse(),
		QuestionType: models.QuestionTypeIA,
		Counts:       models.QuestionCounts{IA2Marks: 4, IA5Marks: 6},
		Instructions: "add two questions on AVL trees",
		Mode:         models.ModeEdit,
		Previous:     previous,
		Context:      BuildContext(nil),
	})

	assert.Contains(t, user, "MODE: edit")
	assert.Contains(t, user, "Previous Question Bank:\n"+previous)
	assert.Contains(t, user, "add two questions on AVL trees")
}

func TestCompileQuestionBankPrompts_ESECounts(t *testing.T) {
	_, user := CompileQuestionBankPrompts(QuestionBankPromptInput{
		Course:       testCourse(),
		QuestionType: models.QuestionTypeESE,
		Counts:       models.QuestionCounts{ESE5Marks: 5, ESE10Marks: 3},
		Mode:         models.ModeInitial,
		Context:      BuildContext(nil),
	})

	assert.Contains(t, user, "EXACT 5-mark questions: 5")
	assert.Contains(t, user, "EXACT 10-mark questions: 3")
	assert.NotContains(t, user, "EXACT 2-mark questions")
}

func TestCompileQuizPrompts(t *testing.T) {
	system, user := CompileQuizPrompts(QuizPromptInput{
		Course: testCourse(),
		Settings: models.QuizSettings{
			QuizName:         "Week 3 Quiz",
			NumQuestions:     10,
			MarksPerQuestion: 2,
			TimeLimitMinutes: 30,
			Instructions:     "focus on traversal orders",
		},
		Context: BuildContext([]SourceDoc{
			{File: &models.StoredFile{Name: "trees.pdf"}, SectionName: "Trees", Text: "inorder preorder postorder"},
		}),
	})

	assert.Contains(t, system, `single key "questions"`)
	assert.Contains(t, system, `"options": array of exactly 4 short answer strings.`)

	assert.Contains(t, user, "Generate exactly 10 single-best-answer")
	assert.Contains(t, user, "Quiz name: Week 3 Quiz")
	assert.Contains(t, user, "Marks per question: 2")
	assert.Contains(t, user, "Time limit (minutes): 30")
	assert.Contains(t, user, "focus on traversal orders")
	assert.Contains(t, user, "FILE: trees.pdf\ninorder preorder postorder")
}

func TestCompileQuizPrompts_OmitsOptionalDetails(t *testing.T) {
	_, user := CompileQuizPrompts(QuizPromptInput{
		Course: testCourse(),
		Settings: models.QuizSettings{
			QuizName:         "Pop Quiz",
			NumQuestions:     5,
			MarksPerQuestion: 1,
		},
		Context: BuildContext(nil),
	})

	assert.False(t, strings.Contains(user, "Time limit"))
	assert.False(t, strings.Contains(user, "Teacher instructions"))
	assert.False(t, strings.Contains(user, "Selected files:"))
	assert.Contains(t, user, noFileContent)
}
