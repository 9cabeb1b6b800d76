package generation

import (
	"fmt"
	"strings"

	"github.com/campuskit/coursegen-service/internal/models"
)

// QuestionBankTitle is the mandatory first line of every generated bank.
func QuestionBankTitle(shortName string, qt models.QuestionType) string {
	return fmt.Sprintf("%s - %s QUESTION BANK", shortName, qt)
}

// QuestionBankPromptInput carries everything the question-bank prompt family
// needs. Previous is only consulted when Mode is ModeEdit.
type QuestionBankPromptInput struct {
	Course       *models.Course
	QuestionType models.QuestionType
	Counts       models.QuestionCounts
	Instructions string
	Mode         models.GenerationMode
	Previous     string
	Context      Context
}

// CompileQuestionBankPrompts renders the system and user prompts for a
// question-bank request. The bank family is steered by file titles and
// section names only; raw file content never enters these prompts.
func CompileQuestionBankPrompts(in QuestionBankPromptInput) (system, user string) {
	title := QuestionBankTitle(in.Course.ShortName, in.QuestionType)

	system = fmt.Sprintf(`You are a Question Bank generator for a university course on '%s'.

HARD RULES (MUST OBEY EXACTLY):
- ALWAYS add a TITLE at the top in the following strict format:
  "%s"
- Leave one empty line after the title.
- You are told how many questions of each mark to generate (for example, 4 x 2-mark, 6 x 5-mark).
- You MUST generate exactly that many questions for each mark category.
- Do NOT add extra questions, do NOT omit questions.
- Each question MUST be clearly labelled like: Q1 (2 marks): ...
- Group questions by marks (all 2-mark together, then all 5-mark, then all 10-mark if any).
- Do NOT include answers or explanations, only questions.

TOPIC / FILE RULES:
- From section names and file titles, infer topic groups (e.g. Trees, Strings, Greedy).
- Use these topics as the main themes of the questions.
- If there is more than one topic and the total number of questions in a marks group allows it,
  include questions from multiple topics in that group instead of only one.
- You are given SECTION NAMES and FILE TITLES (from PDFs, PPTs, DOCs).
- Treat these names as the PRIMARY source of topic information.
- You are also given an ALLOWED TOPIC LIST:
  %s
- You MUST restrict all questions to these topics and closely related sub-ideas.
- You MUST NOT introduce new big topics that are clearly outside this list.
- If the extracted content or topic list is very small, it is acceptable to reuse and slightly rephrase ideas,
  but still stay within these topics.

TEACHER PREFERENCES:
- Phrases like "focus on trees" mean:
  - Give that topic a larger share of questions than others,
  - BUT still include questions from other topics unless the teacher clearly says ONLY that topic.
- If the teacher later says "Don't just focus on trees" or similar, rebalance so other topics also appear.

EDIT MODE:
- MODE may be 'initial' or 'edit'.
- In 'edit' mode you may receive the previous Question Bank text plus new instructions.
- In edit mode:
  - KEEP the same number of questions in each marks category unless the teacher changes the counts.
  - Apply only the requested changes (e.g. add 2 questions on bit manipulation, replace a tree question with a greedy one).
  - Preserve as many existing questions as possible and only modify what is necessary.

OUTPUT FORMAT (VERY IMPORTANT):
- Do NOT show your reasoning, steps, analysis, distributions, or bullet lists of how you think.
- Do NOT wrap the output in markdown fences like `+"```"+` or `+"```text"+`.
- ONLY output the final Question Bank text:
  - First line: the TITLE exactly in the required format.
  - Then a blank line.
  - Then the questions, one by one.
  - There should be a blank line between consecutive questions.`,
		in.Course.FullName, title, in.Context.TopicsLine)

	var detail strings.Builder
	fmt.Fprintf(&detail, "QUESTION TYPE: %s\n", in.QuestionType)
	fmt.Fprintf(&detail, "COURSE SHORTNAME: %s\n", in.Course.ShortName)
	fmt.Fprintf(&detail, "COURSE FULLNAME: %s\n", in.Course.FullName)
	switch in.QuestionType {
	case models.QuestionTypeIA:
		fmt.Fprintf(&detail, "EXACT 2-mark questions: %d\n", in.Counts.IA2Marks)
		fmt.Fprintf(&detail, "EXACT 5-mark questions: %d\n", in.Counts.IA5Marks)
	case models.QuestionTypeESE:
		fmt.Fprintf(&detail, "EXACT 5-mark questions: %d\n", in.Counts.ESE5Marks)
		fmt.Fprintf(&detail, "EXACT 10-mark questions: %d\n", in.Counts.ESE10Marks)
	}
	if in.Instructions != "" {
		fmt.Fprintf(&detail, "\nTeacher preferences / instructions:\n%s\n", in.Instructions)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "MODE: %s\n", in.Mode)
	fmt.Fprintf(&b, "Course: %s (%s)\n\n", in.Course.FullName, in.Course.ShortName)
	b.WriteString("Question Bank Settings:\n")
	b.WriteString(detail.String())
	fmt.Fprintf(&b, "\nALLOWED TOPICS (you must stay within these):\n%s\n\n", in.Context.TopicsLine)
	fmt.Fprintf(&b, "Selected notes/slides/files (titles as topic hints):\n%s\n", in.Context.FileSummary)
	if in.Mode == models.ModeEdit {
		prev := in.Previous
		if prev == "" {
			prev = "(no previous QB)"
		}
		fmt.Fprintf(&b, "\nPrevious Question Bank:\n%s\n", prev)
	}
	b.WriteString("\nGenerate the complete Question Bank text now, obeying ALL rules.")

	return system, b.String()
}

// QuizPromptInput carries everything the quiz prompt family needs. Unlike the
// bank family the quiz family feeds extracted file content to the model.
type QuizPromptInput struct {
	Course   *models.Course
	Settings models.QuizSettings
	Context  Context
}

// CompileQuizPrompts renders the system and user prompts for an MCQ quiz
// request. The model is instructed to reply with strict JSON only.
func CompileQuizPrompts(in QuizPromptInput) (system, user string) {
	system = `You are an assistant that generates multiple-choice quiz questions (MCQs) for university-level courses.

HARD RULES (VERY IMPORTANT):
- You must respond with STRICT JSON only, no markdown, no explanations, no commentary.
- The top-level JSON must be an object with a single key "questions".
- "questions" must be an array.
- Each element of "questions" must be an object with:
  - "questiontext": string, the question stem (no numbering).
  - "options": array of exactly 4 short answer strings.
  - "correct_index": integer from 0 to 3 (index into the options array).
  - "feedback": string (optional), brief explanation of the correct answer.

Do NOT:
- Do NOT add any text before or after the JSON object.
- Do NOT wrap the JSON in code fences like ` + "```json" + `.
- Do NOT include question numbers in "questiontext".`

	details := []string{
		fmt.Sprintf("Course: %s (%s)", in.Course.FullName, in.Course.ShortName),
		fmt.Sprintf("Quiz name: %s", in.Settings.QuizName),
		fmt.Sprintf("Number of questions: %d", in.Settings.NumQuestions),
		fmt.Sprintf("Marks per question: %g", in.Settings.MarksPerQuestion),
	}
	if in.Settings.TimeLimitMinutes > 0 {
		details = append(details, fmt.Sprintf("Time limit (minutes): %d", in.Settings.TimeLimitMinutes))
	}
	if in.Settings.Instructions != "" {
		details = append(details, fmt.Sprintf("Teacher instructions: %s", in.Settings.Instructions))
	}
	if in.Context.FileSummary != noFileTitles {
		details = append(details, "", "Selected files:", in.Context.FileSummary)
	}

	user = fmt.Sprintf(`Generate exactly %d single-best-answer multiple-choice questions for an online quiz.

Quiz and teacher details:
%s

CONTENT FROM FILES (PRIMARY SOURCE FOR CONCEPTS):
%s

You MUST output a SINGLE JSON object of this exact shape:

{
  "questions": [
    {
      "questiontext": "Question text here",
      "options": [
        "Option A",
        "Option B",
        "Option C",
        "Option D"
      ],
      "correct_index": 1,
      "feedback": "Short explanation for the correct answer (optional)"
    }
  ]
}

Rules:
- All questions must be answerable based on the above content/topics.
- "options" must always have exactly 4 elements.
- "correct_index" must be 0, 1, 2, or 3.
- Do NOT include any other keys at the top level besides "questions".`,
		in.Settings.NumQuestions, strings.Join(details, "\n"), in.Context.ContentBlock)

	return system, user
}
