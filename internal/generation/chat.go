package generation

// Chat modes select a system persona for the free-form assistant endpoint.
const (
	ChatModeAssistant = "assistant"
	ChatModeQB        = "qb"
	ChatModeQuiz      = "quiz"
)

const (
	chatAssistantSystemPrompt = "You are a helpful teaching assistant for an online course platform. Respond concisely and help with teaching tasks."

	chatQBSystemPrompt = "You are a question bank generator. Given a topic, create relevant questions, answers, and explanations."

	chatQuizSystemPrompt = `You generate multiple-choice quiz questions for classroom assessments.
Return questions in this exact format:
Q1. <question text>
a) <option A>
b) <option B>
c) <option C>
d) <option D>
Correct answer: <letter>

Do not include explanations or extra text.
Ensure each question and option are on separate lines.`
)

// ChatSystemPrompt returns the system prompt for a chat mode. Unknown modes
// fall back to the assistant persona.
func ChatSystemPrompt(mode string) string {
	switch mode {
	case ChatModeQB:
		return chatQBSystemPrompt
	case ChatModeQuiz:
		return chatQuizSystemPrompt
	default:
		return chatAssistantSystemPrompt
	}
}
