package llm

import "testing"

const sampleOutput = `{
  "questions": [
    {
      "question": "What is consideration?",
      "options": ["A gift", "Something of value exchanged", "A court order", "A statute"],
      "correctAnswer": 1,
      "explanation": "Consideration is the value each party gives."
    },
    {
      "question": "What does ultra vires mean?",
      "options": ["Beyond the powers", "Within the powers", "By force", "No options"],
      "correctAnswer": 0,
      "explanation": "Acts beyond legal authority."
    }
  ]
}`

func TestParseQuiz(t *testing.T) {
	questions := ParseQuiz(sampleOutput)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	q := questions[0]
	if q.Question != "What is consideration?" {
		t.Fatalf("question = %q", q.Question)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer != 1 {
		t.Fatalf("correctAnswer = %d", q.CorrectAnswer)
	}
	if q.ID == "" || questions[1].ID == q.ID {
		t.Fatalf("question ids should be unique and non-empty: %q %q", q.ID, questions[1].ID)
	}
}

// 模型经常在 JSON 外再套一段客套话
func TestParseQuiz_WrappedInProse(t *testing.T) {
	input := "Here is your quiz:\n" + sampleOutput + "\nGood luck!"
	questions := ParseQuiz(input)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions from wrapped output, got %d", len(questions))
	}
}

func TestParseQuiz_SkipsBrokenQuestions(t *testing.T) {
	input := `{"questions": [
		{"question": "", "options": ["a", "b"], "correctAnswer": 0},
		{"question": "valid?", "options": ["only one"]},
		{"question": "Which court is highest?", "options": ["High Court", "Supreme Court", "District", "Magistrates"], "correctAnswer": 1}
	]}`
	questions := ParseQuiz(input)
	if len(questions) != 1 {
		t.Fatalf("expected only the well-formed question, got %d", len(questions))
	}
	if questions[0].Question != "Which court is highest?" {
		t.Fatalf("wrong question survived: %q", questions[0].Question)
	}
}

func TestParseQuiz_Garbage(t *testing.T) {
	for _, input := range []string{"", "not json at all", `{"answers": []}`} {
		if got := ParseQuiz(input); len(got) != 0 {
			t.Fatalf("input %q: expected no questions, got %d", input, len(got))
		}
	}
}
