package types

import "time"

// QuizQuestion 单道选择题，CorrectAnswer 是选项下标
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuizSession 一次测验的全部状态，存在会话存储里
type QuizSession struct {
	SessionID      string         `json:"session_id"`
	UserID         int64          `json:"user_id"`
	Questions      []QuizQuestion `json:"questions"`
	Answers        map[string]int `json:"answers"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	StartedAt      time.Time      `json:"started_at"`
	CompletedAt    time.Time      `json:"completed_at"`
	Completed      bool           `json:"completed"`
}

// StartQuizReq 开始 AI 测验
type StartQuizReq struct {
	UnitNumber   int `json:"unit_number"`
	NumQuestions int `json:"num_questions"`
}

type StartQuizResp struct {
	SessionID      string `json:"session_id"`
	TotalQuestions int    `json:"total_questions"`
}

// QuizQuestionItem 下发给前端的题目，不带答案
type QuizQuestionItem struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Type     string   `json:"type"`
}

type GetQuizResp struct {
	Questions      []QuizQuestionItem `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// SubmitQuizReq 提交答案，键是题目 ID，值是选项下标
type SubmitQuizReq struct {
	SessionID string         `json:"session_id" binding:"required"`
	Answers   map[string]int `json:"answers" binding:"required"`
}

type SubmitQuizResp struct {
	Score          int  `json:"score"`
	TotalQuestions int  `json:"total_questions"`
	Completed      bool `json:"completed"`
}

// TestQuestion 规则生成的测验题（非 AI），type 区分题型
type TestQuestion struct {
	Type     string   `json:"type"` // definition / fill_blank / multiple_choice / short_answer
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options"`
}

type GenerateTestResp struct {
	UnitNumber int            `json:"unit_number"`
	Questions  []TestQuestion `json:"questions"`
}
