package service

import (
	"LexNote/dao"
	"LexNote/models"
	"LexNote/pkg/llm"
	"LexNote/pkg/log"
	"LexNote/pkg/response"
	"LexNote/pkg/sessionstore"
	"LexNote/pkg/snowflake"
	"LexNote/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	testMaxQuestions = 15 // 规则测验最多出 15 道
	testEntrySample  = 20
	testNoteSample   = 5

	quizDefaultNum = 5
	quizMaxNum     = 10
	quizNoteLimit  = 10
	quizTermLimit  = 20

	sessionTTL = time.Hour
)

type QuizService struct {
	EntryDAO *dao.EntryDAO
	NoteDAO  *dao.NoteDAO
	LLM      *llm.Client
	Sessions sessionstore.Store
}

var _ IQuizService = (*QuizService)(nil)

type IQuizService interface {
	GenerateTest(ctx context.Context, unitNumber int) (*types.GenerateTestResp, error)
	StartQuiz(ctx context.Context, userID int64, req *types.StartQuizReq) (*types.StartQuizResp, error)
	GetQuiz(ctx context.Context, userID int64, sessionID string) (*types.GetQuizResp, error)
	SubmitQuiz(ctx context.Context, userID int64, req *types.SubmitQuizReq) (*types.SubmitQuizResp, error)
}

// GenerateTest 规则出题：随机抽单元内词条和笔记，拼四类题型后打乱，最多 15 道
func (s *QuizService) GenerateTest(ctx context.Context, unitNumber int) (*types.GenerateTestResp, error) {
	entries, err := s.EntryDAO.FindRandomByUnit(ctx, unitNumber, testEntrySample)
	if err != nil {
		return nil, err
	}
	notes, err := s.NoteDAO.FindRandomByUnit(ctx, unitNumber, testNoteSample)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 && len(notes) == 0 {
		return nil, response.NewError(http.StatusNotFound, "该单元没有可出题的内容")
	}

	questions := make([]types.TestQuestion, 0, testMaxQuestions)
	questions = append(questions, definitionQuestions(entries)...)
	questions = append(questions, fillBlankQuestions(entries)...)
	questions = append(questions, multipleChoiceQuestions(entries)...)
	questions = append(questions, noteRecallQuestions(notes)...)

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > testMaxQuestions {
		questions = questions[:testMaxQuestions]
	}

	return &types.GenerateTestResp{
		UnitNumber: unitNumber,
		Questions:  questions,
	}, nil
}

// definitionQuestions 给定义问词
func definitionQuestions(entries []*models.Entry) []types.TestQuestion {
	qs := make([]types.TestQuestion, 0, len(entries))
	for _, e := range entries {
		if e.Definition == "" {
			continue
		}
		qs = append(qs, types.TestQuestion{
			Type:     "definition",
			Question: fmt.Sprintf("What term matches this definition: \"%s\"?", e.Definition),
			Answer:   e.WordPhrase,
		})
	}
	return qs
}

// fillBlankQuestions 把例句里的词挖空，例句里没出现该词的跳过
func fillBlankQuestions(entries []*models.Entry) []types.TestQuestion {
	qs := make([]types.TestQuestion, 0)
	for _, e := range entries {
		if e.Example == "" {
			continue
		}
		lower := strings.ToLower(e.Example)
		idx := strings.Index(lower, strings.ToLower(e.WordPhrase))
		if idx < 0 {
			continue
		}
		blanked := e.Example[:idx] + "_____" + e.Example[idx+len(e.WordPhrase):]
		qs = append(qs, types.TestQuestion{
			Type:     "fill_blank",
			Question: fmt.Sprintf("Fill in the blank: %s", blanked),
			Answer:   e.WordPhrase,
		})
	}
	return qs
}

// multipleChoiceQuestions 正确定义 + 3 个其他词条的定义做干扰项，凑不够 4 个定义就不出
func multipleChoiceQuestions(entries []*models.Entry) []types.TestQuestion {
	defs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Definition != "" {
			defs = append(defs, e.Definition)
		}
	}
	if len(defs) < 4 {
		return nil
	}

	qs := make([]types.TestQuestion, 0)
	for _, e := range entries {
		if e.Definition == "" {
			continue
		}
		options := []string{e.Definition}
		perm := rand.Perm(len(defs))
		for _, i := range perm {
			if len(options) == 4 {
				break
			}
			if defs[i] != e.Definition {
				options = append(options, defs[i])
			}
		}
		if len(options) < 4 {
			continue
		}
		rand.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		qs = append(qs, types.TestQuestion{
			Type:     "multiple_choice",
			Question: fmt.Sprintf("Which definition matches \"%s\"?", e.WordPhrase),
			Answer:   e.Definition,
			Options:  options,
		})
	}
	return qs
}

// noteRecallQuestions 按笔记标题出简答题
func noteRecallQuestions(notes []*models.Note) []types.TestQuestion {
	qs := make([]types.TestQuestion, 0, len(notes))
	for _, n := range notes {
		if n.Content == "" {
			continue
		}
		qs = append(qs, types.TestQuestion{
			Type:     "short_answer",
			Question: fmt.Sprintf("Summarise the key points of the note \"%s\".", n.Title),
			Answer:   n.Content,
		})
	}
	return qs
}

// StartQuiz 汇总单元材料让模型出题，建会话存入会话存储，答案只留在服务端
func (s *QuizService) StartQuiz(ctx context.Context, userID int64, req *types.StartQuizReq) (*types.StartQuizResp, error) {
	num := req.NumQuestions
	if num <= 0 {
		num = quizDefaultNum
	}
	if num > quizMaxNum {
		num = quizMaxNum
	}

	material, err := s.buildMaterial(ctx, req.UnitNumber)
	if err != nil {
		return nil, err
	}
	if material == "" {
		return nil, response.NewError(http.StatusNotFound, "该单元没有可出题的内容")
	}

	questions, err := s.LLM.GenQuiz(ctx, material, num)
	if err != nil {
		log.L.Error("gen quiz failed", zap.Int("unit", req.UnitNumber), zap.Error(err))
		return nil, response.NewError(http.StatusInternalServerError, "出题失败，请稍后再试")
	}

	session := &types.QuizSession{
		SessionID:      snowflake.GenSessionID(),
		UserID:         userID,
		Questions:      questions,
		Answers:        make(map[string]int),
		TotalQuestions: len(questions),
		StartedAt:      time.Now(),
	}
	if err := s.putSession(ctx, session); err != nil {
		return nil, err
	}

	return &types.StartQuizResp{
		SessionID:      session.SessionID,
		TotalQuestions: session.TotalQuestions,
	}, nil
}

// GetQuiz 下发题面，正确答案和解析不出服务端
func (s *QuizService) GetQuiz(ctx context.Context, userID int64, sessionID string) (*types.GetQuizResp, error) {
	session, err := s.getSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]types.QuizQuestionItem, 0, len(session.Questions))
	for _, q := range session.Questions {
		items = append(items, types.QuizQuestionItem{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
			Type:     "multiple_choice",
		})
	}
	return &types.GetQuizResp{
		Questions:      items,
		TotalQuestions: session.TotalQuestions,
	}, nil
}

// SubmitQuiz 用会话里存的正确下标判分，提交过的会话不允许再交
func (s *QuizService) SubmitQuiz(ctx context.Context, userID int64, req *types.SubmitQuizReq) (*types.SubmitQuizResp, error) {
	session, err := s.getSession(ctx, userID, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, response.NewError(http.StatusBadRequest, "测验已提交过")
	}

	score := 0
	for _, q := range session.Questions {
		answer, ok := req.Answers[q.ID]
		if !ok {
			continue
		}
		session.Answers[q.ID] = answer
		if answer == q.CorrectAnswer {
			score++
		}
	}

	session.Score = score
	session.Completed = true
	session.CompletedAt = time.Now()
	if err := s.putSession(ctx, session); err != nil {
		return nil, err
	}

	return &types.SubmitQuizResp{
		Score:          score,
		TotalQuestions: session.TotalQuestions,
		Completed:      true,
	}, nil
}

// buildMaterial 拼出题上下文：前 10 篇笔记 + 前 20 个词条
func (s *QuizService) buildMaterial(ctx context.Context, unitNumber int) (string, error) {
	notes, err := s.NoteDAO.FindByUnit(ctx, unitNumber)
	if err != nil {
		return "", err
	}
	entries, err := s.EntryDAO.FindByUnit(ctx, unitNumber)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, n := range notes {
		if i == quizNoteLimit {
			break
		}
		fmt.Fprintf(&b, "Note: %s\n%s\n\n", n.Title, n.Content)
	}
	for i, e := range entries {
		if i == quizTermLimit {
			break
		}
		fmt.Fprintf(&b, "Term: %s\nDefinition: %s\n", e.WordPhrase, e.Definition)
		if e.Example != "" {
			fmt.Fprintf(&b, "Example: %s\n", e.Example)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

func (s *QuizService) putSession(ctx context.Context, session *types.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Sessions.Put(ctx, session.SessionID, data, sessionTTL)
}

// getSession 取不到、过期、或不是本人发起的都按不存在处理
func (s *QuizService) getSession(ctx context.Context, userID int64, sessionID string) (*types.QuizSession, error) {
	data, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return nil, response.NewError(http.StatusNotFound, "测验会话不存在或已过期")
		}
		return nil, err
	}

	var session types.QuizSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, response.NewError(http.StatusNotFound, "测验会话不存在或已过期")
	}
	return &session, nil
}
