package llm

import (
	"LexNote/config"
	"LexNote/pkg/log"
	"LexNote/types"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultModel = "gpt-4o-mini"

// Client 封装出题用的大模型调用，限流器归它所有，不放全局变量
type Client struct {
	client  openai.Client
	model   string
	limiter *rate.Limiter
}

func NewClient(cfg *config.OpenAI) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.ApiKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	qps := cfg.RateQPS
	if qps <= 0 {
		qps = 0.2 // 默认 5 秒一个请求
	}

	return &Client{
		client:  openai.NewClient(opts...),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(qps), 1),
	}
}

// GenQuiz 根据学习材料出 numQuestions 道选择题。
// 限流等待受 ctx 约束，模型输出解析失败返回错误，由上层决定兜底。
func (c *Client) GenQuiz(ctx context.Context, material string, numQuestions int) ([]types.QuizQuestion, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are a legal studies tutor. Create a %d-question multiple choice quiz based on the following content.
For each question provide:
1. A clear, well-formatted question
2. 4 possible answers
3. The index of the correct answer (0-3)
4. A brief explanation of why the answer is correct

Content to base the quiz on:
%s

Respond with only a JSON object of the form:
{"questions": [{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": 0, "explanation": "..."}]}`,
		numQuestions, material)

	startTime := time.Now()
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a helpful legal studies tutor that creates educational quizzes."),
			openai.UserMessage(prompt),
		},
	}
	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to gen quiz", zap.Error(err))
		return nil, err
	}
	content := completion.Choices[0].Message.Content
	log.L.Info("gen quiz", zap.Int("chars", len(content)), zap.Duration("gen time", time.Since(startTime)))

	questions := ParseQuiz(content)
	if len(questions) == 0 {
		return nil, fmt.Errorf("llm: no questions parsed from model output")
	}
	return questions, nil
}

// ParseQuiz 宽松解析模型输出，模型偶尔会在 JSON 外再包一段文字
func ParseQuiz(input string) []types.QuizQuestion {
	result := gjson.Get(input, "questions")
	if !result.Exists() {
		// 掐头去尾取出 JSON 对象再试一次
		start := strings.Index(input, "{")
		end := strings.LastIndex(input, "}")
		if start < 0 || end <= start {
			return nil
		}
		result = gjson.Get(input[start:end+1], "questions")
		if !result.Exists() {
			return nil
		}
	}

	var questions []types.QuizQuestion
	now := time.Now().Unix()
	result.ForEach(func(_, q gjson.Result) bool {
		opts := make([]string, 0, 4)
		q.Get("options").ForEach(func(_, o gjson.Result) bool {
			opts = append(opts, o.String())
			return true
		})
		if q.Get("question").String() == "" || len(opts) < 2 {
			return true // 跳过残缺的题
		}
		questions = append(questions, types.QuizQuestion{
			ID:            fmt.Sprintf("q_%d_%d", now, len(questions)),
			Question:      q.Get("question").String(),
			Options:       opts,
			CorrectAnswer: int(q.Get("correctAnswer").Int()),
			Explanation:   q.Get("explanation").String(),
		})
		return true
	})
	return questions
}
