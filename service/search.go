package service

import (
	"LexNote/pkg/database"
	"LexNote/pkg/highlight"
	"LexNote/pkg/log"
	"LexNote/pkg/sqlbuild"
	"context"
	"regexp"
	"strings"
	"sync"

	"LexNote/types"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// 详细搜索上限
	searchLimit = 50
	// 聚合搜索每个集合的预览上限
	unifiedLimit = 10
	// 相关词条上限
	relatedLimit = 5
	// 参与匹配的词数上限
	maxTerms = 3
	// 短于这个长度的词当噪音丢掉
	minTermLen = 3

	snippetWindow   = 50
	snippetFallback = 150
	previewLen      = 200
)

var wordRe = regexp.MustCompile(`\w+`)

type SearchService struct {
	DictDB  database.DictDB
	NotesDB database.NotesDB
}

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	// SearchEntries 词典详细搜索，带优先级分层排序
	SearchEntries(ctx context.Context, query string) ([]types.SearchDictItem, error)

	// SearchNotes 笔记搜索，带命中摘要
	SearchNotes(ctx context.Context, query string) ([]types.SearchNoteItem, error)

	// UnifiedSearch 词典+笔记聚合预览，单边失败不影响另一边
	UnifiedSearch(ctx context.Context, query string) *types.UnifiedSearchResult

	// RelatedTerms 词条详情页的相关词条
	RelatedTerms(ctx context.Context, wordPhrase string, excludeID int64) []types.RelatedTerm
}

// tokenize 按非单词边界切词、转小写，丢掉过短的词，最多取 maxTerms 个
func tokenize(query string) []string {
	raw := wordRe.FindAllString(strings.ToLower(query), -1)
	tokens := make([]string, 0, maxTerms)
	for _, t := range raw {
		if len(t) < minTermLen {
			continue
		}
		tokens = append(tokens, t)
		if len(tokens) == maxTerms {
			break
		}
	}
	return tokens
}

// SearchEntries 单词查询和多词查询走不同的条件组合，排序都是：
// 精确命中 word_phrase > 前缀命中 word_phrase > 其他命中，再按词组长度、字母序。
func (s *SearchService) SearchEntries(ctx context.Context, query string) ([]types.SearchDictItem, error) {
	query = strings.TrimSpace(query)
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return []types.SearchDictItem{}, nil
	}

	fields := []string{"word_phrase", "definition", "example"}

	b := &sqlbuild.Builder{}
	var rankExact, rankPrefix string

	if len(tokens) == 1 && !strings.ContainsAny(query, " \t") {
		// 单词：每个字段建精确和包含两个条件。
		// 包含已经覆盖前缀，前缀只保留在排序分层里。
		term := tokens[0]
		for _, f := range fields {
			b.Add(f+" = ?", term)
			b.Add(f+" LIKE ?", "%"+term+"%")
		}
		rankExact, rankPrefix = term, term+"%"
	} else {
		// 多词/短语：整个短语的精确和包含，再加每个词的包含
		for _, f := range fields {
			b.Add(f+" = ?", query)
			b.Add(f+" LIKE ?", "%"+query+"%")
		}
		for _, t := range tokens {
			for _, f := range fields {
				b.Add(f+" LIKE ?", "%"+t+"%")
			}
		}
		rankExact, rankPrefix = query, query+"%"
	}

	where, whereArgs := b.JoinOr()

	// CASE 在 SELECT 里，参数顺序先于 WHERE
	sql := `
		SELECT id, word_phrase, definition, example,
		       CASE
		           WHEN word_phrase = ? THEN 1
		           WHEN word_phrase LIKE ? THEN 2
		           ELSE 3
		       END AS priority
		FROM entries
		WHERE ` + where + `
		ORDER BY priority ASC, LENGTH(word_phrase) ASC, word_phrase ASC
		LIMIT ?`

	args := make([]interface{}, 0, len(whereArgs)+3)
	args = append(args, rankExact, rankPrefix)
	args = append(args, whereArgs...)
	args = append(args, searchLimit)

	var items []types.SearchDictItem
	if err := s.DictDB.WithContext(ctx).Raw(sql, args...).Scan(&items).Error; err != nil {
		log.L.Error("dictionary search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	if items == nil {
		items = []types.SearchDictItem{}
	}
	return items, nil
}

// SearchNotes 标题命中优先于正文命中，同层按更新时间倒序
func (s *SearchService) SearchNotes(ctx context.Context, query string) ([]types.SearchNoteItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []types.SearchNoteItem{}, nil
	}

	b := &sqlbuild.Builder{}
	for _, term := range strings.Fields(query) {
		b.Add("(title LIKE ? OR content LIKE ?)", "%"+term+"%", "%"+term+"%")
	}
	if b.Empty() {
		return []types.SearchNoteItem{}, nil
	}
	where, whereArgs := b.JoinOr()

	sql := `
		SELECT id, title, content,
		       strftime('%Y-%m-%d %H:%M', last_updated) AS last_updated,
		       CASE WHEN title LIKE ? THEN 1 ELSE 2 END AS priority
		FROM notes
		WHERE ` + where + `
		ORDER BY priority ASC, last_updated DESC
		LIMIT ?`

	args := make([]interface{}, 0, len(whereArgs)+2)
	args = append(args, "%"+query+"%")
	args = append(args, whereArgs...)
	args = append(args, searchLimit)

	var rows []types.SearchNoteItem
	if err := s.NotesDB.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		log.L.Error("notes search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	for i := range rows {
		rows[i].Snippet = highlight.Snippet(rows[i].Content, query, snippetWindow, snippetFallback)
	}
	if rows == nil {
		rows = []types.SearchNoteItem{}
	}
	return rows, nil
}

// UnifiedSearch 两个集合用弱化的条件各查一遍，结果并列返回。
// 任何一边查询失败只记日志，该集合给空列表，不让整个请求挂掉。
func (s *SearchService) UnifiedSearch(ctx context.Context, query string) *types.UnifiedSearchResult {
	result := &types.UnifiedSearchResult{
		Query:             query,
		DictionaryResults: []types.UnifiedDictItem{},
		NotesResults:      []types.UnifiedNoteItem{},
	}

	// 过滤噪音词后重组，全是短词就直接空结果
	words := make([]string, 0)
	for _, w := range strings.Fields(query) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return result
	}
	clean := strings.Join(words, " ")
	pattern := "%" + strings.ToLower(clean) + "%"

	var (
		g  errgroup.Group
		mu sync.Mutex
	)

	g.Go(func() error {
		var items []types.UnifiedDictItem
		err := s.DictDB.WithContext(ctx).Raw(`
			SELECT id, word_phrase, definition
			FROM entries
			WHERE LOWER(word_phrase) LIKE ? OR LOWER(definition) LIKE ?
			LIMIT ?`, pattern, pattern, unifiedLimit).Scan(&items).Error
		if err != nil {
			log.L.Error("unified search: dictionary failed", zap.String("query", clean), zap.Error(err))
			return nil
		}
		for i := range items {
			items[i].WordPhrase = highlight.Mark(items[i].WordPhrase, clean)
			items[i].Definition = highlight.Mark(highlight.Truncate(items[i].Definition, previewLen), clean)
		}
		mu.Lock()
		result.DictionaryResults = items
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		var items []types.UnifiedNoteItem
		err := s.NotesDB.WithContext(ctx).Raw(`
			SELECT id, title, content
			FROM notes
			WHERE LOWER(title) LIKE ? OR LOWER(content) LIKE ?
			LIMIT ?`, pattern, pattern, unifiedLimit).Scan(&items).Error
		if err != nil {
			log.L.Error("unified search: notes failed", zap.String("query", clean), zap.Error(err))
			return nil
		}
		for i := range items {
			items[i].Title = highlight.Mark(items[i].Title, clean)
			items[i].Content = highlight.Mark(highlight.Truncate(items[i].Content, previewLen), clean)
		}
		mu.Lock()
		result.NotesResults = items
		mu.Unlock()
		return nil
	})

	_ = g.Wait()

	if result.DictionaryResults == nil {
		result.DictionaryResults = []types.UnifiedDictItem{}
	}
	if result.NotesResults == nil {
		result.NotesResults = []types.UnifiedNoteItem{}
	}
	return result
}

// RelatedTerms 用词组里的关键词找同族词条。
// relevance 是词组互为子串的粗略共现计数，不是相似度。
func (s *SearchService) RelatedTerms(ctx context.Context, wordPhrase string, excludeID int64) []types.RelatedTerm {
	tokens := tokenize(wordPhrase)
	if len(tokens) == 0 {
		return []types.RelatedTerm{}
	}

	b := &sqlbuild.Builder{}
	for _, kw := range tokens {
		b.Add("(word_phrase LIKE ? OR definition LIKE ?)", "%"+kw+"%", "%"+kw+"%")
	}
	where, whereArgs := b.JoinOr()

	sql := `
		SELECT id, word_phrase, definition,
		       (SELECT COUNT(*) FROM entries e2 WHERE e2.id != entries.id
		        AND (e2.word_phrase LIKE '%' || entries.word_phrase || '%'
		             OR entries.word_phrase LIKE '%' || e2.word_phrase || '%')) AS relevance
		FROM entries
		WHERE ` + where + ` AND id != ?
		ORDER BY relevance DESC, LENGTH(word_phrase) ASC
		LIMIT ?`

	args := make([]interface{}, 0, len(whereArgs)+2)
	args = append(args, whereArgs...)
	args = append(args, excludeID, relatedLimit)

	var terms []types.RelatedTerm
	if err := s.DictDB.WithContext(ctx).Raw(sql, args...).Scan(&terms).Error; err != nil {
		log.L.Error("related terms lookup failed", zap.String("word_phrase", wordPhrase), zap.Error(err))
		return []types.RelatedTerm{}
	}
	if terms == nil {
		terms = []types.RelatedTerm{}
	}
	return terms
}
