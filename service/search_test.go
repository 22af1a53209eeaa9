package service

import (
	"LexNote/models"
	"LexNote/pkg/database"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T, dst ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(dst...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newSearchService(t *testing.T) *SearchService {
	t.Helper()
	return &SearchService{
		DictDB:  database.DictDB{DB: openTestDB(t, &models.Entry{})},
		NotesDB: database.NotesDB{DB: openTestDB(t, &models.Note{}, &models.WorksheetImage{})},
	}
}

func seedEntries(t *testing.T, s *SearchService, entries ...*models.Entry) {
	t.Helper()
	for _, e := range entries {
		if err := s.DictDB.Create(e).Error; err != nil {
			t.Fatalf("seed entry %q: %v", e.WordPhrase, err)
		}
	}
}

func TestSearchEntries_ExactBeatsSubstring(t *testing.T) {
	s := newSearchService(t)
	seedEntries(t, s,
		&models.Entry{WordPhrase: "breach of contract", Definition: "failure to perform"},
		&models.Entry{WordPhrase: "contract", Definition: "a binding agreement"},
		&models.Entry{WordPhrase: "contractual capacity", Definition: "legal ability to contract"},
	)

	results, err := s.SearchEntries(context.Background(), "contract")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].WordPhrase != "contract" {
		t.Fatalf("expected exact match first, got %q", results[0].WordPhrase)
	}
	if results[0].Priority != 1 {
		t.Fatalf("expected priority 1 for exact match, got %d", results[0].Priority)
	}
}

// 词典搜索分层：精确 > 前缀 > 其他，同层按词组长度
func TestSearchEntries_TierOrdering(t *testing.T) {
	s := newSearchService(t)
	seedEntries(t, s,
		&models.Entry{WordPhrase: "social contract theory", Definition: "political philosophy"},
		&models.Entry{WordPhrase: "contract law", Definition: "governs agreements"},
		&models.Entry{WordPhrase: "contract", Definition: "a binding agreement"},
		&models.Entry{WordPhrase: "tort", Definition: "a civil wrong unlike a contract claim"},
	)

	results, err := s.SearchEntries(context.Background(), "contract")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	// 第三层内按 word_phrase 长度排序，定义命中的 tort 排在前面
	want := []string{"contract", "contract law", "tort", "social contract theory"}
	for i, w := range want {
		if results[i].WordPhrase != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, results[i].WordPhrase)
		}
	}
	if results[1].Priority != 2 {
		t.Fatalf("prefix match should be tier 2, got %d", results[1].Priority)
	}
	if results[2].Priority != 3 || results[3].Priority != 3 {
		t.Fatalf("substring matches should be tier 3, got %d and %d",
			results[2].Priority, results[3].Priority)
	}
}

func TestSearchEntries_MatchesDefinitionAndExample(t *testing.T) {
	s := newSearchService(t)
	seedEntries(t, s,
		&models.Entry{WordPhrase: "estoppel", Definition: "bars contradicting prior conduct"},
		&models.Entry{WordPhrase: "laches", Definition: "unreasonable delay", Example: "The estoppel defence failed but laches succeeded."},
	)

	results, err := s.SearchEntries(context.Background(), "estoppel")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected matches in word_phrase and example, got %d", len(results))
	}
	if results[0].WordPhrase != "estoppel" {
		t.Fatalf("expected exact match first, got %q", results[0].WordPhrase)
	}
}

func TestSearchEntries_EmptyQuery(t *testing.T) {
	s := newSearchService(t)
	seedEntries(t, s, &models.Entry{WordPhrase: "contract", Definition: "a binding agreement"})

	for _, q := range []string{"", "   ", "of", "a an"} {
		results, err := s.SearchEntries(context.Background(), q)
		if err != nil {
			t.Fatalf("query %q: unexpected error %v", q, err)
		}
		if len(results) != 0 {
			t.Fatalf("query %q: expected empty results, got %d", q, len(results))
		}
	}
}

func TestSearchEntries_LimitCap(t *testing.T) {
	s := newSearchService(t)
	for i := 0; i < 60; i++ {
		seedEntries(t, s, &models.Entry{
			WordPhrase: fmt.Sprintf("statute %03d", i),
			Definition: "a written law",
		})
	}

	results, err := s.SearchEntries(context.Background(), "statute")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != searchLimit {
		t.Fatalf("expected %d results, got %d", searchLimit, len(results))
	}
}

func TestSearchEntries_InsertThenSearch(t *testing.T) {
	s := newSearchService(t)
	seedEntries(t, s, &models.Entry{WordPhrase: "habeas corpus", Definition: "produce the body"})

	seedEntries(t, s, &models.Entry{WordPhrase: "subpoena", Definition: "order to appear"})
	results, err := s.SearchEntries(context.Background(), "subpoena")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].WordPhrase != "subpoena" || results[0].Priority != 1 {
		t.Fatalf("fresh entry should come back at tier 1, got %+v", results)
	}
}

func TestSearchEntries_MultiTermPhrase(t *testing.T) {
	s := newSearchService(t)
	seedEntries(t, s,
		&models.Entry{WordPhrase: "burden of proof", Definition: "obligation to prove allegations"},
		&models.Entry{WordPhrase: "proof", Definition: "evidence establishing a fact"},
		&models.Entry{WordPhrase: "burden", Definition: "a duty or responsibility"},
	)

	results, err := s.SearchEntries(context.Background(), "burden of proof")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected phrase and per-token matches, got %d", len(results))
	}
	if results[0].WordPhrase != "burden of proof" {
		t.Fatalf("expected exact phrase match first, got %q", results[0].WordPhrase)
	}
}

func TestSearchNotes_SnippetAndOrdering(t *testing.T) {
	s := newSearchService(t)
	longBody := strings.Repeat("x", 300) + " negligence appears here " + strings.Repeat("y", 300)
	notes := []*models.Note{
		{Title: "Week 3", Content: longBody},
		{Title: "Negligence essentials", Content: "duty, breach, causation, damage"},
	}
	for _, n := range notes {
		if err := s.NotesDB.Create(n).Error; err != nil {
			t.Fatalf("seed note: %v", err)
		}
	}

	results, err := s.SearchNotes(context.Background(), "negligence")
	if err != nil {
		t.Fatalf("search notes: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// 标题命中排前面
	if results[0].Title != "Negligence essentials" {
		t.Fatalf("title match should rank first, got %q", results[0].Title)
	}
	// 正文命中给 ±50 字符摘要
	snippet := results[1].Snippet
	if !strings.Contains(snippet, "negligence") {
		t.Fatalf("snippet should contain the match, got %q", snippet)
	}
	if !strings.HasPrefix(snippet, "...") || !strings.HasSuffix(snippet, "...") {
		t.Fatalf("mid-document snippet should be elided on both sides, got %q", snippet)
	}
	if len(snippet) > 2*snippetWindow+len("negligence")+6 {
		t.Fatalf("snippet too long: %d chars", len(snippet))
	}
}

func TestSearchNotes_FallbackSnippet(t *testing.T) {
	s := newSearchService(t)
	body := strings.Repeat("z", 200)
	note := &models.Note{Title: "Equity remedies", Content: body}
	if err := s.NotesDB.Create(note).Error; err != nil {
		t.Fatalf("seed note: %v", err)
	}

	// 只有标题命中，正文走兜底摘要
	results, err := s.SearchNotes(context.Background(), "equity")
	if err != nil {
		t.Fatalf("search notes: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	want := body[:snippetFallback] + "..."
	if results[0].Snippet != want {
		t.Fatalf("expected fallback snippet, got %q", results[0].Snippet)
	}
}

func TestUnifiedSearch_CapsAndHighlight(t *testing.T) {
	s := newSearchService(t)
	for i := 0; i < 15; i++ {
		seedEntries(t, s, &models.Entry{
			WordPhrase: fmt.Sprintf("equity maxim %02d", i),
			Definition: "equity follows the law",
		})
	}
	for i := 0; i < 15; i++ {
		note := &models.Note{Title: fmt.Sprintf("Equity notes %02d", i), Content: "equity and trusts"}
		if err := s.NotesDB.Create(note).Error; err != nil {
			t.Fatalf("seed note: %v", err)
		}
	}

	result := s.UnifiedSearch(context.Background(), "equity")
	if len(result.DictionaryResults) != unifiedLimit {
		t.Fatalf("dictionary preview should cap at %d, got %d", unifiedLimit, len(result.DictionaryResults))
	}
	if len(result.NotesResults) != unifiedLimit {
		t.Fatalf("notes preview should cap at %d, got %d", unifiedLimit, len(result.NotesResults))
	}
	if !strings.Contains(result.DictionaryResults[0].WordPhrase, `<span class="highlight">`) {
		t.Fatalf("expected highlight markup, got %q", result.DictionaryResults[0].WordPhrase)
	}
}

// 高亮只在渲染副本上做，库里的行不能被改
func TestUnifiedSearch_DoesNotMutateRows(t *testing.T) {
	s := newSearchService(t)
	seedEntries(t, s, &models.Entry{WordPhrase: "consideration", Definition: "something of value exchanged"})

	_ = s.UnifiedSearch(context.Background(), "consideration")

	var stored models.Entry
	if err := s.DictDB.First(&stored, "word_phrase LIKE ?", "%consideration%").Error; err != nil {
		t.Fatalf("reload entry: %v", err)
	}
	if strings.Contains(stored.WordPhrase, "<span") || strings.Contains(stored.Definition, "<span") {
		t.Fatalf("stored row was mutated: %+v", stored)
	}
}

func TestUnifiedSearch_ShortWordsOnly(t *testing.T) {
	s := newSearchService(t)
	seedEntries(t, s, &models.Entry{WordPhrase: "act", Definition: "a statute"})

	result := s.UnifiedSearch(context.Background(), "a of s")
	if len(result.DictionaryResults) != 0 || len(result.NotesResults) != 0 {
		t.Fatalf("noise-only query should return empty previews, got %+v", result)
	}
}

func TestRelatedTerms_CapAndExclusion(t *testing.T) {
	s := newSearchService(t)
	var base *models.Entry
	for i := 0; i < 8; i++ {
		e := &models.Entry{
			WordPhrase: fmt.Sprintf("negligence form %d", i),
			Definition: "a species of negligence",
		}
		seedEntries(t, s, e)
		if base == nil {
			base = e
		}
	}

	terms := s.RelatedTerms(context.Background(), base.WordPhrase, base.ID)
	if len(terms) != relatedLimit {
		t.Fatalf("expected %d related terms, got %d", relatedLimit, len(terms))
	}
	for _, term := range terms {
		if term.ID == base.ID {
			t.Fatalf("entry should not be related to itself")
		}
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Contract Law", []string{"contract", "law"}},
		{"a of an", nil},
		{"one two three four five", []string{"one", "two", "three"}},
		{"  breach-of-contract  ", []string{"breach", "contract"}},
	}
	for _, c := range cases {
		got := tokenize(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("tokenize(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("tokenize(%q) = %v, want %v", c.in, got, c.want)
			}
		}
	}
}
