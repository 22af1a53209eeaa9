package types

// SearchDictItem /api/search/dictionary 的返回行，priority 越小越靠前
type SearchDictItem struct {
	ID         int64  `json:"id"`
	WordPhrase string `json:"word_phrase"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	Priority   int    `json:"priority"`
}

// SearchNoteItem /api/search/notes 的返回行
type SearchNoteItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Snippet     string `json:"snippet"`
	LastUpdated string `json:"last_updated"`
}

// UnifiedSearchResult 聚合搜索页数据，两边各自排序、并列返回，不做混排
type UnifiedSearchResult struct {
	Query             string            `json:"query"`
	DictionaryResults []UnifiedDictItem `json:"dictionary_results"`
	NotesResults      []UnifiedNoteItem `json:"notes_results"`
}

// UnifiedDictItem 预览行，字段已截断并带高亮标记
type UnifiedDictItem struct {
	ID         int64  `json:"id"`
	WordPhrase string `json:"word_phrase"`
	Definition string `json:"definition"`
}

type UnifiedNoteItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RelatedTerm 词条详情页的相关词条
type RelatedTerm struct {
	ID         int64  `json:"id"`
	WordPhrase string `json:"word_phrase"`
	Definition string `json:"definition"`
	Relevance  int    `json:"relevance"`
}
