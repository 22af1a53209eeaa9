package server

import (
	"LexNote/handler"
)

type Handlers struct {
	Auth       *handler.Auth
	Search     *handler.SearchHandler
	Dictionary *handler.Dictionary
	Note       *handler.Note
	Calendar   *handler.Calendar
	Quiz       *handler.Quiz
}
