package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(SearchService), "*"),
	wire.Bind(new(ISearchService), new(*SearchService)),

	wire.Struct(new(DictionaryService), "*"),
	wire.Bind(new(IDictionaryService), new(*DictionaryService)),

	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(CalendarService), "*"),
	wire.Bind(new(ICalendarService), new(*CalendarService)),

	wire.Struct(new(QuizService), "*"),
	wire.Bind(new(IQuizService), new(*QuizService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)
