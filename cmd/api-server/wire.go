//go:build wireinject
// +build wireinject

package main

import (
	"LexNote/config"
	"LexNote/dao"
	"LexNote/handler"
	"LexNote/pkg/database"
	"LexNote/pkg/llm"
	"LexNote/pkg/server"
	"LexNote/pkg/sessionstore"
	"LexNote/pkg/storage"
	"LexNote/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		config.ProvideOpenAIConfig,
		database.NewDictDB,
		database.NewNotesDB,
		database.NewCalendarDB,
		database.NewUserDB,
		storage.NewStorage,
		sessionstore.NewStore,
		llm.NewClient,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.SearchHandler), "*"),
		wire.Struct(new(handler.Dictionary), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Calendar), "*"),
		wire.Struct(new(handler.Quiz), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}

func InitAuthService(cfg *config.Config) service.IAuthService {
	wire.Build(
		database.NewUserDB,
		dao.NewUserDAO,
		wire.Struct(new(service.AuthService), "*"),
		wire.Bind(new(service.IAuthService), new(*service.AuthService)),
	)
	return nil
}
