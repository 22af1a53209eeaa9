package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewEntryDAO,
	NewNoteDAO,
	NewWorksheetDAO,
	NewCalendarDAO,
	NewUserDAO,
)
