package api

import (
	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/config"
	"github.com/yourname/wellnesstracker/internal/store"
)

type App interface {
	Logger() internal.Logger
	Users() store.UserRepository
	Logs() store.WellnessLogRepository
	Config() *config.Config
}

type app struct {
	logger internal.Logger
	users  store.UserRepository
	logs   store.WellnessLogRepository
	cfg    *config.Config
}

func NewApp(logger internal.Logger, users store.UserRepository, logs store.WellnessLogRepository, cfg *config.Config) App {
	return &app{logger: logger, users: users, logs: logs, cfg: cfg}
}

func (a *app) Logger() internal.Logger           { return a.logger }
func (a *app) Users() store.UserRepository       { return a.users }
func (a *app) Logs() store.WellnessLogRepository { return a.logs }
func (a *app) Config() *config.Config            { return a.cfg }
