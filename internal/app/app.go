package app

import (
	"github.com/trigrman/granola-meetings/config"
	"github.com/trigrman/granola-meetings/internal/cache"
	"github.com/trigrman/granola-meetings/internal/domain/meeting/usecases"
)

type App struct {
	Loader         *cache.Loader
	ListMeetings   *usecases.ListMeetings
	GetMeeting     *usecases.GetMeeting
	SearchMeetings *usecases.SearchMeetings
	RecentNotes    *usecases.RecentNotes
	WatchCache     *usecases.WatchCache
}

// New wires the use cases against the cache file at cfg.CachePath. Nothing
// is read until a use case runs.
func New(cfg *config.Config) *App {
	loader := cache.NewLoader(cfg.CachePath)

	watch := &usecases.WatchCache{
		Source:   loader,
		Path:     cfg.CachePath,
		Debounce: usecases.DefaultWatchDebounce,
	}

	return &App{
		Loader:         loader,
		ListMeetings:   &usecases.ListMeetings{Source: loader},
		GetMeeting:     &usecases.GetMeeting{Source: loader},
		SearchMeetings: &usecases.SearchMeetings{Source: loader},
		RecentNotes:    &usecases.RecentNotes{Source: loader},
		WatchCache:     watch,
	}
}
