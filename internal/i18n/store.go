package i18n

import (
	"sync"

	"go.uber.org/zap"
)

// Persister keeps language choices across restarts. storage.UserLangs
// implements it on top of sqlite.
type Persister interface {
	GetUserLang(telegramID int64) (string, bool, error)
	SetUserLang(telegramID int64, lang string) error
}

// Store maps a Telegram user id to the language they picked. Writes for
// the same user are last-write-wins.
type Store struct {
	mu    sync.RWMutex
	langs map[int64]Lang

	def Lang
	p   Persister
	log *zap.Logger
}

// NewStore returns a store answering def for unknown users. p may be nil.
func NewStore(def Lang, p Persister, log *zap.Logger) *Store {
	if _, ok := texts[def]; !ok {
		def = Default
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{langs: map[int64]Lang{}, def: def, p: p, log: log}
}

func (s *Store) Default() Lang { return s.def }

func (s *Store) Get(telegramID int64) Lang {
	s.mu.RLock()
	l, ok := s.langs[telegramID]
	s.mu.RUnlock()
	if ok {
		return l
	}
	if s.p == nil {
		return s.def
	}

	raw, found, err := s.p.GetUserLang(telegramID)
	if err != nil {
		s.log.Warn("load user lang", zap.Int64("user_id", telegramID), zap.Error(err))
		return s.def
	}
	if !found {
		return s.def
	}
	l, ok = ParseLang(raw)
	if !ok {
		return s.def
	}

	s.mu.Lock()
	if _, raced := s.langs[telegramID]; !raced {
		s.langs[telegramID] = l
	}
	s.mu.Unlock()
	return l
}

// Set always updates memory; a persistence failure is logged and returned.
func (s *Store) Set(telegramID int64, l Lang) error {
	s.mu.Lock()
	s.langs[telegramID] = l
	s.mu.Unlock()

	if s.p == nil {
		return nil
	}
	if err := s.p.SetUserLang(telegramID, string(l)); err != nil {
		s.log.Warn("save user lang", zap.Int64("user_id", telegramID), zap.Error(err))
		return err
	}
	return nil
}
