// Package progress keeps the session statistics (deaths per level, furthest
// level reached) and persists them between runs.
package progress

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const statsKey = "stats"

// Store is the key/value backend. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Stats are the persisted counters. Level indices are scene indices, so the
// first playable level is 1.
type Stats struct {
	TotalDeaths   int         `json:"totalDeaths"`
	Deaths        map[int]int `json:"deaths"`
	FurthestLevel int         `json:"furthestLevel"`
	LastLevel     int         `json:"lastLevel"`
	Clears        int         `json:"clears"`
}

func NewStats() *Stats {
	return &Stats{Deaths: map[int]int{}}
}

// RecordDeath counts one death on level.
func (s *Stats) RecordDeath(level int) {
	if s.Deaths == nil {
		s.Deaths = map[int]int{}
	}
	s.Deaths[level]++
	s.TotalDeaths++
}

// RecordReached notes that level was entered. Reaching scene 0 from a level
// counts as clearing the game.
func (s *Stats) RecordReached(level int) {
	if level <= 0 {
		if s.LastLevel > 0 {
			s.Clears++
		}
		s.LastLevel = 0
		return
	}
	s.LastLevel = level
	if level > s.FurthestLevel {
		s.FurthestLevel = level
	}
}

// DeathsOn returns the death count for level.
func (s *Stats) DeathsOn(level int) int {
	return s.Deaths[level]
}

// Open creates the on-disk store for appName.
func Open(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("progress: open store: %w", err)
	}
	return m, nil
}

// Load reads the saved stats. A missing item yields fresh stats.
func Load(store Store) (*Stats, error) {
	if store == nil {
		return NewStats(), nil
	}
	data, err := store.LoadItem(statsKey)
	if err != nil {
		return NewStats(), fmt.Errorf("progress: load stats: %w", err)
	}
	if data == nil {
		return NewStats(), nil
	}

	stats := NewStats()
	if err := json.Unmarshal(data, stats); err != nil {
		return NewStats(), fmt.Errorf("progress: parse stats: %w", err)
	}
	if stats.Deaths == nil {
		stats.Deaths = map[int]int{}
	}
	return stats, nil
}

// Save writes stats to store. A nil store is a no-op.
func Save(store Store, s *Stats) error {
	if store == nil || s == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("progress: encode stats: %w", err)
	}
	if err := store.SaveItem(statsKey, data); err != nil {
		return fmt.Errorf("progress: save stats: %w", err)
	}
	return nil
}

// Session couples the live stats with their store. Save failures are logged
// and never interrupt play.
type Session struct {
	Stats *Stats
	store Store
}

// NewSession loads stats from store, falling back to fresh stats on error.
func NewSession(store Store) *Session {
	stats, err := Load(store)
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
	}
	return &Session{Stats: stats, store: store}
}

func (s *Session) RecordDeath(level int) {
	s.Stats.RecordDeath(level)
	s.save()
}

func (s *Session) RecordReached(level int) {
	s.Stats.RecordReached(level)
	s.save()
}

func (s *Session) save() {
	if err := Save(s.store, s.Stats); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
	}
}
