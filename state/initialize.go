package state

import (
	"time"

	"go.uber.org/zap"

	"cssp/css"
)

// Stats accumulates totals over all processed stylesheets.
type Stats struct {
	Sources      int
	Failed       int
	Rules        int
	Declarations int
}

// Add accounts for a parsed stylesheet.
func (s *Stats) Add(sheet *css.Stylesheet) {
	s.Sources++
	s.Rules += len(sheet.Rules)
	for _, rule := range sheet.Rules {
		s.Declarations += len(rule.Declarations)
	}
}

// Fields returns totals ready for logging.
func (s *Stats) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("sources", s.Sources),
		zap.Int("failed", s.Failed),
		zap.Int("rules", s.Rules),
		zap.Int("declarations", s.Declarations),
	}
}

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		Log:   zap.NewNop(),
	}
}
