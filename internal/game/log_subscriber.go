package game

import "github.com/charmbracelet/log"

// LogSubscriber writes every event's narration to a logger
type LogSubscriber struct {
	logger *log.Logger
	level  log.Level
}

// NewLogSubscriber creates a subscriber logging at the given level
func NewLogSubscriber(logger *log.Logger, level log.Level) *LogSubscriber {
	return &LogSubscriber{logger: logger, level: level}
}

// OnEvent implements EventSubscriber
func (s *LogSubscriber) OnEvent(event GameEvent) {
	s.logger.Log(s.level, event.String(), "event", event.EventType())
}
