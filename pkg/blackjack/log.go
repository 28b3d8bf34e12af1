package blackjack

import (
	"fmt"
	"time"

	"blackjack-console/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is a game event intended for display to the player
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func newLogMessage(cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
