package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Notifier is the user-facing status side channel. The browser client
// rendered these as toasts; here they become structured log events,
// with the last message kept for the state endpoint.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type LogNotifier struct {
	log *logrus.Logger

	mu   sync.Mutex
	last string
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: logger}
}

func (n *LogNotifier) Success(message string) {
	n.record(message)
	n.log.WithField("notice", "success").Info(message)
}

func (n *LogNotifier) Error(message string) {
	n.record(message)
	n.log.WithField("notice", "error").Warn(message)
}

// Last returns the most recent message, or "" when nothing has fired.
func (n *LogNotifier) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}

func (n *LogNotifier) record(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = message
}
