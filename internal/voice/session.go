package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotSupported means no capture collaborator is available on this
	// host. Detected once at startup, not per attempt.
	ErrNotSupported = errors.New("voice capture not available")
	// ErrAlreadyListening guards against re-entrant session starts.
	ErrAlreadyListening = errors.New("voice capture already in progress")
	// ErrPermissionDenied distinguishes a microphone permission problem
	// from a generic capture failure.
	ErrPermissionDenied = errors.New("microphone permission denied")
)

// State of the capture session.
type State int

const (
	StateIdle State = iota
	StateListening
	StateCompleted
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateCompleted:
		return "completed"
	case StateErrored:
		return "errored"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Recognizer captures exactly one utterance and returns its final
// transcript. Implementations block until the capture ends.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// Session is a single-shot, non-continuous capture session: once started it
// accepts one final transcript or one error and then deactivates. Starting
// while already listening is rejected.
//
// The mutex only fences the state word: the UI polls State from its event
// loop while Start blocks in a background command.
type Session struct {
	rec Recognizer

	mu    sync.Mutex
	state State
}

// NewSession wraps a recognizer. A nil recognizer pins the session to the
// persistent "not supported" state.
func NewSession(rec Recognizer) *Session {
	return &Session{rec: rec}
}

// Supported reports whether a capture collaborator exists at all.
func (s *Session) Supported() bool { return s.rec != nil }

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start runs one capture and returns the final transcript. It blocks for
// the duration of the capture; no timeout is imposed here beyond the
// capture device's own.
func (s *Session) Start(ctx context.Context) (string, error) {
	if s.rec == nil {
		return "", ErrNotSupported
	}
	s.mu.Lock()
	if s.state == StateListening {
		s.mu.Unlock()
		return "", ErrAlreadyListening
	}
	s.state = StateListening
	s.mu.Unlock()

	transcript, err := s.rec.Listen(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateErrored
		return "", err
	}
	s.state = StateCompleted
	return transcript, nil
}
