// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// LogFunc is an assignable log sink. Both the debug and error sinks
// default to discarding.
type LogFunc func(format string, args ...interface{})

// ProgressFunc receives flash write progress: real data bytes written so
// far (padding excluded) and the total byte count.
type ProgressFunc func(written, total int)

// Session owns one Transport and carries the connection's evolving state:
// chip identity, stub-loaded flag, and the active protocol dialect. State
// only advances forward; a fresh Session is created per connection.
type Session struct {
	tr   Transport
	scan frameScanner

	chip       ChipIdentity
	spec       *chipSpec
	synced     bool
	stubLoaded bool
	dialect    Dialect
	baud       int

	retries      int
	cmdTimeout   time.Duration
	syncTimeout  time.Duration
	eraseTimeout time.Duration
	syncAttempts int
	syncDiscard  int

	busy         atomic.Bool
	debugLog     LogFunc
	errorLog     LogFunc
	trace        *Trace
	onDisconnect func()
	discOnce     sync.Once
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithBaudRate sets the baud rate applied to the transport when the
// session connects.
func WithBaudRate(baud int) Option {
	return func(s *Session) {
		if baud > 0 {
			s.baud = baud
		}
	}
}

// WithCommandTimeout sets the per-attempt response timeout for ordinary
// commands.
func WithCommandTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.cmdTimeout = d
		}
	}
}

// WithRetries sets the attempt budget for each command.
func WithRetries(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.retries = n
		}
	}
}

// WithSyncAttempts bounds the SYNC retry loop.
func WithSyncAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.syncAttempts = n
		}
	}
}

// WithSyncDiscardLimit bounds how many redundant acknowledgement frames
// are drained after a successful SYNC. The bootloader floods several; the
// exact count is observed device behavior, so this is a tunable rather
// than a protocol guarantee.
func WithSyncDiscardLimit(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.syncDiscard = n
		}
	}
}

// WithDebugLog assigns the debug log sink.
func WithDebugLog(fn LogFunc) Option {
	return func(s *Session) {
		s.debugLog = fn
	}
}

// WithErrorLog assigns the error log sink.
func WithErrorLog(fn LogFunc) Option {
	return func(s *Session) {
		s.errorLog = fn
	}
}

// WithTrace records every TX/RX frame to w as CBOR records.
func WithTrace(w io.Writer) Option {
	return func(s *Session) {
		s.trace = NewTrace(w)
	}
}

// NewSession wraps an already-open Transport. The Session takes ownership:
// closing the session closes the transport.
func NewSession(tr Transport, opts ...Option) *Session {
	s := &Session{
		tr:           tr,
		dialect:      RomDialect,
		baud:         DefaultBaudRate,
		retries:      DefaultCommandRetries,
		cmdTimeout:   DefaultCommandTimeout,
		syncTimeout:  DefaultSyncTimeout,
		eraseTimeout: DefaultEraseTimeout,
		syncAttempts: DefaultSyncAttempts,
		syncDiscard:  DefaultSyncDiscardMax,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnDisconnect assigns the disconnect notification. It fires exactly once,
// whether the transport drops mid-operation or Close is called.
func (s *Session) OnDisconnect(fn func()) {
	s.onDisconnect = fn
}

// Chip returns the identified chip, or ChipUnknown before identification.
func (s *Session) Chip() ChipIdentity {
	return s.chip
}

// StubLoaded reports whether the flasher stub is running on the target.
func (s *Session) StubLoaded() bool {
	return s.stubLoaded
}

// Dialect returns the active protocol dialect.
func (s *Session) Dialect() Dialect {
	return s.dialect
}

// Close releases the transport and fires the disconnect notification.
func (s *Session) Close() error {
	err := s.tr.Close()
	s.notifyDisconnect()
	return err
}

// acquire marks an operation in flight. Exactly one command may be
// outstanding on the transport; concurrent callers fail fast instead of
// interleaving frames.
func (s *Session) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrOperationInProgress
	}
	return nil
}

func (s *Session) release() {
	s.busy.Store(false)
}

func (s *Session) notifyDisconnect() {
	s.discOnce.Do(func() {
		if s.onDisconnect != nil {
			s.onDisconnect()
		}
	})
}

func (s *Session) debugf(format string, args ...interface{}) {
	if s.debugLog != nil {
		s.debugLog(format, args...)
	}
}

func (s *Session) errorf(format string, args ...interface{}) {
	if s.errorLog != nil {
		s.errorLog(format, args...)
	}
}
