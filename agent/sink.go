/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package agent

import (
	"fmt"
	"sync"

	"github.com/OSSystems/pkg/log"
)

const eventLogSize = 64

// EventLogger is the EventSink implementation used for operator visibility.
// Each notification becomes one log line and one entry in a bounded ring
// readable through the local HTTP backend. It never reacts to what it
// reports: an error-flavored reason is rendered exactly like any other.
type EventLogger struct {
	mu      sync.Mutex
	entries []string
}

// NewEventLogger creates a new EventLogger
func NewEventLogger() *EventLogger {
	return &EventLogger{}
}

// OnEvent is the EventSink interface implementation
func (l *EventLogger) OnEvent(e Event) {
	line := FormatEvent(e)

	log.Info(line)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, line)
	if len(l.entries) > eventLogSize {
		l.entries = l.entries[len(l.entries)-eventLogSize:]
	}
}

// Entries returns a copy of the retained event lines, oldest first
func (l *EventLogger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]string, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// FormatEvent renders a single agent notification as diagnostic text. Unknown
// reason or phase codes degrade to an "unknown" descriptor instead of failing.
func FormatEvent(e Event) string {
	id := "none"
	state := State{}

	if e.Handle != nil {
		id = e.Handle.ID()
		state = e.Handle.State()
	}

	return fmt.Sprintf("agent event handle:%s reason:%d %s value:%d state:%d %s error:%s",
		id,
		e.Reason,
		ReasonString(e.Reason),
		e.Value,
		state.Phase,
		PhaseString(state.Phase),
		ErrorString(state.LastError))
}
