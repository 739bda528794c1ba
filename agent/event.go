/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package agent

// Reason discriminates the agent notifications delivered to the event sink
type Reason int

const (
	// ReasonAgentStarted is emitted once the agent begins autonomous operation
	ReasonAgentStarted Reason = iota
	// ReasonDownloadStarted is emitted when the agent begins fetching an update
	ReasonDownloadStarted
	// ReasonDownloadProgress is emitted periodically while downloading; the
	// event value is the completed percentage
	ReasonDownloadProgress
	// ReasonDownloadCompleted is emitted when the agent finished fetching an update
	ReasonDownloadCompleted
	// ReasonDownloadFailed is emitted when the agent gave up fetching an update
	ReasonDownloadFailed
	// ReasonValidation is emitted while the agent validates a fetched update
	ReasonValidation
	// ReasonRebootPending is emitted when an installed update waits for reboot
	ReasonRebootPending
	// ReasonError is emitted when the agent recorded an internal error
	ReasonError
)

// Phase holds the possible phases reported by a running agent
type Phase int

const (
	// PhaseIdle is set while the agent waits for update notifications
	PhaseIdle Phase = iota
	// PhaseConnecting is set while the agent (re)establishes its sessions
	PhaseConnecting
	// PhaseDownloading is set while the agent fetches an update
	PhaseDownloading
	// PhaseVerifying is set while the agent validates a fetched update
	PhaseVerifying
	// PhaseRebootPending is set when an installed update waits for reboot
	PhaseRebootPending
	// PhaseError is set after a failure the agent could not recover from
	PhaseError
)

var reasonNames = map[Reason]string{
	ReasonAgentStarted:      "agent-started",
	ReasonDownloadStarted:   "download-started",
	ReasonDownloadProgress:  "download-progress",
	ReasonDownloadCompleted: "download-completed",
	ReasonDownloadFailed:    "download-failed",
	ReasonValidation:        "validation",
	ReasonRebootPending:     "reboot-pending",
	ReasonError:             "error",
}

var phaseNames = map[Phase]string{
	PhaseIdle:          "idle",
	PhaseConnecting:    "connecting",
	PhaseDownloading:   "downloading",
	PhaseVerifying:     "verifying",
	PhaseRebootPending: "reboot-pending",
	PhaseError:         "error",
}

// ReasonString converts a "Reason" to string
func ReasonString(r Reason) string {
	if s, ok := reasonNames[r]; ok {
		return s
	}

	return "unknown"
}

// PhaseString converts a "Phase" to string
func PhaseString(p Phase) string {
	if s, ok := phaseNames[p]; ok {
		return s
	}

	return "unknown"
}

// ErrorString converts the agent's last recorded error to string
func ErrorString(err error) string {
	if err == nil {
		return "none"
	}

	return err.Error()
}

// Event is a notification value delivered to the event sink. The meaning of
// Value depends on Reason. It is consumed synchronously by the sink and not
// retained past the callback invocation.
type Event struct {
	Reason Reason
	Value  uint32
	Handle Handle
}

// EventSink receives agent notifications on the agent's own goroutine. It
// must only read through the handle and must return without blocking.
type EventSink interface {
	OnEvent(e Event)
}

// SinkFunc is an EventSink adapter for plain functions
type SinkFunc func(e Event)

// OnEvent is the EventSink interface implementation
func (f SinkFunc) OnEvent(e Event) {
	f(e)
}
