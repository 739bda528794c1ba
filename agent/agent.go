/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package agent

// NetworkParams carries the connection parameters assembled during bring-up
// and handed to the update agent on activation.
type NetworkParams struct {
	BrokerHost   string
	BrokerPort   int
	TopicFilters []string
	ClientID     string
	LocalAddress string
	Secure       bool
}

// AgentParams carries the application-side parameters for the update agent:
// the event sink notified on every agent state change and the behavior
// expected once an update completes.
type AgentParams struct {
	Sink                 EventSink
	RebootUponCompletion bool
}

// State is a point-in-time snapshot of the agent, readable by the event
// sink while the agent keeps running.
type State struct {
	Phase     Phase
	LastError error
}

// Handle is an opaque reference to a running update agent. It is created
// once by Start and lives for the remaining process lifetime. Callers only
// ever read through it.
type Handle interface {
	ID() string
	State() State
}

// Agent is the external update-agent capability. Start hands over the
// assembled network and agent parameters and begins autonomous operation;
// everything past this call (protocol, sessions, retries) is the agent's
// own business.
type Agent interface {
	Start(np NetworkParams, ap AgentParams) (Handle, error)
}
