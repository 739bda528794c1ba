/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import (
	"fmt"
	"sync"

	"github.com/OSSystems/pkg/log"

	"github.com/OSSystems/bringup/agent"
)

// Sequencer drives the device from a powered-on, disconnected state to
// "update agent running". The pipeline is strictly sequential with
// all-or-nothing semantics: each stage is a hard dependency of the next, so
// any stage failure routes to the halted state instead of attempting
// degraded operation.
type Sequencer struct {
	Version   string
	Settings  *Settings
	Network   NetworkJoiner
	Runtime   RuntimeInitializer
	Transport TransportInitializer
	Messaging MessagingInitializer
	Agent     agent.Agent
	EventSink agent.EventSink
	Sleeper   Sleeper

	agentHandle  agent.Handle
	localAddress string
	state        State
	stateMutex   sync.Mutex
}

// NewSequencer creates a new Sequencer in the initial state
func NewSequencer(
	version string,
	settings *Settings,
	network NetworkJoiner,
	runtime RuntimeInitializer,
	transport TransportInitializer,
	messaging MessagingInitializer,
	updateAgent agent.Agent,
	sink agent.EventSink) *Sequencer {

	s := &Sequencer{
		Version:   version,
		Settings:  settings,
		Network:   network,
		Runtime:   runtime,
		Transport: transport,
		Messaging: messaging,
		Agent:     updateAgent,
		EventSink: sink,
		Sleeper:   &DefaultSleeper{},
		state:     NewInitState(),
	}

	return s
}

// GetState returns the sequencer state
func (s *Sequencer) GetState() State {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	return s.state
}

// SetState sets the sequencer state
func (s *Sequencer) SetState(state State) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.state = state
}

// AgentHandle returns the handle of the activated update agent; nil until
// the sequencer reached the agent-active state
func (s *Sequencer) AgentHandle() agent.Handle {
	return s.agentHandle
}

// LocalAddress returns the address assigned on network join. The local HTTP
// backend reads it while the sequencer goroutine is still joining, so access
// is guarded like the state.
func (s *Sequencer) LocalAddress() string {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	return s.localAddress
}

// SetLocalAddress sets the address assigned on network join
func (s *Sequencer) SetLocalAddress(address string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.localAddress = address
}

// ProcessCurrentState runs the current state and returns its successor
func (s *Sequencer) ProcessCurrentState() State {
	state := s.GetState()

	nextState := state.Handle(s)

	if nextState.ID() != state.ID() {
		log.Info(fmt.Sprintf("bring-up state changed: %s -> %s",
			StateToString(state.ID()), StateToString(nextState.ID())))
	}

	return nextState
}
