/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import (
	"github.com/pkg/errors"

	"github.com/OSSystems/bringup/agent"
)

// MessagingReadyState is the State interface implementation for the
// BringupStateMessagingReady
type MessagingReadyState struct {
	BaseState
}

// ID returns the state id
func (state *MessagingReadyState) ID() BringupState {
	return state.id
}

// Handle for MessagingReadyState assembles the network and agent parameters
// and hands control to the update agent. The agent keeps the registered
// event sink for the remaining process lifetime.
func (state *MessagingReadyState) Handle(s *Sequencer) State {
	np := agent.NetworkParams{
		BrokerHost:   s.Settings.BrokerSettings.Host,
		BrokerPort:   s.Settings.BrokerSettings.Port,
		TopicFilters: s.Settings.TopicFilters,
		ClientID:     s.Settings.ClientID,
		LocalAddress: s.LocalAddress(),
		Secure:       s.Settings.EnableTLS,
	}

	ap := agent.AgentParams{
		Sink:                 s.EventSink,
		RebootUponCompletion: s.Settings.RebootUponCompletion,
	}

	handle, err := s.Agent.Start(np, ap)
	if err != nil {
		return NewHaltedState(NewFatalError(errors.Wrapf(err,
			"update agent activation failed")))
	}

	s.agentHandle = handle

	return NewAgentActiveState()
}

// NewMessagingReadyState creates a new MessagingReadyState
func NewMessagingReadyState() *MessagingReadyState {
	state := &MessagingReadyState{
		BaseState: BaseState{id: BringupStateMessagingReady},
	}

	return state
}
