/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import "github.com/pkg/errors"

// NetworkJoinedState is the State interface implementation for the
// BringupStateNetworkJoined
type NetworkJoinedState struct {
	BaseState
}

// ID returns the state id
func (state *NetworkJoinedState) ID() BringupState {
	return state.id
}

// Handle for NetworkJoinedState initializes the runtime support services.
// No retry: a failure here is an environment fault, not a transient
// condition.
func (state *NetworkJoinedState) Handle(s *Sequencer) State {
	if err := s.Runtime.Init(); err != nil {
		return NewHaltedState(NewFatalError(errors.Wrapf(err,
			"runtime support initialization failed")))
	}

	return NewRuntimeReadyState()
}

// NewNetworkJoinedState creates a new NetworkJoinedState
func NewNetworkJoinedState() *NetworkJoinedState {
	state := &NetworkJoinedState{
		BaseState: BaseState{id: BringupStateNetworkJoined},
	}

	return state
}
