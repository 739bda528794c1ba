/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import "github.com/pkg/errors"

// RuntimeReadyState is the State interface implementation for the
// BringupStateRuntimeReady
type RuntimeReadyState struct {
	BaseState
}

// ID returns the state id
func (state *RuntimeReadyState) ID() BringupState {
	return state.id
}

// Handle for RuntimeReadyState activates the secure transport. No retry.
func (state *RuntimeReadyState) Handle(s *Sequencer) State {
	if err := s.Transport.Init(); err != nil {
		return NewHaltedState(NewFatalError(errors.Wrapf(err,
			"secure transport initialization failed")))
	}

	return NewTransportReadyState()
}

// NewRuntimeReadyState creates a new RuntimeReadyState
func NewRuntimeReadyState() *RuntimeReadyState {
	state := &RuntimeReadyState{
		BaseState: BaseState{id: BringupStateRuntimeReady},
	}

	return state
}
