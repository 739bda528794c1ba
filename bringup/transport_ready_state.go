/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import "github.com/pkg/errors"

// TransportReadyState is the State interface implementation for the
// BringupStateTransportReady
type TransportReadyState struct {
	BaseState
}

// ID returns the state id
func (state *TransportReadyState) ID() BringupState {
	return state.id
}

// Handle for TransportReadyState activates the messaging runtime. No retry.
func (state *TransportReadyState) Handle(s *Sequencer) State {
	if err := s.Messaging.Init(); err != nil {
		return NewHaltedState(NewFatalError(errors.Wrapf(err,
			"messaging initialization failed")))
	}

	return NewMessagingReadyState()
}

// NewTransportReadyState creates a new TransportReadyState
func NewTransportReadyState() *TransportReadyState {
	state := &TransportReadyState{
		BaseState: BaseState{id: BringupStateTransportReady},
	}

	return state
}
