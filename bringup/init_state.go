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

	"github.com/OSSystems/pkg/log"
)

// InitState is the State interface implementation for the BringupStateInit
type InitState struct {
	BaseState
}

// ID returns the state id
func (state *InitState) ID() BringupState {
	return state.id
}

// Handle for InitState logs the configured endpoint and moves on to the
// network join
func (state *InitState) Handle(s *Sequencer) State {
	log.Info(fmt.Sprintf("starting bring-up (broker %s:%d)",
		s.Settings.BrokerSettings.Host, s.Settings.BrokerSettings.Port))

	return NewNetworkJoinState()
}

// NewInitState creates a new InitState
func NewInitState() *InitState {
	state := &InitState{
		BaseState: BaseState{id: BringupStateInit},
	}

	return state
}
