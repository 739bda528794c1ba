/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import "github.com/pkg/errors"

// HaltedState is the terminal failure state, reachable from any
// non-terminal state
type HaltedState struct {
	BaseState

	cause BringupErrorReporter
}

// ID returns the state id
func (state *HaltedState) ID() BringupState {
	return state.id
}

// Cause returns the fault that halted the bring-up
func (state *HaltedState) Cause() BringupErrorReporter {
	return state.cause
}

// Handle for HaltedState
func (state *HaltedState) Handle(s *Sequencer) State {
	panic("HaltedState handler should not be called")
}

// ToMap is for the State interface implementation
func (state *HaltedState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["error"] = state.cause.Error()
	return m
}

// NewHaltedState creates a new HaltedState from a BringupErrorReporter
func NewHaltedState(cause BringupErrorReporter) *HaltedState {
	if cause == nil {
		cause = NewFatalError(errors.New("generic error"))
	}

	state := &HaltedState{
		BaseState: BaseState{id: BringupStateHalted},
		cause:     cause,
	}

	return state
}
