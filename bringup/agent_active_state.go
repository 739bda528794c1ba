/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

// AgentActiveState is the terminal success state: the update agent runs
// autonomously from here on and the sequencer has no further responsibility
type AgentActiveState struct {
	BaseState
}

// ID returns the state id
func (state *AgentActiveState) ID() BringupState {
	return state.id
}

// Handle for AgentActiveState
func (state *AgentActiveState) Handle(s *Sequencer) State {
	panic("AgentActiveState handler should not be called")
}

// NewAgentActiveState creates a new AgentActiveState
func NewAgentActiveState() *AgentActiveState {
	state := &AgentActiveState{
		BaseState: BaseState{id: BringupStateAgentActive},
	}

	return state
}
