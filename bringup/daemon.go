/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import "github.com/OSSystems/pkg/log"

type Daemon struct {
	sequencer *Sequencer
	stop      bool
}

func NewDaemon(sequencer *Sequencer) *Daemon {
	return &Daemon{
		sequencer: sequencer,
	}
}

func (d *Daemon) Stop() {
	d.stop = true
}

// Run drives the sequencer until a terminal state is reached and returns
// the process exit code for it. On success the update agent keeps running
// in the background; whether to park or to exit is the caller's decision.
func (d *Daemon) Run() int {
	for {
		nextState := d.sequencer.ProcessCurrentState()

		d.sequencer.SetState(nextState)

		if haltedState, ok := nextState.(*HaltedState); ok {
			log.Error(haltedState.Cause())
			return 1
		}

		if d.stop || nextState.ID() == BringupStateAgentActive {
			return 0
		}
	}
}
