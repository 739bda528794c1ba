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
	"github.com/pkg/errors"

	"github.com/OSSystems/bringup/network"
)

// ErrNetworkJoinExhausted is the halt cause after the last failed join attempt
var ErrNetworkJoinExhausted = errors.New("network join exhausted")

// NetworkJoinState is the State interface implementation for the
// BringupStateNetworkJoining
type NetworkJoinState struct {
	BaseState
}

// ID returns the state id
func (state *NetworkJoinState) ID() BringupState {
	return state.id
}

// Handle for NetworkJoinState attempts to associate with the configured
// access point. Failed attempts are retried at a fixed interval up to the
// configured bound; only this stage retries, since association failures are
// commonly transient. Exhausting the bound halts the bring-up. The retry
// loop blocks the sequencer goroutine for up to retries*interval.
func (state *NetworkJoinState) Handle(s *Sequencer) State {
	credentials := network.Credentials{
		SSID:       s.Settings.SSID,
		Passphrase: s.Settings.Passphrase,
		Security:   s.Settings.Security,
	}

	retries := s.Settings.ConnectionRetries
	interval := s.Settings.ConnectionRetryInterval

	for attempt := 1; attempt <= retries; attempt++ {
		address, err := s.Network.Connect(credentials)
		if err == nil {
			log.Info(fmt.Sprintf("successfully connected to network %q (address %s)",
				credentials.SSID, address))

			s.SetLocalAddress(address)

			return NewNetworkJoinedState()
		}

		log.Warn(NewTransientError(errors.Wrapf(err,
			"connection to network %q failed (attempt %d/%d)",
			credentials.SSID, attempt, retries)))

		if attempt < retries {
			log.Info(fmt.Sprintf("retrying in %s", interval))
			s.Sleeper.Sleep(interval)
		}
	}

	log.Error("exceeded maximum network connection attempts")

	return NewHaltedState(NewFatalError(ErrNetworkJoinExhausted))
}

// NewNetworkJoinState creates a new NetworkJoinState
func NewNetworkJoinState() *NetworkJoinState {
	state := &NetworkJoinState{
		BaseState: BaseState{id: BringupStateNetworkJoining},
	}

	return state
}
