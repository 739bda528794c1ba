/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import (
	"time"

	"github.com/OSSystems/bringup/network"
)

// NetworkJoiner associates the device with the configured access point and
// reports the assigned address. A call covers a single attempt; the retry
// policy belongs to the caller.
type NetworkJoiner interface {
	Connect(credentials network.Credentials) (string, error)
}

// RuntimeInitializer brings up the support services the transport and
// messaging layers depend on. Init must be idempotent.
type RuntimeInitializer interface {
	Init() error
}

// TransportInitializer activates the secure-socket capability used by the
// messaging layer
type TransportInitializer interface {
	Init() error
}

// MessagingInitializer activates the pub/sub runtime that carries update
// notifications
type MessagingInitializer interface {
	Init() error
}

// Sleeper paces the network join retries
type Sleeper interface {
	Sleep(d time.Duration)
}

// DefaultSleeper is the Sleeper implementation used outside of tests
type DefaultSleeper struct {
}

// Sleep is for the Sleeper interface implementation
func (s *DefaultSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}
