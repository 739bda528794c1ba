/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sysinit

import (
	"crypto/rand"
	"time"

	"github.com/pkg/errors"
)

// Devices without a battery-backed RTC boot at the epoch; certificate
// validation needs a plausible wall clock before TLS comes up.
const minClockYear = 2020

// RuntimeSupport verifies the host services the transport and messaging
// layers depend on: a working entropy source and a sane wall clock
type RuntimeSupport struct {
	initialized bool
}

// NewRuntimeSupport creates a new RuntimeSupport
func NewRuntimeSupport() *RuntimeSupport {
	return &RuntimeSupport{}
}

// Init is the bringup.RuntimeInitializer implementation. It is idempotent:
// once the checks passed, later calls are no-ops.
func (r *RuntimeSupport) Init() error {
	if r.initialized {
		return nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return errors.Wrapf(err, "entropy source unavailable")
	}

	if time.Now().Year() < minClockYear {
		return errors.New("system clock not set")
	}

	r.initialized = true

	return nil
}
