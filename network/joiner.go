/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package network

import (
	"net"
	"time"

	"github.com/pkg/errors"
)

const defaultProbeTimeout = 10 * time.Second

// Joiner implements the network join capability for hosted targets, where
// the association with the access point belongs to the operating system.
// Connect confirms IP connectivity by dialing the probe address and reports
// the local address the kernel selected for the route.
type Joiner struct {
	ProbeAddress string
	Timeout      time.Duration
}

// NewJoiner creates a Joiner probing the given "host:port" address
func NewJoiner(probeAddress string) *Joiner {
	return &Joiner{
		ProbeAddress: probeAddress,
		Timeout:      defaultProbeTimeout,
	}
}

// Connect is the bringup.NetworkJoiner implementation
func (j *Joiner) Connect(credentials Credentials) (string, error) {
	timeout := j.Timeout
	if timeout == 0 {
		timeout = defaultProbeTimeout
	}

	conn, err := net.DialTimeout("tcp", j.ProbeAddress, timeout)
	if err != nil {
		return "", errors.Wrapf(err, "network %q not reachable", credentials.SSID)
	}

	defer conn.Close()

	host, _, err := net.SplitHostPort(conn.LocalAddr().String())
	if err != nil {
		return "", err
	}

	return host, nil
}
