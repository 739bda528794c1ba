/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package handlemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/OSSystems/bringup/agent"
)

type HandleMock struct {
	mock.Mock
}

func (hm *HandleMock) ID() string {
	args := hm.Called()
	return args.String(0)
}

func (hm *HandleMock) State() agent.State {
	args := hm.Called()
	return args.Get(0).(agent.State)
}
