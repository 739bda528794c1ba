/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package agentmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/OSSystems/bringup/agent"
)

type AgentMock struct {
	mock.Mock
}

func (am *AgentMock) Start(np agent.NetworkParams, ap agent.AgentParams) (agent.Handle, error) {
	args := am.Called(np, ap)

	handle := args.Get(0)
	if handle == nil {
		return nil, args.Error(1)
	}

	return handle.(agent.Handle), args.Error(1)
}
