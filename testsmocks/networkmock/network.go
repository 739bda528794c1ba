/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package networkmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/OSSystems/bringup/network"
)

type NetworkJoinerMock struct {
	mock.Mock
}

func (njm *NetworkJoinerMock) Connect(credentials network.Credentials) (string, error) {
	args := njm.Called(credentials)
	return args.String(0), args.Error(1)
}
