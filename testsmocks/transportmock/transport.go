/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package transportmock

import (
	"github.com/stretchr/testify/mock"
)

type TransportInitializerMock struct {
	mock.Mock
}

func (tim *TransportInitializerMock) Init() error {
	args := tim.Called()
	return args.Error(0)
}
