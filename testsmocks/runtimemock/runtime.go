/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package runtimemock

import (
	"github.com/stretchr/testify/mock"
)

type RuntimeInitializerMock struct {
	mock.Mock
}

func (rim *RuntimeInitializerMock) Init() error {
	args := rim.Called()
	return args.Error(0)
}
