/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package messagingmock

import (
	"github.com/stretchr/testify/mock"
)

type MessagingInitializerMock struct {
	mock.Mock
}

func (mim *MessagingInitializerMock) Init() error {
	args := mim.Called()
	return args.Error(0)
}
