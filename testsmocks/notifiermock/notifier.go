/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package notifiermock

import (
	"github.com/stretchr/testify/mock"
)

type NotifierMock struct {
	mock.Mock
}

func (nm *NotifierMock) Notify(topic string, payload []byte) error {
	args := nm.Called(topic, payload)
	return args.Error(0)
}
