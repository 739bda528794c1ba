/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sleepermock

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type SleeperMock struct {
	mock.Mock
}

func (sm *SleeperMock) Sleep(d time.Duration) {
	sm.Called(d)
}
