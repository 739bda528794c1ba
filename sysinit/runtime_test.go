/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sysinit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeSupportInit(t *testing.T) {
	r := NewRuntimeSupport()

	assert.NoError(t, r.Init())
	assert.True(t, r.initialized)
}

func TestRuntimeSupportInitIsIdempotent(t *testing.T) {
	r := NewRuntimeSupport()

	assert.NoError(t, r.Init())
	assert.NoError(t, r.Init())
}
