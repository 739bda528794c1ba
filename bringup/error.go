/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import "github.com/pkg/errors"

type BringupErrorReporter interface {
	Cause() error
	IsFatal() bool
	error
}

type BringupError struct {
	cause error
	fatal bool
}

func (e *BringupError) Cause() error {
	return e.cause
}

func (e *BringupError) IsFatal() bool {
	return e.fatal
}

func (e *BringupError) Error() string {
	severity := "recoverable"
	if e.fatal {
		severity = "unrecoverable"
	}

	return errors.Wrapf(e.cause, "%s bring-up error", severity).Error()
}

func NewFatalError(err error) BringupErrorReporter {
	return &BringupError{
		cause: err,
		fatal: true,
	}
}

func NewTransientError(err error) BringupErrorReporter {
	return &BringupError{
		cause: err,
		fatal: false,
	}
}
