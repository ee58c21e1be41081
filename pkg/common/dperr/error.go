// Copyright 2024 The dpsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dperr defines the coded errors used across dpsort. Callers
// match on the code rather than the message text.
package dperr

import (
	"errors"
	"fmt"
)

const (
	Ok uint16 = 0

	// Internal errors.
	ErrInternal uint16 = 20101

	// Invalid input.
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301
)

// Error is an error with a stable numeric code attached.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func newError(code uint16, format string, args ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

func NewInternal(format string, args ...any) *Error {
	return newError(ErrInternal, "internal error: %s", fmt.Sprintf(format, args...))
}

func NewBadConfig(format string, args ...any) *Error {
	return newError(ErrBadConfig, "invalid configuration: %s", fmt.Sprintf(format, args...))
}

func NewInvalidInput(format string, args ...any) *Error {
	return newError(ErrInvalidInput, "invalid input: %s", fmt.Sprintf(format, args...))
}

// IsErrCode reports whether err is an Error carrying the given code.
func IsErrCode(err error, code uint16) bool {
	if err == nil {
		return code == Ok
	}
	var de *Error
	if !errors.As(err, &de) {
		return false
	}
	return de.code == code
}
