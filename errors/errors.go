/*
 * Cadence - The resource-oriented smart contract programming language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// UserError is an error caused by the caller's input,
// e.g. a malformed JSON-Cadence payload or an incomplete transaction.
type UserError interface {
	error
	IsUserError()
}

// InternalError is an error caused by a bug in the SDK
type InternalError interface {
	error
	IsInternalError()
}

// IsUserError reports whether the error chain contains a UserError
func IsUserError(err error) bool {
	var userErr UserError
	return xerrors.As(err, &userErr)
}

// IsInternalError reports whether the error chain contains an InternalError
func IsInternalError(err error) bool {
	var internalErr InternalError
	return xerrors.As(err, &internalErr)
}

// DefaultUserError

type DefaultUserError struct {
	Err error
}

var _ UserError = DefaultUserError{}

func NewDefaultUserError(message string, arg ...any) DefaultUserError {
	return DefaultUserError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (DefaultUserError) IsUserError() {}

func (e DefaultUserError) Error() string {
	return e.Err.Error()
}

func (e DefaultUserError) Unwrap() error {
	return e.Err
}

// UnexpectedError wraps an implementation error

type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) UnexpectedError {
	return UnexpectedError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (UnexpectedError) IsInternalError() {}

func (e UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

// UnreachableError is returned from code paths that must never be taken.
// It captures the stack at the point of creation.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{
		Stack: debug.Stack(),
	}
}

func (UnreachableError) IsInternalError() {}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

// ExternalError is an error returned by an external collaborator,
// e.g. the access API client
type ExternalError struct {
	Recovered any
}

func NewExternalError(recovered any) ExternalError {
	return ExternalError{
		Recovered: recovered,
	}
}

func (e ExternalError) Error() string {
	return fmt.Sprint(e.Recovered)
}

func (e ExternalError) Unwrap() error {
	err, _ := e.Recovered.(error)
	return err
}

// GetExternalError returns the first ExternalError in the error chain
func GetExternalError(err error) (ExternalError, bool) {
	var externalErr ExternalError
	ok := xerrors.As(err, &externalErr)
	return externalErr, ok
}
