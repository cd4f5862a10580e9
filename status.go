/*
   Copyright 2026 The Packline Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package status provides the success-or-categorized-failure result value
// used by operations throughout the packline codebase.
//
// A Status is either success (no payload) or a failure carrying a kind.Kind
// and a free-text message. It is a plain immutable value: it can be copied
// and passed between goroutines freely, with no locking and no teardown.
// The zero Status is success.
//
// Status is deliberately minimal. It is not an exception or backtrace
// system: there is no cause chain, no stack trace and no structured payload
// beyond the kind and the message. Callers that need Go error plumbing use
// Err and FromError to cross between the two worlds.
package status

import (
	"packline.dev/status/kind"
)

// Status represents the outcome of an operation: success, or a categorized
// failure with a human-readable message.
//
// The zero value is the success status. Assignment and copying follow Go
// value semantics and always yield an independent value; the message is an
// immutable string, so no payload is ever shared between copies.
type Status struct {
	kind    kind.Kind
	message string
}

// OK returns the success status. It carries no message.
func OK() Status {
	return Status{}
}

// New returns a failure status with the given kind and message.
//
// The kind must not be kind.OK: a "successful failure" is always a caller
// bug, so New panics instead of returning a status that observers would
// report as success. Use OK for the success value.
func New(k kind.Kind, message string) Status {
	if k == kind.OK {
		panic("status: failure kind must not be kind.OK")
	}
	return Status{kind: k, message: message}
}

// IsOK reports whether the status is success.
func (s Status) IsOK() bool {
	return s.kind == kind.OK
}

// Kind returns the status kind. It is kind.OK for the success status.
func (s Status) Kind() kind.Kind {
	return s.kind
}

// Message returns the failure message, or "" for the success status.
func (s Status) Message() string {
	return s.message
}

// KindString returns the canonical string for the status kind, falling back
// to the UnknownError string for a kind outside the closed set.
func (s Status) KindString() string {
	return s.kind.String()
}

// String renders the status for logs and diagnostics.
//
// The format is:
//
//	<kind string>
//
// for success, or
//
//	<kind string>: <message>
//
// for failure. No trailing punctuation is added.
func (s Status) String() string {
	if s.IsOK() {
		return s.kind.String()
	}
	return s.kind.String() + ": " + s.message
}
