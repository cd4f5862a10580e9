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

package status

import (
	"errors"

	"packline.dev/status/apis"
	"packline.dev/status/kind"
)

// Failure is the Go error projection of a failure status. It is what
// Status.Err returns and what transport adapters look for when deciding
// whether an error carries a status kind.
//
// A Failure is immutable once constructed; it is always created through
// Status.Err and therefore never carries kind.OK.
type Failure struct {
	kind    kind.Kind
	message string
}

// Ensure Failure satisfies the capability interface that adapters target.
var _ apis.KindedError = (*Failure)(nil)

// Error implements the built-in error interface. The format matches
// Status.String:
//
//	<kind string>: <message>
func (f *Failure) Error() string {
	return f.kind.String() + ": " + f.message
}

// StatusKind returns the failure's kind. It implements apis.KindedError.
func (f *Failure) StatusKind() kind.Kind { return f.kind }

// Message returns the failure's message without the kind prefix.
func (f *Failure) Message() string { return f.message }

// Status converts the failure back into a Status value.
func (f *Failure) Status() Status {
	return Status{kind: f.kind, message: f.message}
}

// Err converts the status into a Go error: nil for success, a *Failure
// carrying the kind and message otherwise.
//
// This is the bridge for APIs that speak error rather than Status:
//
//	if err := doWork().Err(); err != nil {
//		return err
//	}
func (s Status) Err() error {
	if s.IsOK() {
		return nil
	}
	return &Failure{kind: s.kind, message: s.message}
}

// FromError converts a Go error back into a Status.
//
// A nil error is success. A *Failure (possibly wrapped) converts losslessly.
// Any other error implementing apis.KindedError keeps its kind, with its
// Error() text as the message. Everything else becomes an UnknownError
// failure. An error whose reported kind is kind.OK or outside the closed set
// is treated as foreign rather than trusted.
func FromError(err error) Status {
	if err == nil {
		return OK()
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Status()
	}
	var ke apis.KindedError
	if errors.As(err, &ke) {
		if k := ke.StatusKind(); k != kind.OK && k.Valid() {
			return New(k, ke.Error())
		}
	}
	return New(kind.UnknownError, err.Error())
}
