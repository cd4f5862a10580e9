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

import "packline.dev/status/kind"

// Per-kind constructors. These are the preferred way to build failures at
// call sites: they read better than New and cannot be handed the wrong kind.

// OutOfMemory returns an OutOfMemory failure with the given message.
func OutOfMemory(message string) Status {
	return New(kind.OutOfMemory, message)
}

// KeyError returns a KeyError failure with the given message.
func KeyError(message string) Status {
	return New(kind.KeyError, message)
}

// TypeError returns a TypeError failure with the given message.
func TypeError(message string) Status {
	return New(kind.TypeError, message)
}

// Invalid returns an Invalid failure with the given message.
func Invalid(message string) Status {
	return New(kind.Invalid, message)
}

// IOError returns an IOError failure with the given message.
func IOError(message string) Status {
	return New(kind.IOError, message)
}

// Unknown returns an UnknownError failure with the given message.
func Unknown(message string) Status {
	return New(kind.UnknownError, message)
}

// Per-kind predicates, mirroring the constructors above.

// IsOutOfMemory reports whether the status is an OutOfMemory failure.
func (s Status) IsOutOfMemory() bool { return s.kind == kind.OutOfMemory }

// IsKeyError reports whether the status is a KeyError failure.
func (s Status) IsKeyError() bool { return s.kind == kind.KeyError }

// IsTypeError reports whether the status is a TypeError failure.
func (s Status) IsTypeError() bool { return s.kind == kind.TypeError }

// IsInvalid reports whether the status is an Invalid failure.
func (s Status) IsInvalid() bool { return s.kind == kind.Invalid }

// IsIOError reports whether the status is an IOError failure.
func (s Status) IsIOError() bool { return s.kind == kind.IOError }

// IsUnknownError reports whether the status is an UnknownError failure.
func (s Status) IsUnknownError() bool { return s.kind == kind.UnknownError }
