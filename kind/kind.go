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

package kind

import (
	"bytes"
	"encoding"
)

// Kind is the closed enumeration of status categories.
//
// It is defined as a separate type (not just int) so that other packages can
// explicitly declare which values they expect and to avoid accidental mixing
// of kinds with ordinary integers. The zero value is OK.
type Kind int

// Canonical kind → string table.
//
// Keep this consistent with stringToKind below: both tables are
// hand-maintained and must stay exact mirrors of each other. A test asserts
// the bijection.
//
// The map is populated once at package init and never written again, so it
// is safe for concurrent readers without locking.
var kindToString = map[Kind]string{
	OK:           "OK",
	OutOfMemory:  "Out of memory",
	KeyError:     "Key error",
	TypeError:    "Type error",
	Invalid:      "Invalid",
	IOError:      "IOError",
	UnknownError: "Unknown error",
}

// Canonical string → kind table.
//
// Keep this consistent with kindToString above.
var stringToKind = map[string]Kind{
	"OK":            OK,
	"Out of memory": OutOfMemory,
	"Key error":     KeyError,
	"Type error":    TypeError,
	"Invalid":       Invalid,
	"IOError":       IOError,
	"Unknown error": UnknownError,
}

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// String returns the canonical string for the kind.
//
// For a Kind value outside the closed set — unreachable through this
// package's constants, but representable since Kind is an integer type — it
// returns the UnknownError string rather than failing.
func (k Kind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return kindToString[UnknownError]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindToString[k]
	return ok
}

// FromString resolves a canonical string back to its Kind.
//
// Unrecognized input resolves to IOError. Note the asymmetry with
// Kind.String, whose defensive fallback is UnknownError: the IOError default
// is a long-standing part of the decode contract and peers rely on it, so it
// is kept even though the two directions disagree.
func FromString(s string) Kind {
	if k, ok := stringToKind[s]; ok {
		return k
	}
	return IOError
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation, including the
// UnknownError fallback for out-of-range values, so marshaling never fails.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It follows the FromString contract: unrecognized text decodes to IOError
// and no error is returned. Surrounding whitespace is ignored; the canonical
// strings themselves are matched exactly, case included.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = FromString(string(bytes.TrimSpace(text)))
	return nil
}
