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

// The full, closed enumeration of status kinds.
//
// OK is deliberately the zero value: a zero Kind (and therefore a zero
// status.Status) means success. The numeric values themselves are not part
// of the wire contract — only the canonical strings are — but they are kept
// stable anyway so that kinds can be compared across versions in logs and
// core dumps.
const (
	// OK marks a successful status. It is never a valid failure kind:
	// constructing a failure with OK is a caller bug and panics.
	OK Kind = iota

	// OutOfMemory indicates that an allocation needed to complete the
	// operation could not be satisfied.
	OutOfMemory

	// KeyError indicates that a looked-up key (map key, field id,
	// registered type id) was not found.
	KeyError

	// TypeError indicates a type mismatch: the value encountered does not
	// have the type the operation requires.
	TypeError

	// Invalid indicates that an argument or payload is malformed in a way
	// that is not a type or key problem — bad length, bad range, bad
	// structure.
	Invalid

	// IOError indicates a failure while reading or writing an underlying
	// buffer, stream, file or socket.
	//
	// IOError is also what FromString resolves unrecognized strings to, so
	// a decoded IOError may stand for "the peer sent a kind this version
	// does not know".
	IOError

	// UnknownError is the catch-all for failures that fit no other
	// category. It is also the defensive String() fallback for a Kind
	// value outside the closed set.
	UnknownError
)
