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

package apis

import "packline.dev/status/kind"

// KindedError represents an error that is classified by a status kind.
//
// The kind answers the question "what category of failure is this?" and is
// the value that transport adapters use to decide which status code to
// return to the client. Adapters should treat errors that do not implement
// this interface as foreign and leave them untouched.
//
// Implementations MUST return one of the defined, non-OK kinds. An error
// that claims kind.OK is contradicting itself; callers are expected to treat
// such a value as foreign rather than try to repair it.
type KindedError interface {
	error

	// StatusKind returns the failure category of the error.
	StatusKind() kind.Kind
}
