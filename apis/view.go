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

// Domain is the value both transport adapters put into the Domain field of
// google.rpc.ErrorInfo details. Receivers use it to recognize details
// produced by this module before trusting the Reason field as a canonical
// kind string.
const Domain = "packline.dev/status"

// ErrorView is a minimal, serializable representation of a failure status.
//
// This is not the concrete status type used internally — it is the shape
// that we are comfortable exposing over the wire or logging. Keeping it here
// (in apis) allows both HTTP and gRPC adapters to share the same struct.
type ErrorView struct {
	// Kind is the canonical kind string, e.g. "Key error", "IOError".
	//
	// Only the canonical strings from the kind package may appear here;
	// receivers decode them with kind.FromString.
	Kind string `json:"kind"`

	// Message is the human-friendly failure message. It MAY be empty.
	Message string `json:"message,omitempty"`
}
