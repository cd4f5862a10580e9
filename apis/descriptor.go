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

// Descriptor is a flat, transport-friendly description of a resolved status.
//
// It intentionally uses a string for the kind (not the kind.Kind value type)
// so that it can be logged, serialized or forwarded over a message bus
// without the receiver importing this module. The transport statuses carried
// alongside are the ones resolved by a Mapper at the time the descriptor was
// produced.
type Descriptor struct {
	// Kind is the canonical kind string, e.g. "Type error".
	Kind string `json:"kind"`

	// HTTPStatus is the HTTP status resolved for this kind.
	// A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for this kind.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-friendly failure message, if any.
	Message string `json:"message,omitempty"`
}
