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

// Package adapter converts status values into the portable shapes defined
// by the apis package.
package adapter

import (
	"packline.dev/status"
	"packline.dev/status/apis"
)

// ToDescriptor converts a status together with its resolved transport
// statuses into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the canonical kind string and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(s status.Status, st apis.Status) apis.Descriptor {
	return apis.Descriptor{
		Kind:       s.KindString(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    s.Message(),
	}
}

// ToView converts a status into a public ErrorView. No redaction or
// filtering is performed; the view exposes exactly what the status contains.
func ToView(s status.Status) apis.ErrorView {
	return apis.ErrorView{
		Kind:    s.KindString(),
		Message: s.Message(),
	}
}
