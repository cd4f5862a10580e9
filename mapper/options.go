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

package mapper

import (
	"google.golang.org/grpc/codes"

	"packline.dev/status/kind"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPStatus sets or replaces the HTTP status for the given kind.
// The kind must be one of the defined kinds and the status a valid HTTP
// status code; New reports a violation as an error.
func WithHTTPStatus(k kind.Kind, httpStatus int) Option {
	return func(b *builder) { b.httpByKind[k] = httpStatus }
}

// WithGRPCCode sets or replaces the gRPC status code for the given kind.
// The kind must be one of the defined kinds; New reports a violation as an
// error.
func WithGRPCCode(k kind.Kind, c codes.Code) Option {
	return func(b *builder) { b.grpcByKind[k] = c }
}
