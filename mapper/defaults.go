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
	"net/http"

	"google.golang.org/grpc/codes"

	"packline.dev/status/kind"
)

// defaultHTTP defines the library's built-in HTTP mappings for the status
// kinds. These are only defaults: callers are expected to override them at
// the boundary where HTTP is actually produced if their API policy differs.
var defaultHTTP = map[kind.Kind]int{
	kind.OK: http.StatusOK,

	// Client-shaped failures.
	kind.TypeError: http.StatusBadRequest, // Value has the wrong type for the operation.
	kind.Invalid:   http.StatusBadRequest, // Malformed argument or payload.
	kind.KeyError:  http.StatusNotFound,   // Looked-up key does not exist.

	// Server-shaped failures.
	kind.OutOfMemory:  http.StatusInsufficientStorage, // Allocation failed; the node is out of resources.
	kind.IOError:      http.StatusInternalServerError, // Underlying read/write failed.
	kind.UnknownError: http.StatusInternalServerError, // Uncategorized failure; expose nothing specific.
}

// defaultGRPC defines the library's built-in gRPC mappings for the status
// kinds, chosen to align with canonical gRPC status code semantics.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.OK: codes.OK,

	kind.TypeError: codes.InvalidArgument,
	kind.Invalid:   codes.InvalidArgument,
	kind.KeyError:  codes.NotFound,

	kind.OutOfMemory:  codes.ResourceExhausted,
	kind.IOError:      codes.Internal,
	kind.UnknownError: codes.Unknown,
}
