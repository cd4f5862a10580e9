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

// Package httpx writes status values as HTTP error responses.
//
// The body is a google.rpc.Status JSON document carrying the resolved gRPC
// code, the failure message, and a google.rpc.ErrorInfo detail whose Reason
// is the canonical kind string. Using the same wire shape as the gRPC
// adapter keeps clients' decoding logic identical across both transports.
package httpx

import (
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"packline.dev/status"
	"packline.dev/status/apis"
)

// Writer is a thin adapter that knows how to turn a failure status into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the status as a google.rpc.Status JSON body and writes it
// to the response writer. The HTTP status is resolved via the Mapper.
//
// The success status produces no output; callers write their own success
// response. For failures, whatever message the status carries is exposed
// as-is: higher-level handlers should apply redaction policies if needed.
func (w Writer) Write(rw http.ResponseWriter, s status.Status) {
	if s.IsOK() {
		return
	}

	st := w.Mapper.Status(s.Kind())

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: s.Message(),
	}
	info := &errdetails.ErrorInfo{
		Reason: s.KindString(),
		Domain: apis.Domain,
	}
	if detail, err := anypb.New(info); err == nil {
		body.Details = append(body.Details, detail)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of the Any detail, field names (json_name),
	// and well-known types.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	_, _ = rw.Write(b)
}
