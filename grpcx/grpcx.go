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

// Package grpcx adapts status values to and from gRPC errors.
//
// On the server side, UnaryServerInterceptor converts handler errors that
// carry a status kind into gRPC status errors with a google.rpc.ErrorInfo
// detail whose Reason is the canonical kind string. On the client side,
// FromError reverses the conversion. Errors that do not carry a kind pass
// through both directions untouched.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"packline.dev/status"
	"packline.dev/status/apis"
	"packline.dev/status/kind"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errors carrying a status kind into gRPC errors with a google.rpc.ErrorInfo
// detail.
//
// The provided apis.Mapper is used to map kinds into transport status codes.
// Errors that do not implement apis.KindedError are returned as-is, and so
// are errors whose reported kind is kind.OK or outside the closed set.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ke apis.KindedError
		if !errors.As(err, &ke) {
			// Not ours — return as-is.
			return nil, err
		}
		if k := ke.StatusKind(); k == kind.OK || !k.Valid() {
			// An error claiming success contradicts itself; treat it as foreign.
			return nil, err
		}

		return nil, ToError(status.FromError(err), m)
	}
}

// ToError converts a Status into a gRPC error using the given mapper.
//
// The success status converts to nil. A failure becomes a gRPC status error
// whose message is the failure message and whose details carry a
// google.rpc.ErrorInfo with the canonical kind string as Reason, so that the
// kind survives the wire even when the gRPC code is lossy (several kinds map
// to the same code).
func ToError(s status.Status, m apis.Mapper) error {
	if s.IsOK() {
		return nil
	}

	st := m.Status(s.Kind())
	base := gstatus.New(st.GRPC, s.Message())

	info := &errdetails.ErrorInfo{
		Reason: s.KindString(),
		Domain: apis.Domain,
	}

	// Try to attach the detail. If it fails — return base.
	if with, err := base.WithDetails(info); err == nil {
		return with.Err()
	}
	return base.Err()
}

// FromError reconstructs a Status from a gRPC error produced by ToError.
// Useful in tests and client code.
//
// A nil error decodes to the success status. The second return value is
// false when the error is not a gRPC status error or carries no ErrorInfo
// detail from this module. A detail whose Reason decodes to kind.OK is also
// rejected; a well-formed peer never produces one on an error status.
//
// The kind is recovered with kind.FromString, so an unrecognized Reason
// (for example one written by a newer peer) decodes to kind.IOError per the
// decoder contract.
func FromError(err error) (status.Status, bool) {
	if err == nil {
		return status.OK(), true
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return status.Status{}, false
	}
	if st.Code() == gcodes.OK {
		return status.OK(), true
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != apis.Domain {
			continue
		}
		k := kind.FromString(info.GetReason())
		if k == kind.OK {
			return status.Status{}, false
		}
		return status.New(k, st.Message()), true
	}
	return status.Status{}, false
}
