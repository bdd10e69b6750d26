package server

import (
	"errors"

	"blockfs/internal/namenode/records"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toGRPCError translates records-layer errors to transport status codes.
func toGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, records.ErrNoCapacity) {
		return preconditionStatus("NO_CAPACITY", "placement", err.Error())
	}
	if errors.Is(err, records.ErrPlacementLost) {
		return status.Error(codes.Internal, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func preconditionStatus(code, subject, message string) error {
	st := status.New(codes.FailedPrecondition, message)
	withDetails, err := st.WithDetails(&errdetails.PreconditionFailure{
		Violations: []*errdetails.PreconditionFailure_Violation{
			{
				Type:        code,
				Subject:     subject,
				Description: message,
			},
		},
	})
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}
