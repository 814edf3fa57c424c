package conv

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/scripledger/scrip/pkg/api"
)

// ErrorToStatus maps ledger errors onto gRPC statuses. Each sentinel gets
// its own code, so clients on the other side of the wire can get the
// sentinel back. Anything unrecognized is Internal.
func ErrorToStatus(err error) error {
	if err == nil {
		return nil
	}

	code := codes.Internal

	switch {
	case errors.Is(err, api.ErrInvalidRange):
		code = codes.OutOfRange
	case errors.Is(err, api.ErrInvalidAmount):
		code = codes.InvalidArgument
	case errors.Is(err, api.ErrOwnershipViolation):
		code = codes.FailedPrecondition
	case errors.Is(err, api.ErrNotFound):
		code = codes.NotFound
	}

	return status.Error(code, err.Error())
}

// ErrorFromStatus is the other half of ErrorToStatus: given an error from an
// RPC, restore the ledger sentinel so callers can use errors.Is as if the
// call had been local. Errors which don't correspond to a sentinel are
// returned as they are.
func ErrorFromStatus(err error) error {
	if err == nil {
		return nil
	}

	s, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sentinel error
	switch s.Code() {
	case codes.OutOfRange:
		sentinel = api.ErrInvalidRange
	case codes.FailedPrecondition:
		sentinel = api.ErrOwnershipViolation
	case codes.NotFound:
		sentinel = api.ErrNotFound
	case codes.InvalidArgument:
		// InvalidArgument is also used for malformed requests which never
		// reached the ledger, so only claim the ones the ledger produced.
		if !strings.HasSuffix(s.Message(), api.ErrInvalidAmount.Error()) {
			return err
		}
		sentinel = api.ErrInvalidAmount
	default:
		return err
	}

	msg := strings.TrimSuffix(s.Message(), sentinel.Error())
	msg = strings.TrimSuffix(msg, ": ")
	if msg == "" {
		return sentinel
	}

	return fmt.Errorf("%s: %w", msg, sentinel)
}
