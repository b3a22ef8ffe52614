package web

import (
	"errors"
	"net/http"

	cartapp "github.com/dwikikusuma/soundshop/internal/cart/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapErr translates service errors into status errors. Unknown errors become Internal.
func mapErr(err error) error {
	if errors.Is(err, cartapp.ErrProductNotFound) {
		return status.Error(codes.NotFound, "Product not found")
	}
	if errors.Is(err, cartapp.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, "internal error")
}

func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", st.Message()
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
