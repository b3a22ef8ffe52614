package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cartapp "github.com/dwikikusuma/soundshop/internal/cart/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPStatusFromGRPC(t *testing.T) {
	t.Run("InvalidArgument -> 400", func(t *testing.T) {
		err := status.Error(codes.InvalidArgument, "bad")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("NotFound -> 404", func(t *testing.T) {
		err := status.Error(codes.NotFound, "missing")
		gotStatus, gotCode, msg := httpStatusFromGRPC(err)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" || msg != "missing" {
			t.Fatalf("got (%d,%s,%s)", gotStatus, gotCode, msg)
		}
	})

	t.Run("Unavailable -> 503", func(t *testing.T) {
		err := status.Error(codes.Unavailable, "down")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusServiceUnavailable || gotCode != "UNAVAILABLE" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("DeadlineExceeded -> 503", func(t *testing.T) {
		err := status.Error(codes.DeadlineExceeded, "timeout")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusServiceUnavailable || gotCode != "UNAVAILABLE" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("non-grpc error -> 500", func(t *testing.T) {
		err := errors.New("boom")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}

func TestMapErr(t *testing.T) {
	t.Run("ProductNotFound -> 404 Product not found", func(t *testing.T) {
		err := fmt.Errorf("add: %w", cartapp.ErrProductNotFound)
		gotStatus, _, msg := httpStatusFromGRPC(mapErr(err))
		if gotStatus != http.StatusNotFound || msg != "Product not found" {
			t.Fatalf("got (%d,%s)", gotStatus, msg)
		}
	})

	t.Run("InvalidInput -> 400", func(t *testing.T) {
		gotStatus, _, _ := httpStatusFromGRPC(mapErr(cartapp.ErrInvalidInput))
		if gotStatus != http.StatusBadRequest {
			t.Fatalf("got %d", gotStatus)
		}
	})

	t.Run("status error passes through", func(t *testing.T) {
		gotStatus, _, _ := httpStatusFromGRPC(mapErr(status.Error(codes.Unavailable, "down")))
		if gotStatus != http.StatusServiceUnavailable {
			t.Fatalf("got %d", gotStatus)
		}
	})

	t.Run("unknown -> 500 without leaking detail", func(t *testing.T) {
		gotStatus, _, msg := httpStatusFromGRPC(mapErr(errors.New("disk on fire")))
		if gotStatus != http.StatusInternalServerError || msg != "internal error" {
			t.Fatalf("got (%d,%s)", gotStatus, msg)
		}
	})
}
