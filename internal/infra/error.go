package infra

import (
	"errors"
	"log/slog"

	"luna-storefront/internal/pkg/errs"
)

type GatewayErrorKind string

// Upstream gateway error kinds
const (
	KindNotFound    GatewayErrorKind = "NOT_FOUND"
	KindRejected    GatewayErrorKind = "REJECTED"
	KindUnavailable GatewayErrorKind = "UNAVAILABLE"
	KindDecode      GatewayErrorKind = "DECODE"
)

// GatewayError is the single error shape the upstream gateways return. Kind
// drives control flow in the usecases; Message carries the upstream's
// user-facing text when the upstream supplied one.
type GatewayError struct {
	Kind    GatewayErrorKind
	Message string
	err     error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error) error {
	slogger.Error("Gateway error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, Message: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GatewayMessage extracts the upstream-supplied text from a gateway error,
// empty when err is not one.
func GatewayMessage(err error) string {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
