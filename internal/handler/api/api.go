// Package api holds the Gin handlers of the mobile-facing surface. Handlers
// bind and validate requests, call one usecase, and map its sentinel errors
// onto HTTP statuses; everything else lives below them.
package api

import "luna-storefront/internal/pkg/errs"

// errMissingUserID fires only when a handler runs without RequireAuth in
// front of it.
var errMissingUserID = errs.New("user id missing in context")
