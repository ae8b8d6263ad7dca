package api

import "turnera/internal/pkg/errs"

// errNoUserContext reaches the error collector when a route behind
// RequireAuth runs without a user id in the gin context.
var errNoUserContext = errs.New("user id missing from request context")
