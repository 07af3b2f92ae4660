package domain

import "errors"

// ErrRenderTimeout is returned when a rendered results page never reaches
// the expected state within its wait bound. It is the only fatal error in a
// crawl run; there is no partial-result recovery for it.
var ErrRenderTimeout = errors.New("render wait timed out")
