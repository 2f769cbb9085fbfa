package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrNotFound is returned by sources when a console, product or catalog does not exist.
var ErrNotFound = errors.New("not found")

// ErrSessionClosed is returned when an operation targets a cancelled or committed session.
var ErrSessionClosed = errors.New("session closed")

// ErrNotAtSummary is returned when committing a session that has not reached the summary step.
var ErrNotAtSummary = errors.New("valuation not complete")

// ErrLineNotFound is returned when a cart operation targets a product that is not in the cart.
var ErrLineNotFound = errors.New("cart line not found")

// ErrInvalidAnswer is returned when an answer does not target the current question or names an unknown option.
var ErrInvalidAnswer = errors.New("invalid answer")

// ErrInvalidCatalog is wrapped by catalog validation failures.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ErrInvalidLine is returned when a cart line cannot be added.
var ErrInvalidLine = errors.New("invalid cart line")
