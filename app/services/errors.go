package services

import "errors"

// Business-rule errors surfaced by the services. Controllers map these to
// HTTP statuses; they are expected outcomes, not failures reported to
// monitoring.
var (
	ErrUnauthenticated   = errors.New("not signed in")
	ErrAlreadyResponded  = errors.New("already responded to this post")
	ErrSelfResponse      = errors.New("cannot respond to your own post")
	ErrResponderNotFound = errors.New("responder not found")
	ErrNotOwner          = errors.New("only the post owner may do this")
)
