package model

import "errors"

var (
	// ErrCommentNotFound is returned both when a comment is missing and
	// when the caller is not allowed to touch it. Authorization failure is
	// deliberately indistinguishable from absence so non-owners cannot
	// probe for other members' reviews.
	ErrCommentNotFound = errors.New("comment not found")

	ErrBookNotFound    = errors.New("book not found")
	ErrUnauthenticated = errors.New("authentication required")
)
