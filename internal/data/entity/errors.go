package entity

import "errors"

// ErrConflict indicates a guarded status update lost to a concurrent writer:
// the booking's status changed since the caller last read it. The stored
// record is authoritative; callers should refetch rather than retry.
var ErrConflict = errors.New("booking status changed concurrently")
