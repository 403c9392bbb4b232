package committer

import "errors"

// ErrVersionConflict indicates a concurrent modification was detected by the
// optimistic version check.
var ErrVersionConflict = errors.New("version conflict")
