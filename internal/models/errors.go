package models

import "errors"

// ErrNotFound marks a missing referenced entity (company, project,
// payment request). Handlers map it to 404; everything else is a 500.
var ErrNotFound = errors.New("not found")
