package packagestatus

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined package status")
	ErrPackageNotFound = errors.New("package not found")
)
