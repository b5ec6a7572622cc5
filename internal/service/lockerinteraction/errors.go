package lockerinteraction

import "errors"

var (
	ErrItemNotFound     = errors.New("cargo item not found in stop manifest")
	ErrScanInProgress   = errors.New("another scan is in progress")
	ErrStopNotReady     = errors.New("stop has unprocessed cargo items")
	ErrActionInProgress = errors.New("action already in progress")
)
