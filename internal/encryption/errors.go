package encryption

import "errors"

var (
	// ErrIO wraps failures of the file system collaborator. Nothing is retried.
	ErrIO = errors.New("i/o failure")
	// ErrNoKey is returned when neither a password nor a raw key is configured.
	ErrNoKey = errors.New("no password or key given")
	// ErrFailed is returned by ProcessFiles when at least one file failed.
	ErrFailed = errors.New("one or more files failed")
)
