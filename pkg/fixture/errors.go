package fixture

import "fmt"

// InvalidArgumentError is returned if a generator argument is missing or cannot be parsed.
// It is always detected before any file is created.
type InvalidArgumentError struct {
	Arg    string // name of the argument, e.g. "suffix"
	Value  string // offending value, empty if the argument is missing
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
	}
	return fmt.Sprintf("invalid argument %s %q: %s", e.Arg, e.Value, e.Reason)
}

// FileAccessError is returned if the fixture file cannot be created, written or read.
// A file that was already created is left as it is.
type FileAccessError struct {
	Op   string // "create", "write", "flush", "close", "open" or "read"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// DiskFull is wrapped into a FileAccessError if the device has no space left
type DiskFull struct {
	Err error
}

func (e *DiskFull) Error() string {
	return "disk full"
}

func (e *DiskFull) Unwrap() error {
	return e.Err
}
