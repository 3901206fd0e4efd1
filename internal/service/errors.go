package service

import "fmt"

// StorageReadError wraps a failed load of the entries slot. The store logs it
// and starts from an empty list.
type StorageReadError struct {
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read entries: %v", e.Err)
}

func (e *StorageReadError) Unwrap() error {
	return e.Err
}

// StorageWriteError wraps a failed write of the entries slot. The in-memory
// list stays authoritative.
type StorageWriteError struct {
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write entries: %v", e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
