package services

import "fmt"

// ValidationError reports a user-correctable problem with a candidate
// entry (missing food name, missing calories). Maps to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// StoreError wraps any failure coming back from the database layer.
// The service does not retry; the underlying cause is carried for the
// server-side log. Maps to HTTP 500.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

// EstimationError reports a vision-provider failure (timeout, provider
// error, unparseable reply). Never retried, never written to the ledger.
type EstimationError struct {
	Err error
}

func (e *EstimationError) Error() string { return fmt.Sprintf("image analysis failed: %v", e.Err) }

func (e *EstimationError) Unwrap() error { return e.Err }
