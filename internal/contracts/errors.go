package contracts

import (
	"errors"
	"fmt"
)

// ErrQuoteNotFound is matched by every error meaning "the page carried no quote data"
var ErrQuoteNotFound = errors.New("quote data not found")

// TransportError wraps a failure to obtain the raw page from Euronext
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SelectorNotFoundError is returned when a required element is absent from the page
type SelectorNotFoundError struct {
	Selector string
}

func (e *SelectorNotFoundError) Error() string {
	return fmt.Sprintf("element %q not found", e.Selector)
}

func (e *SelectorNotFoundError) Is(target error) bool {
	return target == ErrQuoteNotFound
}

// MarkerNotFoundError is returned when the labelled table row is absent
type MarkerNotFoundError struct {
	Marker string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("row %q not found", e.Marker)
}

func (e *MarkerNotFoundError) Is(target error) bool {
	return target == ErrQuoteNotFound
}

// EmptyFieldError is returned when a located element exists but holds no text
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s is empty", e.Field)
}

func (e *EmptyFieldError) Is(target error) bool {
	return target == ErrQuoteNotFound
}

// InvalidNumberError carries the raw text that did not convert to a finite number
type InvalidNumberError struct {
	Field string
	Raw   string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid numeric value for %s: %q", e.Field, e.Raw)
}
