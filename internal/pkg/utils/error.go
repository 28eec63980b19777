package utils

import (
	"fmt"
	"strings"
)

// Error collects messages from multiple failures into one listing.
// Nested *Error values are flattened, each item is rendered as a
// "- message" line under the optional prefix.
type Error struct {
	prefix string
	items  []string
}

func NewMultiError() *Error {
	return &Error{}
}

func WrapError(prefix string, err error) *Error {
	e := &Error{prefix: prefix + ":"}
	e.Add(err)
	return e
}

// PrefixError wraps err under prefix, keeping the sub-errors listing.
func PrefixError(prefix string, err error) error {
	return WrapError(prefix, err)
}

func (e *Error) SetPrefix(prefix string) {
	e.prefix = prefix
}

func (e *Error) Len() int {
	return len(e.items)
}

func (e *Error) Add(err error) {
	if sub, ok := err.(*Error); ok {
		for _, item := range sub.Errors() {
			e.addItem(item)
		}
		return
	}
	e.addItem(err.Error())
}

func (e *Error) Addf(format string, a ...any) {
	e.Add(fmt.Errorf(format, a...))
}

// AddRaw appends a preformatted line as-is.
func (e *Error) AddRaw(item string) {
	e.items = append(e.items, item)
}

func (e *Error) Errors() []string {
	return e.items
}

// ErrorOrNil returns nil when nothing was collected.
func (e *Error) ErrorOrNil() error {
	if len(e.items) == 0 {
		return nil
	}
	return e
}

func (e *Error) Error() string {
	if len(e.items) == 0 {
		return ""
	}
	msg := strings.Join(e.items, "\n")
	if e.prefix != "" {
		return e.prefix + "\n" + msg
	}
	return msg
}

func (e *Error) addItem(item string) {
	e.items = append(e.items, "- "+strings.TrimLeft(item, "- "))
}
