package headers

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Pair is a single header name/value pair.
type Pair struct {
	// Name is the header field name as supplied.
	Name string
	// Value is the header field value.
	Value string
}

// Headers is an ordered, duplicate-preserving collection of header pairs.
// The zero value is ready to use.
type Headers struct {
	pairs []Pair
}

// Static error definitions for better error handling.
var (
	// ErrInvalidName indicates that a header name is empty or contains forbidden characters.
	ErrInvalidName = errors.New("invalid header name")
	// ErrIndexOutOfRange indicates that a header index does not exist.
	ErrIndexOutOfRange = errors.New("header index out of range")
)

// New creates an empty header collection.
func New() *Headers {
	return &Headers{}
}

// Len returns the number of pairs.
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}

	return len(h.pairs)
}

// Add appends a pair. Existing pairs with the same name are kept.
func (h *Headers) Add(name, value string) error {
	if err := validateName(name); err != nil {
		return err
	}

	h.pairs = append(h.pairs, Pair{Name: name, Value: value})

	return nil
}

// Replace sets the value of the first pair named name, or appends a new pair
// when no such pair exists.
func (h *Headers) Replace(name, value string) error {
	if err := validateName(name); err != nil {
		return err
	}

	for i := range h.pairs {
		if strings.EqualFold(h.pairs[i].Name, name) {
			h.pairs[i].Value = value

			return nil
		}
	}

	h.pairs = append(h.pairs, Pair{Name: name, Value: value})

	return nil
}

// Value returns the value of the first pair named name (case-insensitive).
func (h *Headers) Value(name string) (string, bool) {
	if h == nil {
		return "", false
	}

	for _, p := range h.pairs {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}

	return "", false
}

// Name returns the name of the pair at index i.
func (h *Headers) Name(i int) (string, error) {
	if i < 0 || i >= h.Len() {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	return h.pairs[i].Name, nil
}

// Header returns the pair at index i formatted as a single "Name: Value" line.
func (h *Headers) Header(i int) (string, error) {
	if i < 0 || i >= h.Len() {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	p := h.pairs[i]

	return p.Name + ": " + p.Value, nil
}

// Pairs iterates over the pairs in insertion order.
func (h *Headers) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		if h == nil {
			return
		}

		for _, p := range h.pairs {
			if !yield(p) {
				return
			}
		}
	}
}

// validateName rejects names that would break a "Name: Value" line.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}

	if strings.ContainsAny(name, ": \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}
