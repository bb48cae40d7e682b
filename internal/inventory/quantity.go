package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RemoveSentinel is the quantity text that asks for an item to be deleted.
const RemoveSentinel = "REMOVE"

// ErrInvalidQuantity is returned when a quantity is neither an integer nor RemoveSentinel.
var ErrInvalidQuantity = errors.New("quantity must be an integer or " + RemoveSentinel)

// Quantity is the value handed to SetQuantity: a count, or the removal sentinel.
type Quantity struct {
	value  int
	remove bool
}

// Count returns a Quantity holding n.
func Count(n int) Quantity {
	return Quantity{value: n}
}

// Remove returns the removal sentinel.
func Remove() Quantity {
	return Quantity{remove: true}
}

// ParseQuantity reads an integer or RemoveSentinel.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == RemoveSentinel {
		return Remove(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	return Count(n), nil
}

// Removes reports whether applying q deletes the item. A zero count does.
func (q Quantity) Removes() bool {
	return q.remove || q.value == 0
}

// Value is the count carried by q; zero for the sentinel.
func (q Quantity) Value() int {
	if q.remove {
		return 0
	}
	return q.value
}

func (q Quantity) String() string {
	if q.remove {
		return RemoveSentinel
	}
	return strconv.Itoa(q.value)
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.remove {
		return json.Marshal(RemoveSentinel)
	}
	return json.Marshal(q.value)
}

// UnmarshalJSON accepts a JSON number or the string "REMOVE".
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*q = Count(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidQuantity, data)
	}
	parsed, err := ParseQuantity(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
