package numberutils

import (
	"strconv"
	"strings"
)

// ToFloat64Ptr converts the given string to a float64 pointer.
// An empty string yields nil, so callers can tell a missing value from a zero.
func ToFloat64Ptr(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
