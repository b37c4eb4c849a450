// Package safecast implements checked conversions of loosely typed values
package safecast

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// StringToBool converts a flag-like string ("true", "1", "false", "0", ...) to a bool.
// An empty string is false.
func StringToBool(value string) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, nil
	}

	b, err := cast.ToBoolE(value)
	if err != nil {
		return false, fmt.Errorf("value %q is not a boolean", value)
	}

	return b, nil
}
