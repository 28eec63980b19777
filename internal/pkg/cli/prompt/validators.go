package prompt

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

func ValueRequired(val any) error {
	str, _ := val.(string)
	if len(str) == 0 {
		return errors.New("value is required")
	}
	return nil
}

// IntInRange validates a numeric answer inclusive of both bounds.
func IntInRange(min, max int) func(val any) error {
	return func(val any) error {
		str, _ := val.(string)
		number, err := cast.ToIntE(str)
		if err != nil {
			return fmt.Errorf(`"%s" is not a valid number`, str)
		}
		if number < min || number > max {
			return fmt.Errorf("value must be between %d and %d", min, max)
		}
		return nil
	}
}
