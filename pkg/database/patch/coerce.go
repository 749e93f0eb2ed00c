package patch

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

var (
	errNotString   = errors.New("must be a string")
	errNotInteger  = errors.New("must be an integer")
	errNotBool     = errors.New("must be a boolean")
	errNotDate     = errors.New("must be a valid date (YYYY-MM-DD)")
	errNotNull     = errors.New("cannot be null")
	errNotPositive = errors.New("must be a positive integer")
)

// Positive rejects integers below 1, zero included. validation.Min skips
// zero values.
var Positive = validation.By(func(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	if n, ok := v.(int); ok && n < 1 {
		return errNotPositive
	}
	return nil
})

// String accepts a JSON string, trimmed, checked against rules.
func String(rules ...validation.Rule) Coercer {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			if value == nil {
				return nil, errNotNull
			}
			return nil, errNotString
		}
		s = strings.TrimSpace(s)
		if err := validation.Validate(s, rules...); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// NullableString is String that maps JSON null to SQL NULL.
func NullableString(rules ...validation.Rule) Coercer {
	return nullable(String(rules...))
}

// BlankAsNull wraps c so that a value coercing to the empty string is
// written as SQL NULL.
func BlankAsNull(c Coercer) Coercer {
	return func(value any) (any, error) {
		v, err := c(value)
		if err != nil {
			return nil, err
		}
		if s, ok := v.(string); ok && s == "" {
			return nil, nil
		}
		return v, nil
	}
}

// Int accepts a JSON number with no fractional part.
func Int(rules ...validation.Rule) Coercer {
	return func(value any) (any, error) {
		if value == nil {
			return nil, errNotNull
		}
		n, err := toInt(value)
		if err != nil {
			return nil, err
		}
		if err := validation.Validate(n, rules...); err != nil {
			return nil, err
		}
		return n, nil
	}
}

func NullableInt(rules ...validation.Rule) Coercer {
	return nullable(Int(rules...))
}

func Bool() Coercer {
	return func(value any) (any, error) {
		b, ok := value.(bool)
		if !ok {
			return nil, errNotBool
		}
		return b, nil
	}
}

// NullableDate parses YYYY-MM-DD into a time.Time; null clears the column.
func NullableDate() Coercer {
	return nullable(func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errNotDate
		}
		d, err := time.Parse(DateLayout, strings.TrimSpace(s))
		if err != nil {
			return nil, errNotDate
		}
		return d, nil
	})
}

func nullable(c Coercer) Coercer {
	return func(value any) (any, error) {
		if value == nil {
			return nil, nil
		}
		return c(value)
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, errNotInteger
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, errNotInteger
		}
		return int(n), nil
	default:
		return 0, errNotInteger
	}
}
