package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Coerce converts a raw API value into the Go value matching the destination
// column type ("string", "int", "float", "date"). A nil input stays nil so it
// lands in the database as NULL. CMS publishes most numeric fields as strings,
// with "N/A" and "Too Few to Report" standing in for missing values.
func Coerce(val interface{}, colType string) (interface{}, error) {
	if val == nil {
		return nil, nil
	}
	switch colType {
	case "int":
		return ToInt(val)
	case "float":
		return ToFloat(val)
	case "date":
		return ToDate(val)
	case "string", "":
		return ToString(val), nil
	default:
		return nil, fmt.Errorf("unknown column type %q", colType)
	}
}

func ToString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		// JSON numbers decode as float64; keep integral values clean.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func ToInt(val interface{}) (interface{}, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case []byte:
		return ToInt(string(v))
	case string:
		s := strings.TrimSpace(v)
		if isNotAvailable(s) {
			return nil, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to int", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to int", val)
	}
}

func ToFloat(val interface{}) (interface{}, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case []byte:
		return ToFloat(string(v))
	case string:
		s := strings.TrimSpace(v)
		if isNotAvailable(s) {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float", v)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to float", val)
	}
}

// ToDate parses the date layouts the CMS datastore actually emits.
func ToDate(val interface{}) (interface{}, error) {
	switch v := val.(type) {
	case time.Time:
		return v, nil
	case []byte:
		return ToDate(string(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" || isNotAvailable(s) {
			return nil, nil
		}
		layouts := []string{
			"01/02/2006",
			"2006-01-02",
			time.RFC3339,
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("unable to parse date: %s", v)
	default:
		return nil, fmt.Errorf("cannot convert %T to date", val)
	}
}

func isNotAvailable(s string) bool {
	switch strings.ToLower(s) {
	case "", "n/a", "na", "not available", "too few to report":
		return true
	}
	return false
}
