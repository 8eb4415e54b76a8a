package utils

import (
	"fmt"
	"strconv"
)

// ToInt64 converts various scalar types to int64 using explicit type
// switching. Provider attribute maps carry numbers as strings; database
// scans may surface several integer widths.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		i, _ := strconv.ParseInt(v, 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(string(v), 10, 64)
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.ParseInt(s, 10, 64)
		return i
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts common truthy encodings ("1", "true", 1, true) to bool.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int8, int16, int32, int64:
		return ToInt64(v) != 0
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	case []byte:
		b, _ := strconv.ParseBool(string(v))
		return b
	default:
		return false
	}
}

// GBToMB converts a gigabyte count to megabytes, the unit capacity is
// stored in locally.
func GBToMB(gb int64) int64 {
	return gb * 1024
}
