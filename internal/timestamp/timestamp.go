// Package timestamp converts hand-written lyric timestamps into millisecond
// offsets.
//
// Lyric sheets mix numeric seconds with several colon-separated string forms
// (M:SS:MMM, M:SS, SS:MMM, S, S.MMM). The two-part form is ambiguous; it is
// resolved by digit length: a three-character second part with a first part of
// at most two characters reads as seconds:milliseconds, anything else as
// minutes:seconds. Values such as "100:000" therefore read as minutes.
package timestamp

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotNumeric reports a timestamp part with no leading number.
	ErrNotNumeric = errors.New("timestamp is not numeric")
	// ErrUnrecognized reports a timestamp with more than three colon-separated parts
	// or a raw value of an unsupported type.
	ErrUnrecognized = errors.New("unrecognized timestamp format")
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)
)

// Normalize converts a raw timestamp (seconds as a number, or a string) into
// milliseconds. Malformed input yields 0.
func Normalize(value any) int64 {
	ms, err := FromValue(value)
	if err != nil {
		return 0
	}
	return ms
}

// FromValue is Normalize with the failure reason preserved.
func FromValue(value any) (int64, error) {
	switch v := value.(type) {
	case string:
		return Parse(v)
	case float64:
		return FromSeconds(v)
	case float32:
		return FromSeconds(float64(v))
	case int:
		return int64(v) * 1000, nil
	case int32:
		return int64(v) * 1000, nil
	case int64:
		return v * 1000, nil
	case uint:
		return int64(v) * 1000, nil
	case uint32:
		return int64(v) * 1000, nil
	case uint64:
		return int64(v) * 1000, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnrecognized, value)
	}
}

// FromSeconds converts fractional seconds into whole milliseconds.
func FromSeconds(seconds float64) (int64, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, seconds)
	}
	return int64(math.Round(seconds * 1000)), nil
}

// Parse converts a string timestamp into milliseconds.
func Parse(value string) (int64, error) {
	parts := strings.Split(value, ":")
	switch len(parts) {
	case 3:
		nums, err := parseInts(value, parts)
		if err != nil {
			return 0, err
		}
		return nums[0]*60000 + nums[1]*1000 + nums[2], nil
	case 2:
		nums, err := parseInts(value, parts)
		if err != nil {
			return 0, err
		}
		if isSecondsMillis(parts) {
			return nums[0]*1000 + nums[1], nil
		}
		return nums[0]*60000 + nums[1]*1000, nil
	case 1:
		seconds, err := leadingFloat(parts[0])
		if err != nil {
			return 0, fmt.Errorf("timestamp %q: %w", value, err)
		}
		return FromSeconds(seconds)
	default:
		return 0, fmt.Errorf("timestamp %q: %w", value, ErrUnrecognized)
	}
}

// isSecondsMillis reports whether a two-part timestamp reads as SS:MMM.
func isSecondsMillis(parts []string) bool {
	return utf8.RuneCountInString(parts[1]) == 3 && utf8.RuneCountInString(parts[0]) <= 2
}

func parseInts(value string, parts []string) ([]int64, error) {
	nums := make([]int64, len(parts))
	for i, part := range parts {
		n, err := leadingInt(part)
		if err != nil {
			return nil, fmt.Errorf("timestamp %q part %d: %w", value, i+1, err)
		}
		nums[i] = n
	}
	return nums, nil
}

// leadingInt parses the integer prefix of s, ignoring surrounding whitespace
// and any trailing garbage ("12abc" is 12).
func leadingInt(s string) (int64, error) {
	match := intPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, ErrNotNumeric
	}
	n, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, err)
	}
	return n, nil
}

func leadingFloat(s string) (float64, error) {
	match := floatPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, ErrNotNumeric
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, err)
	}
	return f, nil
}

// Format renders milliseconds as M:SS.mmm.
func Format(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000
	return fmt.Sprintf("%s%d:%02d.%03d", sign, minutes, seconds, millis)
}
