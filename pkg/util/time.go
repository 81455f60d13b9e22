package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxServiceTime stands in for arrival times that could not be parsed.
const MaxServiceTime = time.Duration(math.MaxInt64)

var ErrInvalidServiceTime = errors.New("invalid service time")

// ParseServiceTime parses a GTFS style H:MM:SS offset from service-day midnight.
// Hours past 23 are valid and are not wrapped, trips running after midnight keep
// sorting after the ones that ran before it.
func ParseServiceTime(text string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidServiceTime, text)
	}

	var values [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidServiceTime, text)
		}
		values[i] = value
	}

	if values[1] > 59 || values[2] > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidServiceTime, text)
	}

	return time.Duration(values[0])*time.Hour +
		time.Duration(values[1])*time.Minute +
		time.Duration(values[2])*time.Second, nil
}

// FormatServiceTime is the inverse of ParseServiceTime.
func FormatServiceTime(t time.Duration) string {
	if t == MaxServiceTime {
		return "--:--:--"
	}

	seconds := int64(t / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
