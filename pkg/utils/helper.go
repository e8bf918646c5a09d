package utils

import (
	"strconv"
	"strings"

	"biograf/pkg/apperror"
)

// ParseID parses a path or query identifier. Ids are positive integers.
func ParseID(name, value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, apperror.InvalidInput("%s is required", name)
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidInput("%s must be a positive integer", name)
	}

	return id, nil
}

// SeatLabel renders a seat as row followed by number, e.g. "A1".
func SeatLabel(row string, number int) string {
	return row + strconv.Itoa(number)
}
