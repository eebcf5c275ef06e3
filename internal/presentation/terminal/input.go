package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

func trimInput(s string) string {
	return strings.TrimSpace(s)
}

// parseIndex converts a 1-based menu choice into a 0-based index.
func parseIndex(s string, max int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("invalid choice %q", s)
	}
	return n - 1, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
