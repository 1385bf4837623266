package docker

import (
	"math"
	"strconv"
	"strings"
)

// ParseSize converts a human-readable size emitted by the docker CLI
// (e.g. "1.5GB", "234.6MB", "0B") into bytes. Docker reports decimal SI
// units, so GB is 1e9, not 1<<30. Both "kB" and "KB" appear in the wild
// and are treated identically.
//
// Unparsable input yields 0: `docker system df` cells are free-form text
// and a single bad cell must not abort the whole report.
func ParseSize(s string) uint64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" || s == "0B" {
		return 0
	}

	num := s
	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "GB"):
		num, multiplier = s[:len(s)-2], 1e9
	case strings.HasSuffix(s, "MB"):
		num, multiplier = s[:len(s)-2], 1e6
	case strings.HasSuffix(s, "kB"), strings.HasSuffix(s, "KB"):
		num, multiplier = s[:len(s)-2], 1e3
	case strings.HasSuffix(s, "B"):
		num, multiplier = s[:len(s)-1], 1
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || n <= 0 {
		return 0
	}
	// Round, don't truncate: 32.3 is not exactly representable, and
	// 32.3*1000 lands at 32299.999..., one byte under the true value.
	return uint64(math.Round(n * multiplier))
}

// ParseReclaimable parses a reclaimable-space cell, which may carry a
// trailing percentage annotation: "1.2GB (50%)". The annotation is
// informational only and is discarded.
func ParseReclaimable(s string) uint64 {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	return ParseSize(strings.TrimSpace(s))
}
