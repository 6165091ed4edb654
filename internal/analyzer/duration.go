package analyzer

import (
	"regexp"
	"strconv"
)

// ISO-8601 period grammar restricted to the canonical ordered form
// P[nY][nM][nW][nD][T[nH][nM][nS]]. Years are approximated as 365 days
// and months as 30 days; both approximations are deliberate and must be
// kept for output parity with historical exports.
var isoDurationRE = regexp.MustCompile(
	`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseISODuration converts an ISO-8601 duration string into total
// seconds. A malformed or empty string yields 0, never an error.
func ParseISODuration(dur string) int64 {
	if dur == "" {
		return 0
	}
	m := isoDurationRE.FindStringSubmatch(dur)
	if m == nil {
		return 0
	}

	group := func(i int) float64 {
		if m[i] == "" {
			return 0
		}
		v, err := strconv.ParseFloat(m[i], 64)
		if err != nil {
			return 0
		}
		return v
	}

	total := group(1)*365*86400 +
		group(2)*30*86400 +
		group(3)*7*86400 +
		group(4)*86400 +
		group(5)*3600 +
		group(6)*60 +
		group(7)

	return int64(total)
}
