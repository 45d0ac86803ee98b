package dlnaheader

import (
	"fmt"
	"math"
	"strconv"
)

// Unspecified stands for an offset that the header leaves out, such as
// the stop of an open-ended range "npt=10.0-".
const Unspecified uint64 = math.MaxUint64

const (
	msPerMinute = 60 * 1000
	msPerHour   = 60 * msPerMinute
	nsPerMs     = 1000 * 1000

	maxHours = math.MaxUint64/msPerHour - 1
)

// ParseNPTTime converts one normal play time value (DLNA 7.4.40.5) into
// nanoseconds. Both forms of the grammar are accepted:
//
//	npt-sec      = 1*DIGIT [ "." 1*DIGIT ]
//	npt-hhmmss   = npt-hh ":" npt-mm ":" npt-ss [ "." 1*DIGIT ]
//	npt-hh       = 1*DIGIT
//	npt-mm       = 1*2DIGIT
//	npt-ss       = 1*2DIGIT
//
// Minutes and seconds are not checked against 59.
//
// Seconds are read as a 32-bit float and milliseconds are accumulated and
// scaled in 32-bit float, matching the values real DLNA stacks report:
// "335.1" is 335099985920, not 335100000000.
func ParseNPTTime(s string) (uint64, error) {
	ms, ok := parseHHMMSS(s)
	if !ok {
		var secs float32
		secs, ok = parseSeconds(s, 0)
		ms = float32(secs * 1000)
	}
	if ok {
		if ns, ok := millisToNanos(ms); ok {
			return ns, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
}

func parseHHMMSS(s string) (ms float32, ok bool) {
	hh, rest := consumeDigits(s)
	if hh == "" || peek(rest) != ':' {
		return 0, false
	}
	mm, rest := consumeDigits(rest[1:])
	if mm == "" || len(mm) > 2 || peek(rest) != ':' {
		return 0, false
	}
	secs, ok := parseSeconds(rest[1:], 2)
	if !ok {
		return 0, false
	}
	hours, err := strconv.ParseUint(hh, 10, 64)
	if err != nil || hours > maxHours {
		return 0, false
	}
	mins, _ := strconv.ParseUint(mm, 10, 64)
	base := float32(hours*msPerHour + mins*msPerMinute)
	return base + float32(secs*1000), true
}

// parseSeconds parses 1*DIGIT [ "." 1*DIGIT ], which must make up all of s.
// If maxInt > 0, the integer part may have at most maxInt digits.
func parseSeconds(s string, maxInt int) (float32, bool) {
	ip, rest := consumeDigits(s)
	if ip == "" || (maxInt > 0 && len(ip) > maxInt) {
		return 0, false
	}
	if peek(rest) == '.' {
		var frac string
		frac, rest = consumeDigits(rest[1:])
		if frac == "" {
			return 0, false
		}
	}
	if rest != "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

func millisToNanos(ms float32) (uint64, bool) {
	ns := float32(ms * nsPerMs)
	if ns >= 1<<64 {
		return 0, false
	}
	return uint64(ns), true
}

// FormatNPTTime formats nanos as npt-hhmmss with millisecond precision,
// for example "1:02:03.450". Sub-millisecond digits are truncated.
func FormatNPTTime(nanos uint64) string {
	ms := nanos / nsPerMs
	secs := ms % msPerMinute
	return fmt.Sprintf("%d:%02d:%02d.%03d",
		ms/msPerHour, ms%msPerHour/msPerMinute, secs/1000, secs%1000)
}

// formatNPTSec formats nanos as npt-sec with millisecond precision.
func formatNPTSec(nanos uint64) string {
	ms := nanos / nsPerMs
	return fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
}
