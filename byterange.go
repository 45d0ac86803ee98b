package dlnaheader

import (
	"fmt"
	"strconv"
)

// Units of byte ranges found in DLNA headers.
const (
	UnitBytes          = "bytes"
	UnitClearTextBytes = "cleartextbytes"
)

// A ByteRange is a range of byte offsets "unit=start-end/total", as found
// in TimeSeekRange.dlna.org, availableSeekRange.dlna.org, Content-Range
// and Content-Range.dtcp.com.
//
// If End is absent, it is Unspecified.
// If Total is absent or unknown ("*"), it is 0.
type ByteRange struct {
	Start uint64
	End   uint64
	Total uint64
}

// ParseByteRange finds the range of the given unit in v and parses it.
// The unit is matched regardless of case, and only as a whole word,
// so UnitBytes does not pick up "cleartextbytes=0-10". It may be followed
// by '=' or, as in Content-Range, by whitespace:
//
//	TimeSeekRange.dlna.org: npt=335.1-336.1/40445.4 bytes=1539686400-1540210688/304857907200
//	Content-Range: bytes 0-1859295/1859295
func ParseByteRange(v, unit string) (ByteRange, error) {
	r := ByteRange{End: Unspecified}
	i := indexWordFold(v, unit)
	if i == -1 {
		return r, fmt.Errorf("%w: %s", ErrMissingUnit, unit)
	}
	v = v[i+len(unit):]
	switch {
	case peek(v) == '=':
		v = v[1:]
	case isWS(peek(v)):
		v = skipWS(v)
	default:
		return r, fmt.Errorf("%w: %s", ErrMissingAssignment, unit)
	}

	var err error
	var start, end string
	start, v = consumeDigits(v)
	if peek(v) != '-' {
		return r, fmt.Errorf("%w: %s: no '-' after %q", ErrInvalidStart, unit, start)
	}
	if r.Start, err = parseOffset(start); err != nil {
		return r, fmt.Errorf("%w: %s: %w", ErrInvalidStart, unit, err)
	}
	v = v[1:]

	if isDigit(peek(v)) {
		end, v = consumeDigits(v)
		if c := peek(v); c != 0 && c != '/' && !isWS(c) {
			return r, fmt.Errorf("%w: %s: unexpected %q", ErrInvalidStop, unit, c)
		}
		if r.End, err = parseOffset(end); err != nil {
			return r, fmt.Errorf("%w: %s: %w", ErrInvalidStop, unit, err)
		}
	}

	if peek(v) == '/' {
		total, _ := consumeTo(v[1:])
		if total != "*" {
			if r.Total, err = parseOffset(total); err != nil {
				return r, fmt.Errorf("%w: %s: %w", ErrInvalidTotal, unit, err)
			}
		}
	}
	return r, nil
}

func parseOffset(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
