package dlnaheader

import (
	"fmt"
	"strings"
)

// An NPTField is one bound of an NPT range.
type NPTField struct {
	Text    string // as it appears in the header, such as "0:00:48.716" or "*"
	Nanos   uint64
	Present bool
}

// An NPTRange is a normal play time range "npt=start-stop/total"
// (DLNA 7.4.40.5).
//
// Start is always present in a successfully parsed range.
// If Stop is absent, Stop.Nanos is Unspecified.
// If Total is absent or unknown ("*"), Total.Nanos is 0.
type NPTRange struct {
	Start NPTField
	Stop  NPTField
	Total NPTField
}

// TotalKnown reports whether r carries a numeric total duration.
func (r NPTRange) TotalKnown() bool {
	return r.Total.Present && r.Total.Text != "*"
}

// String reassembles r as it would appear in a header value, from the
// raw text of its fields.
func (r NPTRange) String() string {
	b := &strings.Builder{}
	b.WriteString("npt=")
	b.WriteString(r.Start.Text)
	b.WriteString("-")
	if r.Stop.Present {
		b.WriteString(r.Stop.Text)
	}
	if r.Total.Present {
		b.WriteString("/")
		b.WriteString(r.Total.Text)
	}
	return b.String()
}

// ParseNPTRange finds the NPT range in v and parses it. v is a header value,
// possibly with the field name included, such as:
//
//	TimeSeekRange.dlna.org : npt=335.1-336.1/40445.4 bytes=1539686400-1540210688/304857907200
//	availableSeekRange.dlna.org: 0 npt=0:00:00.000-0:00:48.716 bytes=0-5219255
//
// The "npt" token is matched regardless of case. Stop is taken only if
// a digit follows the '-', and total only if a '/' comes next.
//
// On error, the returned range holds the fields parsed before the failure,
// and the failing field's text. It must not be used for seeking.
func ParseNPTRange(v string) (NPTRange, error) {
	r := NPTRange{Stop: NPTField{Nanos: Unspecified}}
	i := indexFold(v, "NPT")
	if i == -1 {
		return r, ErrMissingNPT
	}
	v = v[i:]
	i = strings.IndexByte(v, '=')
	if i == -1 {
		return r, ErrMissingAssignment
	}
	v = v[i+1:]

	var err error
	start, rest, found := strings.Cut(v, "-")
	if !found {
		return r, fmt.Errorf("%w: no '-' after %q", ErrInvalidStart, start)
	}
	if r.Start, err = parseNPTField(start); err != nil {
		return r, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}
	v = rest

	if isDigit(peek(v)) {
		var stop string
		stop, v = consumeTo(v, '/')
		if r.Stop, err = parseNPTField(stop); err != nil {
			return r, fmt.Errorf("%w: %w", ErrInvalidStop, err)
		}
	}

	if peek(v) == '/' {
		total, _ := consumeTo(v[1:])
		if total == "*" {
			r.Total = NPTField{Text: total, Present: true}
		} else if r.Total, err = parseNPTField(total); err != nil {
			return r, fmt.Errorf("%w: %w", ErrInvalidTotal, err)
		}
	}
	return r, nil
}

func parseNPTField(text string) (NPTField, error) {
	f := NPTField{Text: text, Present: true}
	var err error
	f.Nanos, err = ParseNPTTime(text)
	return f, err
}
