package dlnaheader

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Names of the fields handled by this package, spelled as in the DLNA
// guidelines. http.Header canonicalizes them on access.
const (
	FieldTimeSeekRange         = "TimeSeekRange.dlna.org"
	FieldAvailableSeekRange    = "availableSeekRange.dlna.org"
	FieldGetAvailableSeekRange = "getAvailableSeekRange.dlna.org"
	FieldGetContentFeatures    = "getcontentFeatures.dlna.org"
	FieldContentRange          = "Content-Range"
	FieldContentRangeDTCP      = "Content-Range.dtcp.com"
	FieldRangeDTCP             = "Range.dtcp.com"
)

// A TimeSeek is the TimeSeekRange.dlna.org header of a response.
type TimeSeek struct {
	NPT   NPTRange
	Bytes *ByteRange // nil if the server sent no byte range
}

// TimeSeekRange parses the TimeSeekRange.dlna.org header from h
// (DLNA 7.4.40.5). The NPT range is required; the byte range is optional.
func TimeSeekRange(h http.Header) (TimeSeek, error) {
	var ts TimeSeek
	v, err := fieldValue(h, FieldTimeSeekRange)
	if err != nil {
		return ts, err
	}
	if ts.NPT, err = ParseNPTRange(v); err != nil {
		return ts, fmt.Errorf("%s: %w", FieldTimeSeekRange, err)
	}
	if ts.Bytes, err = optionalByteRange(v, UnitBytes); err != nil {
		return ts, fmt.Errorf("%s: %w", FieldTimeSeekRange, err)
	}
	return ts, nil
}

// An AvailableSeek is the availableSeekRange.dlna.org header of a response.
// Each range is nil if the server did not send it.
type AvailableSeek struct {
	Mode           int // leading mode flag, 0 if missing
	NPT            *NPTRange
	Bytes          *ByteRange
	ClearTextBytes *ByteRange
}

// AvailableSeekRange parses the availableSeekRange.dlna.org header from h
// (DLNA 7.5.4.3.2.20.7), such as:
//
//	availableSeekRange.dlna.org: 0 npt=0:00:00.000-0:00:48.716 bytes=0-5219255 cleartextbytes=0-5219255
func AvailableSeekRange(h http.Header) (AvailableSeek, error) {
	var as AvailableSeek
	v, err := fieldValue(h, FieldAvailableSeekRange)
	if err != nil {
		return as, err
	}
	if mode, rest := consumeDigits(skipWS(v)); mode != "" && isWS(peek(rest)) {
		as.Mode, _ = strconv.Atoi(mode)
	}

	npt, err := ParseNPTRange(v)
	switch {
	case errors.Is(err, ErrMissingNPT):
	case err != nil:
		return as, fmt.Errorf("%s: %w", FieldAvailableSeekRange, err)
	default:
		as.NPT = &npt
	}
	if as.Bytes, err = optionalByteRange(v, UnitBytes); err != nil {
		return as, fmt.Errorf("%s: %w", FieldAvailableSeekRange, err)
	}
	if as.ClearTextBytes, err = optionalByteRange(v, UnitClearTextBytes); err != nil {
		return as, fmt.Errorf("%s: %w", FieldAvailableSeekRange, err)
	}
	return as, nil
}

// ContentRange parses the byte range of the Content-Range header from h
// (RFC 7233 Section 4.2).
func ContentRange(h http.Header) (ByteRange, error) {
	return byteRangeField(h, FieldContentRange)
}

// ContentRangeDTCP parses the Content-Range.dtcp.com header from h, which
// DTCP-IP servers send with offsets into the encrypted stream.
func ContentRangeDTCP(h http.Header) (ByteRange, error) {
	return byteRangeField(h, FieldContentRangeDTCP)
}

func byteRangeField(h http.Header, name string) (ByteRange, error) {
	v, err := fieldValue(h, name)
	if err != nil {
		return ByteRange{End: Unspecified}, err
	}
	r, err := ParseByteRange(v, UnitBytes)
	if err != nil {
		return r, fmt.Errorf("%s: %w", name, err)
	}
	return r, nil
}

// SetTimeSeekRange sets the TimeSeekRange.dlna.org request header in h,
// asking for playback from start to stop (in nanoseconds). If stop is
// Unspecified, the range is left open: "npt=10.000-".
func SetTimeSeekRange(h http.Header, start, stop uint64) {
	v := "npt=" + formatNPTSec(start) + "-"
	if stop != Unspecified {
		v += formatNPTSec(stop)
	}
	h.Set(FieldTimeSeekRange, v)
}

// SetRangeDTCP sets the Range.dtcp.com request header in h. If end is
// Unspecified, the range is left open: "bytes=100-".
func SetRangeDTCP(h http.Header, start, end uint64) {
	v := "bytes=" + strconv.FormatUint(start, 10) + "-"
	if end != Unspecified {
		v += strconv.FormatUint(end, 10)
	}
	h.Set(FieldRangeDTCP, v)
}

// SetGetAvailableSeekRange asks the server to include availableSeekRange.dlna.org
// in its response.
func SetGetAvailableSeekRange(h http.Header) {
	h.Set(FieldGetAvailableSeekRange, "1")
}

// SetGetContentFeatures asks the server to include contentFeatures.dlna.org
// in its response.
func SetGetContentFeatures(h http.Header) {
	h.Set(FieldGetContentFeatures, "1")
}

func fieldValue(h http.Header, name string) (string, error) {
	vs := h.Values(name)
	if len(vs) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoField, name)
	}
	return vs[0], nil
}

func optionalByteRange(v, unit string) (*ByteRange, error) {
	r, err := ParseByteRange(v, unit)
	if errors.Is(err, ErrMissingUnit) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}
