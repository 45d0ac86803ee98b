package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vfaronov/dlnaheader"
	"github.com/vfaronov/dlnaheader/internal/probe"
)

func writeReport(w io.Writer, rep probe.Report) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %d\n", rep.URL, rep.Status)
	if ts := rep.TimeSeek; ts != nil {
		fmt.Fprintf(b, "time seek:            %s\n", describeNPT(ts.NPT))
		if ts.Bytes != nil {
			fmt.Fprintf(b, "  bytes:              %s\n", describeBytes(*ts.Bytes))
		}
	}
	if as := rep.AvailableSeek; as != nil {
		fmt.Fprintf(b, "available seek:       mode %d\n", as.Mode)
		if as.NPT != nil {
			fmt.Fprintf(b, "  npt:                %s\n", describeNPT(*as.NPT))
		}
		if as.Bytes != nil {
			fmt.Fprintf(b, "  bytes:              %s\n", describeBytes(*as.Bytes))
		}
		if as.ClearTextBytes != nil {
			fmt.Fprintf(b, "  cleartext bytes:    %s\n", describeBytes(*as.ClearTextBytes))
		}
	}
	if rep.ContentRange != nil {
		fmt.Fprintf(b, "content range:        %s\n", describeBytes(*rep.ContentRange))
	}
	if rep.ContentRangeDTCP != nil {
		fmt.Fprintf(b, "content range (dtcp): %s\n", describeBytes(*rep.ContentRangeDTCP))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func describeNPT(r dlnaheader.NPTRange) string {
	s := dlnaheader.FormatNPTTime(r.Start.Nanos) + " -"
	if r.Stop.Present {
		s += " " + dlnaheader.FormatNPTTime(r.Stop.Nanos)
	}
	switch {
	case r.TotalKnown():
		s += " of " + dlnaheader.FormatNPTTime(r.Total.Nanos)
	case r.Total.Present:
		s += " of unknown"
	}
	return s
}

func describeBytes(r dlnaheader.ByteRange) string {
	s := strconv.FormatUint(r.Start, 10) + " -"
	if r.End != dlnaheader.Unspecified {
		s += " " + strconv.FormatUint(r.End, 10)
	}
	if r.Total != 0 {
		s += " of " + strconv.FormatUint(r.Total, 10)
	}
	return s
}
