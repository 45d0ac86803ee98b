/*
Package dlnaheader parses the range headers of DLNA media servers.

DLNA servers advertise seekable spans in extension headers such as
TimeSeekRange.dlna.org and availableSeekRange.dlna.org, as a normal play
time (NPT) range optionally followed by byte ranges:

	TimeSeekRange.dlna.org: npt=335.1-336.1/40445.4 bytes=1539686400-1540210688/304857907200

ParseNPTRange and ParseByteRange work on a single header value (with or
without the field name in front). For each header covered by this package,
there is also a function FooBar that reads it from an http.Header, and
SetFooBar for the request headers a client sends.

Unlike net/http, the parsers report malformed input as errors, because
callers use the offsets to drive seeking. The errors can be matched with
errors.Is against the Err* variables.
*/
package dlnaheader
