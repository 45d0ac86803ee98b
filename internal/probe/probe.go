// Package probe asks a DLNA media server which ranges of a content item
// it can play from, by issuing a HEAD request with the DLNA query headers.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/vfaronov/dlnaheader"
)

// ErrStatus is returned when the server answers the HEAD with a 4xx or 5xx.
var ErrStatus = errors.New("unexpected response status")

// A Report is what the server said about a content item.
// A range is nil if the server did not send it or sent it malformed.
type Report struct {
	URL              string
	Status           int
	TimeSeek         *dlnaheader.TimeSeek
	AvailableSeek    *dlnaheader.AvailableSeek
	ContentRange     *dlnaheader.ByteRange
	ContentRangeDTCP *dlnaheader.ByteRange
}

type Prober struct {
	client *resty.Client
	log    *zap.SugaredLogger
}

type Option func(*Prober)

func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		p.client.SetTimeout(d)
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Prober) {
		p.log = l
	}
}

func New(opts ...Option) *Prober {
	p := &Prober{
		client: resty.New(),
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe sends a HEAD for url, asking for a time seek from start (in
// nanoseconds) and for the available seek range, and parses the answer.
// Headers that fail to parse are logged and left out of the report.
func (p *Prober) Probe(ctx context.Context, url string, start uint64) (Report, error) {
	h := http.Header{}
	dlnaheader.SetGetAvailableSeekRange(h)
	dlnaheader.SetGetContentFeatures(h)
	dlnaheader.SetTimeSeekRange(h, start, dlnaheader.Unspecified)

	p.log.Debugw("sending HEAD", "url", url, "headers", h)
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(h).
		Head(url)
	if err != nil {
		return Report{}, fmt.Errorf("HEAD %s: %w", url, err)
	}
	if resp.IsError() {
		return Report{}, fmt.Errorf("%w: HEAD %s: %s", ErrStatus, url, resp.Status())
	}

	rep := Report{URL: url, Status: resp.StatusCode()}
	got := resp.Header()
	p.log.Debugw("received HEAD response", "url", url, "status", rep.Status, "headers", got)

	if ts, err := dlnaheader.TimeSeekRange(got); err == nil {
		rep.TimeSeek = &ts
	} else {
		p.skip(dlnaheader.FieldTimeSeekRange, got, err)
	}
	if as, err := dlnaheader.AvailableSeekRange(got); err == nil {
		rep.AvailableSeek = &as
	} else {
		p.skip(dlnaheader.FieldAvailableSeekRange, got, err)
	}
	if cr, err := dlnaheader.ContentRange(got); err == nil {
		rep.ContentRange = &cr
	} else {
		p.skip(dlnaheader.FieldContentRange, got, err)
	}
	if cr, err := dlnaheader.ContentRangeDTCP(got); err == nil {
		rep.ContentRangeDTCP = &cr
	} else {
		p.skip(dlnaheader.FieldContentRangeDTCP, got, err)
	}
	return rep, nil
}

func (p *Prober) skip(field string, h http.Header, err error) {
	if errors.Is(err, dlnaheader.ErrNoField) {
		p.log.Debugw("header not sent", "field", field)
		return
	}
	p.log.Warnw("problems parsing header", "field", field, "value", h.Get(field), "error", err)
}
