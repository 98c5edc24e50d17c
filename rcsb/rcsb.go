/*
 * rcsb.go, part of nanopdb.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package rcsb downloads PDB entries from the RCSB file server and parses them.
package rcsb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rmera/nanopdb"
)

//DefaultBaseURL is the RCSB file server.
const DefaultBaseURL = "https://files.rcsb.org"

//Client fetches entries from an RCSB-like file server. Each Fetch is a
//single GET request; failures are not retried.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
	log     *zap.Logger
}

type Option func(*Client)

//WithHTTPClient sets the http.Client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

//WithBaseURL sets the server, e.g. "https://files.rcsb.org". Entries are
//requested from {base}/download/{id}.pdb.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(base, "/") }
}

//WithRateLimit allows at most perSecond requests per second. A value <= 0
//removes the limit.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

//NewClient returns a Client for DefaultBaseURL with a 30 s timeout and no
//rate limit, modified by opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: DefaultBaseURL,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

//URL returns the download URL for the entry id.
func (c *Client) URL(id string) string {
	return fmt.Sprintf("%s/download/%s.pdb", c.baseURL, strings.ToLower(id))
}

//Text downloads the entry id and returns it unparsed.
func (c *Client) Text(ctx context.Context, id string) (string, error) {
	url := c.URL(id)
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &TransportError{ID: id, URL: url, Err: err}
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{ID: id, URL: url, Err: err}
	}
	c.log.Debug("fetching entry", zap.String("id", id), zap.String("url", url))
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &TransportError{ID: id, URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{ID: id, URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{ID: id, URL: url, Err: err}
	}
	c.log.Debug("fetched entry", zap.String("id", id), zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)))
	return string(body), nil
}

//Fetch downloads the entry id and parses it. Download failures are returned
//as *TransportError or *StatusError; parse failures are the nanopdb parse
//errors, wrapped with the entry id.
func (c *Client) Fetch(ctx context.Context, id string) (*nanopdb.Structure, error) {
	text, err := c.Text(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := nanopdb.Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing entry %s", id)
	}
	return s, nil
}

var defaultClient = NewClient()

//Fetch downloads and parses the entry id with a default Client.
func Fetch(ctx context.Context, id string) (*nanopdb.Structure, error) {
	return defaultClient.Fetch(ctx, id)
}

//TransportError is returned when the request could not be completed.
type TransportError struct {
	ID  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s from %s: %v", e.ID, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

//StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	ID         string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s from %s: %s", e.ID, e.URL, e.Status)
}
