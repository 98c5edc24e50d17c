package rcsb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rmera/nanopdb"
)

func fixtureServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	body, err := os.ReadFile("../testdata/1zhy_fragment.pdb")
	require.NoError(t, err)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/download/1zhy.pdb":
			w.Write(body)
		case "/download/bad1.pdb":
			fmt.Fprint(w, "HEADER    BROKEN\n")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestURL(t *testing.T) {
	c := NewClient()
	assert.Equal(t, "https://files.rcsb.org/download/1zhy.pdb", c.URL("1ZHY"))
	c = NewClient(WithBaseURL("http://mirror.example/"))
	assert.Equal(t, "http://mirror.example/download/4hhb.pdb", c.URL("4HHB"))
}

func TestFetch(t *testing.T) {
	srv, hits := fixtureServer(t)
	c := NewClient(WithBaseURL(srv.URL), WithLogger(zaptest.NewLogger(t)))
	s, err := c.Fetch(context.Background(), "1ZHY")
	require.NoError(t, err)
	assert.Equal(t, "1ZHY", s.PDBID())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchNotFound(t *testing.T) {
	srv, hits := fixtureServer(t)
	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Fetch(context.Background(), "0000")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, "0000", se.ID)
	assert.Contains(t, err.Error(), "404")
	//no retries
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchParseError(t *testing.T) {
	srv, _ := fixtureServer(t)
	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Fetch(context.Background(), "BAD1")
	require.Error(t, err)
	var short *nanopdb.RecordTooShortError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, 1, short.Line)
	var te *TransportError
	assert.False(t, errors.As(err, &te))
	var se *StatusError
	assert.False(t, errors.As(err, &se))
	assert.Contains(t, err.Error(), "BAD1")
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := NewClient(WithBaseURL(url), WithHTTPClient(&http.Client{Timeout: time.Second}))
	_, err := c.Fetch(context.Background(), "1ZHY")
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "1ZHY", te.ID)
	assert.NotNil(t, te.Unwrap())
}

func TestFetchCanceled(t *testing.T) {
	srv, hits := fixtureServer(t)
	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0.001))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Fetch(ctx, "1ZHY")
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, int32(0), hits.Load())
}

func TestRateLimit(t *testing.T) {
	srv, hits := fixtureServer(t)
	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(1000))
	for i := 0; i < 3; i++ {
		_, err := c.Fetch(context.Background(), "1zhy")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), hits.Load())

	c = NewClient(WithRateLimit(5), WithRateLimit(0))
	assert.Nil(t, c.limiter)
}

func TestText(t *testing.T) {
	srv, _ := fixtureServer(t)
	c := NewClient(WithBaseURL(srv.URL))
	text, err := c.Text(context.Background(), "1zhy")
	require.NoError(t, err)
	assert.Contains(t, text, "LIPID BINDING PROTEIN")
}
