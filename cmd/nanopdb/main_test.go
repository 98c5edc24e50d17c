package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../testdata/1zhy_fragment.pdb"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NANOPDB_LOG_LEVEL", "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommandJSON(t *testing.T) {
	out, err := run(t, "parse", "--json", fixture)
	require.NoError(t, err)
	var sums []summary
	require.NoError(t, json.Unmarshal([]byte(out), &sums))
	require.Len(t, sums, 1)
	s := sums[0]
	assert.Equal(t, fixture, s.Source)
	assert.Equal(t, "1ZHY", s.PDBID)
	assert.Equal(t, "LIPID BINDING PROTEIN", s.Classification)
	require.NotNil(t, s.UnitCell)
	assert.InDelta(t, 37.954, s.UnitCell.A, 1e-9)
	assert.Equal(t, []chainSummary{
		{Name: "A", Residues: 2, Atoms: 5},
		{Name: "B", Residues: 2, Atoms: 2, HetAtoms: 1},
	}, s.Chains)
}

func TestParseCommandTable(t *testing.T) {
	out, err := run(t, "parse", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "1ZHY")
	assert.Contains(t, out, "cell  a=37.954")
	assert.Contains(t, out, "hetatms")
}

func TestParseCommandErrors(t *testing.T) {
	_, err := run(t, "parse")
	assert.Error(t, err)
	_, err = run(t, "parse", "does-not-exist.pdb")
	assert.ErrorContains(t, err, "does-not-exist.pdb")
}

func TestFetchCommand(t *testing.T) {
	body, err := os.ReadFile(fixture)
	require.NoError(t, err)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download/1zhy.pdb" {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	}))
	defer srv.Close()
	t.Setenv("NANOPDB_RCSB_BASE_URL", srv.URL)
	t.Setenv("NANOPDB_RCSB_RATE", "0")

	out, err := run(t, "fetch", "1ZHY", "--json")
	require.NoError(t, err)
	var sums []summary
	require.NoError(t, json.Unmarshal([]byte(out), &sums))
	require.Len(t, sums, 1)
	assert.Equal(t, srv.URL+"/download/1zhy.pdb", sums[0].Source)
	assert.Equal(t, "1ZHY", sums[0].PDBID)

	_, err = run(t, "fetch", "9ZZZ")
	assert.ErrorContains(t, err, "404")
}
