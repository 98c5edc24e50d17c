package nanopdb

import (
	"bytes"
	"compress/gzip"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "testdata/1zhy_fragment.pdb"

func checkFixture(t *testing.T, s *Structure) {
	t.Helper()
	assert.Equal(t, "1ZHY", s.PDBID())
	assert.Equal(t, "LIPID BINDING PROTEIN", s.Classification())
	assert.Equal(t, "26-APR-05", s.Date())
	require.NotNil(t, s.UnitCell())
	assert.Equal(t, 37.954, s.UnitCell().A())
	require.Equal(t, 2, s.Len())

	a, _ := s.Chain(0)
	b, _ := s.Chain(1)
	assert.Equal(t, byte('A'), a.Name())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, byte('B'), b.Name())
	assert.Equal(t, 2, b.Len())

	met, _ := a.Residue(0)
	assert.Equal(t, "MET", met.Name())
	assert.Equal(t, 3, met.Len())
	zn, _ := b.Residue(1)
	assert.Equal(t, 101, zn.Number())
	assert.Equal(t, " ZN", zn.Name())
	atom, _ := zn.Atom(0)
	assert.Equal(t, HETATM, atom.Label())
	assert.Equal(t, "ZN", atom.Element())
	assert.Equal(t, 8, countAtoms(s))
}

func TestReadFile(t *testing.T) {
	s, err := ReadFile(fixture)
	require.NoError(t, err)
	checkFixture(t, s)
}

func TestReadFileCompressed(t *testing.T) {
	raw, err := os.ReadFile(fixture)
	require.NoError(t, err)
	dir := t.TempDir()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zst := enc.EncodeAll(raw, nil)
	require.NoError(t, enc.Close())

	files := map[string][]byte{
		"1zhy.pdb.gz":   gz.Bytes(),
		"1zhy.pdb.zst":  zst,
		"1ZHY.PDB.ZSTD": zst,
	}
	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, data, 0o644))
			s, err := ReadFile(path)
			require.NoError(t, err)
			checkFixture(t, s)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.pdb"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.pdb")
}

func TestReadFileBadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdb.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip at all"), 0o644))
	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decompressing")
}

func TestReadFileParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.pdb")
	require.NoError(t, os.WriteFile(path, []byte(join(headerLine("X", "Y", "1ABC"), "ATOM      1  CA")), 0o644))
	_, err := ReadFile(path)
	var short *RecordTooShortError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, 2, short.Line)
	assert.Equal(t, []string{"Parse", "ReadFile: " + path}, short.Decorate(""))
}
