/*
 * files.go, part of nanopdb.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package nanopdb

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
)

//zstdReadCloser gives *zstd.Decoder the io.ReadCloser signature.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//decompressor picks a reader for the file according to its suffix:
//.gz files are gunzipped, .zst and .zstd files are zstd-decoded and
//anything else is read as plain text.
func decompressor(name string) func(io.Reader) (io.ReadCloser, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) }
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		return func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zstdReadCloser{d}, nil
		}
	default:
		return func(r io.Reader) (io.ReadCloser, error) { return io.NopCloser(r), nil }
	}
}

//ReadText returns the whole content of the file pdbname, decompressed if
//its name ends in .gz, .zst or .zstd.
func ReadText(pdbname string) (string, error) {
	f, err := os.Open(pdbname)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s", pdbname)
	}
	defer f.Close()
	r, err := decompressor(pdbname)(bufio.NewReader(f))
	if err != nil {
		return "", errors.Wrapf(err, "decompressing %s", pdbname)
	}
	defer r.Close()
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return "", errors.Wrapf(err, "reading %s", pdbname)
	}
	return sb.String(), nil
}

//ReadFile reads the PDB file pdbname and parses it. I/O failures are returned
//wrapped, so errors.Is(err, fs.ErrNotExist) and the like keep working.
//Parse errors are returned as Parse returns them.
func ReadFile(pdbname string) (*Structure, error) {
	text, err := ReadText(pdbname)
	if err != nil {
		return nil, err
	}
	s, err := Parse(text)
	if err != nil {
		return nil, errDecorate(err, "ReadFile: "+pdbname)
	}
	return s, nil
}
