package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/rmera/nanopdb"
)

type cellSummary struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	C     float64 `json:"c"`
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

type chainSummary struct {
	Name     string `json:"name"`
	Residues int    `json:"residues"`
	Atoms    int    `json:"atoms"`
	HetAtoms int    `json:"hetatms"`
}

// summary is what the commands print for each structure.
type summary struct {
	Source         string         `json:"source"`
	PDBID          string         `json:"pdbid"`
	Classification string         `json:"classification"`
	Date           string         `json:"date"`
	UnitCell       *cellSummary   `json:"unit_cell,omitempty"`
	Chains         []chainSummary `json:"chains"`
}

func summarize(source string, s *nanopdb.Structure) summary {
	sum := summary{
		Source:         source,
		PDBID:          s.PDBID(),
		Classification: s.Classification(),
		Date:           s.Date(),
		Chains:         []chainSummary{},
	}
	if u := s.UnitCell(); u != nil {
		sum.UnitCell = &cellSummary{u.A(), u.B(), u.C(), u.Alpha(), u.Beta(), u.Gamma()}
	}
	it := s.Iter()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		cs := chainSummary{Name: string(c.Name()), Residues: c.Len()}
		for _, r := range c.All() {
			for _, a := range r.All() {
				if a.Label() == nanopdb.HETATM {
					cs.HetAtoms++
				} else {
					cs.Atoms++
				}
			}
		}
		sum.Chains = append(sum.Chains, cs)
	}
	return sum
}

func writeJSON(w io.Writer, sums []summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sums)
}

func writeTable(w io.Writer, sum summary) error {
	fmt.Fprintf(w, "%s  %s  %s  %s\n", sum.Source, sum.PDBID, sum.Classification, sum.Date)
	if u := sum.UnitCell; u != nil {
		fmt.Fprintf(w, "cell  a=%.3f b=%.3f c=%.3f alpha=%.2f beta=%.2f gamma=%.2f\n", u.A, u.B, u.C, u.Alpha, u.Beta, u.Gamma)
	}
	data := pterm.TableData{{"chain", "residues", "atoms", "hetatms"}}
	for _, c := range sum.Chains {
		data = append(data, []string{c.Name, strconv.Itoa(c.Residues), strconv.Itoa(c.Atoms), strconv.Itoa(c.HetAtoms)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
