// Package convert turns open-data RDF/XML exports into tables that deck
// sources can read, as CSV or as a SQLite table.
package convert

import (
	"context"
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/chartdeck/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/chartdeck/internal/logging"
)

// DefaultRecord is the record element of the bike counter export.
const DefaultRecord = "colonnine-conta-bici-record"

// DefaultFields are the columns extracted from each bike counter record.
func DefaultFields() []string {
	return []string{"colonnina", "totale", "direzione_periferia", "direzione_centro", "geo_point_2d", "data"}
}

var ErrRecordNotFound = errors.New("record element not found")

// Options selects what Decode extracts.
type Options struct {
	// Record is the local name of the repeated record element.
	Record string
	// Fields are the local names of the record's child elements, in column order.
	Fields []string
}

func (o Options) withDefaults() Options {
	if o.Record == "" {
		o.Record = DefaultRecord
	}
	if len(o.Fields) == 0 {
		o.Fields = DefaultFields()
	}
	return o
}

// Table is the decoded result. Missing fields are empty strings.
type Table struct {
	// Namespace is the URI detected from the first record element.
	Namespace string
	Columns   []string
	Rows      [][]string
}

// Decode streams an RDF/XML document and collects one row per record
// element. The record's namespace is taken from its first occurrence;
// records and fields in other namespaces are ignored.
func Decode(ctx context.Context, r io.Reader, opts Options) (*Table, error) {
	opts = opts.withDefaults()
	column := make(map[string]int, len(opts.Fields))
	for i, f := range opts.Fields {
		column[f] = i
	}

	t := &Table{Columns: opts.Fields}
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var (
		found   bool
		inRec   bool
		depth   int // depth inside the current record
		row     []string
		field   = -1
		text    strings.Builder
		scanned int
	)
	for {
		if scanned++; scanned%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if inRec {
				depth++
				if depth == 1 && el.Name.Space == t.Namespace {
					if i, ok := column[el.Name.Local]; ok && row[i] == "" {
						field = i
						text.Reset()
					}
				}
				continue
			}
			if el.Name.Local != opts.Record {
				continue
			}
			if !found {
				found = true
				t.Namespace = el.Name.Space
			}
			if el.Name.Space == t.Namespace {
				inRec, depth = true, 0
				row = make([]string, len(opts.Fields))
			}
		case xml.CharData:
			if field >= 0 {
				text.Write(el)
			}
		case xml.EndElement:
			if !inRec {
				continue
			}
			if depth == 0 {
				t.Rows = append(t.Rows, row)
				inRec = false
				continue
			}
			if depth == 1 && field >= 0 {
				row[field] = strings.TrimSpace(text.String())
				field = -1
			}
			depth--
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %q", ErrRecordNotFound, opts.Record)
	}
	logging.FromContext(ctx).Debug().
		Str("namespace", t.Namespace).
		Int("records", len(t.Rows)).
		Msg("rdf records decoded")
	return t, nil
}

// WriteCSV writes the table with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteSQLite replaces table in the database at path with the decoded rows.
func (t *Table) WriteSQLite(ctx context.Context, path, table string) error {
	db, err := sqlite.Open(ctx, path, sqlite.ReadWrite)
	if err != nil {
		return err
	}
	defer func() { _ = sqlite.Close(db) }()

	return sqlite.WriteTable(ctx, db, table, t.Columns, t.Rows)
}
