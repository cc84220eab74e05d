package savings

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes the record as an object keyed by column name, in column
// order. Amount cells that parse are numbers with 2 decimals, other non-blank
// cells are kept as strings and blank cells are omitted.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for c := ColDate; c < NumColumns; c++ {
		cell := r[c]
		if c == ColDate || c == ColNote {
			w.Optional(c.String(), cell)
			continue
		}
		if d, err := parseAmount(cell); err == nil {
			w.Number(c.String(), d.StringFixed(2))
		} else {
			w.Optional(c.String(), cell)
		}
	}
	return w.MarshalJSON()
}

// Export is the JSON document describing a ledger.
type Export struct {
	Records []Record `json:"records"`
	Series  []Point  `json:"series"`
}

// Export returns a read-only snapshot of the ledger content.
func (l *Ledger) Export() Export {
	records := l.Records()
	if records == nil {
		records = []Record{}
	}
	return Export{Records: records, Series: l.Series()}
}

// EncodeJSON writes the export document to w.
//
// When query is not empty it is a JSONPath expression (e.g. "$.series[*].totalDeposit")
// and only the selected value is written.
func (l *Ledger) EncodeJSON(w io.Writer, query string) error {
	var v any = l.Export()
	if strings.TrimSpace(query) != "" {
		var err error
		if v, err = Query(v, query); err != nil {
			return err
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// Query evaluates a JSONPath expression against the JSON form of doc.
func Query(doc any, path string) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
