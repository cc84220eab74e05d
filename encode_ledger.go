package savings

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Delimiter separates cells in the ledger file. The format has no quoting:
// a note must not contain it.
const Delimiter = ","

// DecodeLedger reads a ledger file from r into a new Ledger configured with opts.
func DecodeLedger(r io.Reader, opts ...Option) (*Ledger, error) {
	l := NewLedger(opts...)
	if err := l.Load(r); err != nil {
		return nil, err
	}
	return l, nil
}

// Load replaces the ledger content with the records read from r.
//
// Reading is tolerant so that both numbered and bare exports load:
//   - blank lines are skipped,
//   - when the first cell is an integer it is a row number: the next (up to)
//     8 cells are the record, missing cells are blank,
//   - otherwise a line with at least 8 cells holds the record in its first 8,
//   - any other line is skipped.
//
// Lines can be of any length.
//
// Cells are kept as text; they are only interpreted when queried.
func (l *Ledger) Load(r io.Reader) error {
	var store Store
	reader := bufio.NewReader(r)

	for lineno := 1; ; lineno++ {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("error reading from input: %w", err)
		}
		if line = strings.TrimSpace(line); line != "" {
			if rec, ok := decodeRecord(line); ok {
				store.Append(rec)
			} else {
				log.Printf("line %d: skipping %q, it has neither a row number nor %d cells", lineno, line, NumColumns)
			}
		}
		if err == io.EOF {
			break
		}
	}
	l.store = store
	return nil
}

// decodeRecord parses one trimmed, non-empty line.
func decodeRecord(line string) (rec Record, ok bool) {
	fields := strings.Split(line, Delimiter)
	if _, err := strconv.Atoi(fields[0]); err == nil {
		copy(rec[:], fields[1:])
		return rec, true
	}
	if len(fields) >= int(NumColumns) {
		copy(rec[:], fields)
		return rec, true
	}
	return rec, false
}

// EncodeRecord writes a single record as one ledger line numbered seq.
func EncodeRecord(w io.Writer, seq int, rec Record) error {
	var b strings.Builder
	b.WriteString(strconv.Itoa(seq))
	for _, cell := range rec {
		b.WriteString(Delimiter)
		b.WriteString(cell)
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write record %d: %w", seq, err)
	}
	return nil
}

// Save writes every record to w, one numbered line each, starting at 1.
// Row numbers are positions and are regenerated on every save.
func (l *Ledger) Save(w io.Writer) error {
	for i, rec := range l.store.records {
		if err := EncodeRecord(w, i+1, rec); err != nil {
			return err
		}
	}
	return nil
}

// EncodeLedger writes the ledger to w in the ledger file format.
func EncodeLedger(w io.Writer, l *Ledger) error { return l.Save(w) }
