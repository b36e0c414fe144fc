// Package bulk writes cases as newline-delimited JSON in the bulk-index
// layout: an action header line followed by the document line.
package bulk

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dshills/marsprecedents/internal/casegen"
	"github.com/dshills/marsprecedents/internal/schema"
)

// Encoder writes header/record pairs to an underlying writer.
type Encoder struct {
	w   io.Writer
	buf []byte
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes h and r as two lines, header first.
func (e *Encoder) Encode(h schema.Header, r schema.Record) error {
	var err error
	e.buf = e.buf[:0]
	if e.buf, err = headerObject(h).appendJSON(e.buf); err != nil {
		return fmt.Errorf("encoding header %s: %w", h.Index.ID, err)
	}
	e.buf = append(e.buf, '\n')
	if e.buf, err = recordObject(r).appendJSON(e.buf); err != nil {
		return fmt.Errorf("encoding record %s: %w", r.CaseID, err)
	}
	e.buf = append(e.buf, '\n')
	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("writing %s: %w", r.CaseID, err)
	}
	return nil
}

// Generate writes the full corpus to w in index order.
func Generate(w io.Writer) error {
	enc := NewEncoder(w)
	return casegen.Each(func(_ int, h schema.Header, r schema.Record) error {
		return enc.Encode(h, r)
	})
}

// WriteFile creates or truncates path and writes the corpus to it.
func WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Generate(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output file: %w", err)
	}
	return nil
}
