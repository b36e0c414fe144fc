package corpus

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/marsprecedents/internal/schema"
)

// Corpus holds a bulk file loaded from disk with derived metadata.
type Corpus struct {
	Path      string
	Hash      string // "sha256:<hex>"
	Raw       []byte
	LineCount int
}

// Pair is one decoded header/record pair.
type Pair struct {
	Header schema.Header
	Record schema.Record
}

// Load reads a bulk file from disk and computes its hash and line count.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	return FromBytes(path, data), nil
}

// FromBytes wraps data already in memory, such as a freshly generated corpus.
func FromBytes(path string, data []byte) *Corpus {
	return &Corpus{
		Path:      path,
		Hash:      Hash(data),
		Raw:       data,
		LineCount: countLines(data),
	}
}

// Hash returns the "sha256:<hex>" digest of data.
func Hash(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// Pairs decodes the corpus two lines at a time. A trailing header without
// its record is an error.
func (c *Corpus) Pairs() ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(bytes.NewReader(c.Raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		var p Pair
		if err := json.Unmarshal(sc.Bytes(), &p.Header); err != nil {
			return nil, fmt.Errorf("line %d: decoding header: %w", line, err)
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("scanning corpus: %w", err)
			}
			return nil, fmt.Errorf("line %d: header %q has no record", line, p.Header.Index.ID)
		}
		line++
		if err := json.Unmarshal(sc.Bytes(), &p.Record); err != nil {
			return nil, fmt.Errorf("line %d: decoding record: %w", line, err)
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning corpus: %w", err)
	}
	return pairs, nil
}

// countLines counts newline-terminated lines, plus an unterminated last line.
func countLines(data []byte) int {
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}
