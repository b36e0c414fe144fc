package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testdataDir = "../../testdata"

func writeTempCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.ndjson")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Golden(t *testing.T) {
	c, err := Load(filepath.Join(testdataDir, "martian_precedents.golden.ndjson"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LineCount != 400 {
		t.Errorf("LineCount = %d, want 400", c.LineCount)
	}
	want := "sha256:5f94496656ac69036828791c0f2ad949781909d809e980ea823d3c5b25aa5fdf"
	if c.Hash != want {
		t.Errorf("Hash = %s, want %s", c.Hash, want)
	}

	pairs, err := c.Pairs()
	if err != nil {
		t.Fatalf("Pairs: %v", err)
	}
	if len(pairs) != 200 {
		t.Fatalf("got %d pairs, want 200", len(pairs))
	}
	for i, p := range pairs {
		if p.Header.Index.ID != p.Record.CaseID {
			t.Errorf("pair %d: header id %q != record id %q", i, p.Header.Index.ID, p.Record.CaseID)
		}
	}
	if pairs[10].Record.CaseID != "case_011" || !pairs[10].Record.TerraformingImpact {
		t.Errorf("pair 11 = %+v", pairs[10].Record)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.ndjson"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromBytes_LineCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
	}
	for _, c := range cases {
		if got := FromBytes("x", []byte(c.in)).LineCount; got != c.want {
			t.Errorf("LineCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestHash_Stable(t *testing.T) {
	if Hash([]byte("abc")) != Hash([]byte("abc")) {
		t.Error("hash not stable")
	}
	if !strings.HasPrefix(Hash(nil), "sha256:") {
		t.Errorf("hash prefix missing: %s", Hash(nil))
	}
}

func TestPairs_DanglingHeader(t *testing.T) {
	path := writeTempCorpus(t, `{"index": {"_index": "martian_precedents", "_id": "case_001"}}`+"\n")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Pairs()
	if err == nil || !strings.Contains(err.Error(), "case_001") {
		t.Errorf("Pairs error = %v, want dangling header error naming case_001", err)
	}
}

func TestPairs_BadRecord(t *testing.T) {
	path := writeTempCorpus(t, `{"index": {"_index": "martian_precedents", "_id": "case_001"}}`+"\n{not json}\n")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Pairs()
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Pairs error = %v, want error on line 2", err)
	}
}
