package xmlkit

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const appConfig = `<?xml version="1.0" encoding="utf-8"?>
<configuration>
  <appSettings>
    <add key="Mode" value="Debug" />
    <add key="Retries" value="7" />
  </appSettings>
  <servers>
    <server>alpha</server>
    <server>beta</server>
  </servers>
</configuration>`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.config")
	if err := os.WriteFile(path, []byte(appConfig), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestReadStrictNodeSet(t *testing.T) {
	path := writeConfig(t)
	seq, err := ReadStrict(path, nil, "//server")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := slices.Collect(seq)
	want := []string{"alpha", "beta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestReadStrictScalar(t *testing.T) {
	path := writeConfig(t)
	seq, err := ReadStrict(path, nil, "count(//add)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := slices.Collect(seq)
	if len(got) != 1 || got[0] != "2" {
		t.Errorf("expected [\"2\"], got %q", got)
	}
}

func TestReadStrictMissingFile(t *testing.T) {
	_, err := ReadStrict(filepath.Join(t.TempDir(), "nope.xml"), nil, "//server")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadLenientMissingFile(t *testing.T) {
	got := slices.Collect(Read(filepath.Join(t.TempDir(), "nope.xml"), nil, "//server"))
	if len(got) != 0 {
		t.Errorf("expected empty sequence, got %q", got)
	}
}

func TestReadLenientBadExpr(t *testing.T) {
	path := writeConfig(t)
	got := slices.Collect(Read(path, nil, "//server["))
	if len(got) != 0 {
		t.Errorf("expected empty sequence, got %q", got)
	}
}

func TestReadInt(t *testing.T) {
	path := writeConfig(t)
	n, ok := ReadInt(path, nil, "//add[@key='Retries']/@value")
	if !ok || n != 7 {
		t.Errorf("expected (7, true), got (%d, %v)", n, ok)
	}
}

func TestReadIntLenientFailure(t *testing.T) {
	path := writeConfig(t)
	// value is not an integer
	n, ok := ReadInt(path, nil, "//add[@key='Mode']/@value")
	if ok || n != 0 {
		t.Errorf("expected (0, false), got (%d, %v)", n, ok)
	}
	// no match at all
	n, ok = ReadInt(path, nil, "//add[@key='Missing']/@value")
	if ok || n != 0 {
		t.Errorf("expected (0, false), got (%d, %v)", n, ok)
	}
}

func TestReadIntStrictParsesFirstResultOnly(t *testing.T) {
	path := writeConfig(t)
	// first server is not an integer; the read must not fall through to
	// later results
	_, err := ReadIntStrict(path, nil, "//server")
	if err == nil {
		t.Fatal("expected error parsing first result")
	}
	n, err := ReadIntStrict(path, nil, "count(//server)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}

func TestReadIntStrictEmptyResult(t *testing.T) {
	path := writeConfig(t)
	_, err := ReadIntStrict(path, nil, "//nothing")
	if err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestReadNS(t *testing.T) {
	doc := `<root xmlns:s="urn:servers"><s:server>gamma</s:server></root>`
	path := filepath.Join(t.TempDir(), "ns.xml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq, err := ReadStrict(path, map[string]string{"s": "urn:servers"}, "//s:server")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := slices.Collect(seq)
	if len(got) != 1 || got[0] != "gamma" {
		t.Errorf("expected [\"gamma\"], got %q", got)
	}
}
