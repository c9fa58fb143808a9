package humansize

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
)

// sameRepresentation compares sizes field for field, unlike Equal which
// only compares byte counts. Decoding must preserve the multiple the
// text was written in, not just the quantity.
var sameRepresentation = cmp.Comparer(func(a, b Size) bool {
	return a.Magnitude() == b.Magnitude() && a.Multiple() == b.Multiple()
})

func TestTextRoundTrip(t *testing.T) {
	for _, size := range []Size{
		New(100, Byte),
		New(3000, Kilobyte),
		New(1.5, Mebibyte),
		New(132, Terabyte),
		New(0, Megabyte),
	} {
		text, err := size.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", size, err)
		}
		var got Size
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if diff := cmp.Diff(size, got, sameRepresentation); diff != "" {
			t.Errorf("text round trip of %v mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestUnmarshalTextErrors(t *testing.T) {
	var s Size
	if err := s.UnmarshalText(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("UnmarshalText(nil) error = %v, want ErrEmptyInput", err)
	}
	if err := s.UnmarshalText([]byte("5 XB")); !errors.Is(err, ErrUnknownMultiple) {
		t.Errorf("UnmarshalText(\"5 XB\") error = %v, want ErrUnknownMultiple", err)
	}
}

func TestJSON(t *testing.T) {
	type limits struct {
		MaxUpload Size `json:"max_upload"`
	}

	data, err := json.Marshal(limits{MaxUpload: New(2.5, Mebibyte)})
	if err != nil {
		t.Fatalf("marshalling: %v", err)
	}
	if got, want := string(data), `{"max_upload":"2.5 MiB"}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}

	var got limits
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshalling: %v", err)
	}
	if diff := cmp.Diff(limits{MaxUpload: New(2.5, Mebibyte)}, got, sameRepresentation); diff != "" {
		t.Errorf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTOMLConfig(t *testing.T) {
	type cacheConfig struct {
		MaxObjectSize Size `toml:"max_object_size"`
		MemoryLimit   Size `toml:"memory_limit"`
	}
	type config struct {
		Cache cacheConfig `toml:"cache"`
	}

	content := `
[cache]
max_object_size = "512 KiB"
memory_limit = "1.5 GB"
`
	var got config
	if _, err := toml.Decode(content, &got); err != nil {
		t.Fatalf("decoding config: %v", err)
	}

	want := config{Cache: cacheConfig{
		MaxObjectSize: New(512, Kibibyte),
		MemoryLimit:   New(1.5, Gigabyte),
	}}
	if diff := cmp.Diff(want, got, sameRepresentation); diff != "" {
		t.Errorf("decoded config mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(want); err != nil {
		t.Fatalf("encoding config: %v", err)
	}
	if !strings.Contains(buf.String(), `"512 KiB"`) {
		t.Errorf("encoded config does not carry the canonical text form:\n%s", buf.String())
	}
}

func TestTOMLDecodeMalformed(t *testing.T) {
	type config struct {
		Limit Size `toml:"limit"`
	}
	var got config
	_, err := toml.Decode(`limit = "10 XB"`, &got)
	if err == nil {
		t.Fatal("decoding a malformed size should fail")
	}
	if !strings.Contains(err.Error(), "XB") {
		t.Errorf("decode error %q does not carry the offending symbol", err)
	}
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE volumes (name TEXT PRIMARY KEY, quota TEXT NOT NULL)`)
	if err != nil {
		t.Fatalf("creating table: %v", err)
	}
	return db
}

func TestSQLRoundTrip(t *testing.T) {
	db := testDB(t)

	quota := MustParse("10 GiB")
	if _, err := db.Exec(`INSERT INTO volumes (name, quota) VALUES (?, ?)`, "scratch", quota); err != nil {
		t.Fatalf("inserting: %v", err)
	}

	var got Size
	if err := db.QueryRow(`SELECT quota FROM volumes WHERE name = ?`, "scratch").Scan(&got); err != nil {
		t.Fatalf("querying: %v", err)
	}
	if diff := cmp.Diff(quota, got, sameRepresentation); diff != "" {
		t.Errorf("sql round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLScanErrors(t *testing.T) {
	db := testDB(t)

	if _, err := db.Exec(`INSERT INTO volumes (name, quota) VALUES (?, ?)`, "bad", "10 XB"); err != nil {
		t.Fatalf("inserting: %v", err)
	}
	var got Size
	err := db.QueryRow(`SELECT quota FROM volumes WHERE name = ?`, "bad").Scan(&got)
	if err == nil {
		t.Fatal("scanning a malformed stored size should fail")
	}
	if !strings.Contains(err.Error(), "XB") {
		t.Errorf("scan error %q does not carry the offending symbol", err)
	}

	var s Size
	if err := s.Scan(42); err == nil {
		t.Error("scanning a non-text value should fail")
	}
}
