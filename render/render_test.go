package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/matryer/is"
)

type testItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

type testRecord struct {
	ID      string     `json:"id"`
	Total   float64    `json:"total"`
	Receipt *string    `json:"receipt"`
	Tags    []string   `json:"tags"`
	Items   []testItem `json:"items"`
}

func sampleRecords() []testRecord {
	receipt := "/receipts/ord1000.pdf"
	return []testRecord{
		{
			ID:      "TX-1000",
			Total:   11.89,
			Receipt: &receipt,
			Tags:    []string{"food", "promo"},
			Items:   []testItem{{Name: "Classic Burger", Price: 12.99, Qty: 1}},
		},
		{
			ID:      "TX-1001",
			Total:   42.50,
			Receipt: nil,
			Tags:    []string{},
			Items:   []testItem{{Name: "Soda", Price: 2.50, Qty: 3}},
		},
	}
}

func TestJSModuleNamedExport(t *testing.T) {
	is := is.New(t)

	data, err := Bytes(JSModule{Binding: "sample_Transactions"}, sampleRecords())
	is.NoErr(err)

	text := string(data)
	is.True(strings.HasPrefix(text, "export const sample_Transactions = ["))
	is.True(strings.HasSuffix(text, ";\n"))
}

func TestJSModuleDefaultExport(t *testing.T) {
	is := is.New(t)

	data, err := Bytes(JSModule{}, map[string][]testRecord{"records": sampleRecords()})
	is.NoErr(err)

	text := string(data)
	is.True(strings.HasPrefix(text, "export default {"))
	is.True(strings.HasSuffix(text, ";\n"))
}

// Stripping the module envelope must leave JSON that parses back into a
// structure deep-equal to the generated one.
func TestJSModuleRoundTrip(t *testing.T) {
	is := is.New(t)

	records := sampleRecords()
	data, err := Bytes(JSModule{Binding: "sample_Transactions"}, records)
	is.NoErr(err)

	text := strings.TrimPrefix(string(data), "export const sample_Transactions = ")
	text = strings.TrimSuffix(text, ";\n")

	var parsed []testRecord
	is.NoErr(jsoniter.UnmarshalFromString(text, &parsed))
	is.Equal(parsed, records)
}

func TestJSONRenderer(t *testing.T) {
	is := is.New(t)

	records := sampleRecords()
	data, err := Bytes(JSON{}, records)
	is.NoErr(err)

	var parsed []testRecord
	is.NoErr(jsoniter.Unmarshal(data, &parsed))
	is.Equal(parsed, records)
}

func TestEmptyTagsStayEmptyNotNull(t *testing.T) {
	is := is.New(t)

	data, err := Bytes(JSON{}, sampleRecords())
	is.NoErr(err)
	is.True(strings.Contains(string(data), `"tags": []`))
	is.True(!strings.Contains(string(data), `"tags": null`))
}

func TestWriteFileAtomic(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "out.js")
	is.NoErr(WriteFileAtomic(path, []byte("export const x = 1;\n")))

	content, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(content), "export const x = 1;\n")

	// no stray temp files left next to the output
	entries, err := os.ReadDir(dir)
	is.NoErr(err)
	is.Equal(len(entries), 1)
}

func TestWriteFileAtomicFailsWithoutPartialOutput(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.js")
	err := WriteFileAtomic(path, []byte("data"))
	is.True(err != nil)

	entries, readErr := os.ReadDir(dir)
	is.NoErr(readErr)
	is.Equal(len(entries), 0)
}
