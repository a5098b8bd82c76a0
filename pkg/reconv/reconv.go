package reconv

import (
	"github.com/recokit/reconv/internal/dictionary"
	"github.com/recokit/reconv/internal/encode"
	"github.com/recokit/reconv/internal/model"
	"github.com/recokit/reconv/internal/store"
	"github.com/recokit/reconv/internal/transform"
)

// Record is a converted v2 recommendation record.
type Record = model.Record

// SourceRef records where a recommendation came from.
type SourceRef = model.SourceRef

// DictionaryEntry maps service aliases to canonical identifiers.
type DictionaryEntry = dictionary.Entry

// Dictionary is an ordered list of dictionary entries.
type Dictionary = dictionary.Dictionary

// Summary reports what a Store call did.
type Summary = store.Summary

// LoadDictionary reads a service dictionary from a YAML or JSON file.
func LoadDictionary(path string) (Dictionary, error) {
	return dictionary.LoadFile(path)
}

// ConvertFile reads a v1 checklist file and converts its items to v2
// records. Nothing is written to disk.
func ConvertFile(path string, opts ...Option) ([]Record, error) {
	return transform.File(path, transformOptions(apply(opts)))
}

// Convert converts a raw v1 checklist document. sourcePath identifies the
// input in errors and in the local source fallback.
func Convert(data []byte, sourcePath string, opts ...Option) ([]Record, error) {
	return transform.Parse(data, sourcePath, transformOptions(apply(opts)))
}

// Store persists records under outputRoot, one file per record. Records
// without a guid and guid conflicts are reported in the summary; the only
// error returned is an unsupported format.
func Store(records []Record, outputRoot string, opts ...Option) (Summary, error) {
	o := apply(opts)
	format, err := encode.ParseFormat(o.format)
	if err != nil {
		return Summary{}, err
	}
	return store.New(outputRoot, format, o.overwrite).Persist(records)
}

func apply(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func transformOptions(o options) transform.Options {
	return transform.Options{
		Dictionary:       o.dictionary,
		ExtraLabels:      o.extraLabels,
		IDLabel:          o.idLabel,
		CategoryLabel:    o.categoryLabel,
		SubcategoryLabel: o.subcategoryLabel,
	}
}
