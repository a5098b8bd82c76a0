// Package transform maps v1 checklist items onto v2 recommendation records.
// The mapping is a single deterministic pass over each item: conditional
// field copies, the severity enum encoding, and service-dictionary lookups.
package transform

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/recokit/reconv/internal/dictionary"
	"github.com/recokit/reconv/internal/model"
)

// Default label key names for the v1 category/subcategory/id fields.
const (
	DefaultIDLabel          = "id"
	DefaultCategoryLabel    = "area"
	DefaultSubcategoryLabel = "subarea"
)

// Options configures a conversion. The zero value is usable: no dictionary,
// no extra labels, default label key names.
type Options struct {
	// Dictionary normalizes service names and resolves ARM resource types.
	// Nil disables both lookups (service names pass through unchanged).
	Dictionary dictionary.Dictionary

	// ExtraLabels are merged into every record's labels last, overwriting
	// any same-named key produced by the field mapping.
	ExtraLabels map[string]string

	// Label key names for id/category/subcategory. Empty means default.
	IDLabel          string
	CategoryLabel    string
	SubcategoryLabel string
}

func (o Options) withDefaults() Options {
	if o.IDLabel == "" {
		o.IDLabel = DefaultIDLabel
	}
	if o.CategoryLabel == "" {
		o.CategoryLabel = DefaultCategoryLabel
	}
	if o.SubcategoryLabel == "" {
		o.SubcategoryLabel = DefaultSubcategoryLabel
	}
	return o
}

// File reads and converts one v1 checklist file. On any failure — unreadable
// file, malformed JSON, no items key — no records are returned for this
// input; the caller moves on to the next one.
func File(path string, opts Options) ([]model.Record, error) {
	slog.Debug("converting input", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("transform: read %s: %w", path, err)
	}
	return Parse(data, path, opts)
}

// Parse converts a raw v1 checklist document. sourcePath identifies the
// input in errors and is recorded as the source file for items that carry
// no source information of their own.
func Parse(data []byte, sourcePath string, opts Options) ([]model.Record, error) {
	var doc model.Checklist
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("transform: parse %s: %w", sourcePath, err)
	}
	if doc.Items == nil {
		return nil, fmt.Errorf("transform: %s: no items found", sourcePath)
	}
	slog.Debug("items found", "path", sourcePath, "count", len(doc.Items))
	return Checklist(doc, sourcePath, opts), nil
}

// Checklist converts an already-decoded v1 document. Items never fail
// individually: a field that is missing in v1 is simply absent in v2.
func Checklist(doc model.Checklist, sourcePath string, opts Options) []model.Record {
	opts = opts.withDefaults()
	records := make([]model.Record, 0, len(doc.Items))
	for _, item := range doc.Items {
		records = append(records, convertItem(item, sourcePath, opts))
	}
	return records
}

// convertItem maps one v1 item to a v2 record.
func convertItem(item model.Item, sourcePath string, opts Options) model.Record {
	rec := model.Record{
		GUID:          item.GUID,
		Title:         item.Text,
		Description:   item.Description,
		WAF:           item.WAF,
		Labels:        map[string]string{},
		Queries:       []any{},
		Links:         []string{},
		ResourceTypes: []string{},
	}

	if item.Severity != nil {
		if sev, ok := model.ParseSeverity(*item.Severity); ok {
			rec.Severity = &sev
		}
	}

	if item.Category != nil {
		rec.Labels[opts.CategoryLabel] = *item.Category
	}
	if item.Subcategory != nil {
		rec.Labels[opts.SubcategoryLabel] = *item.Subcategory
	}
	if item.ID != nil {
		rec.Labels[opts.IDLabel] = *item.ID
	}

	if item.Graph != nil {
		rec.Queries = map[string]string{"arg": *item.Graph}
	}

	if item.Link != nil {
		rec.Links = append(rec.Links, *item.Link)
	}
	if item.Training != nil {
		rec.Links = append(rec.Links, *item.Training)
	}

	rec.Source = sourceRef(item, sourcePath)

	if item.Service != nil {
		svc := item.Service
		if opts.Dictionary != nil {
			canonical := opts.Dictionary.CanonicalService(*item.Service)
			svc = &canonical
		}
		rec.Service = svc
	}

	if item.RecommendationResourceType != nil {
		rec.ResourceTypes = append(rec.ResourceTypes, *item.RecommendationResourceType)
	} else if opts.Dictionary != nil && item.Service != nil {
		// Independent alias scan against the original (pre-normalization)
		// service name; only the first matching entry contributes.
		if arm, ok := opts.Dictionary.ResourceType(*item.Service); ok {
			rec.ResourceTypes = append(rec.ResourceTypes, arm)
		}
	}

	for k, v := range opts.ExtraLabels {
		rec.Labels[k] = v
	}

	return rec
}

// sourceRef derives the v2 source mapping. Priority: an explicit "source"
// field, then sourceType/sourceFile, then a local fallback naming the input
// file. An explicit source value that is neither a recognized literal nor
// carries a telltale extension yields no source at all — that is what the
// v1 corpus does, so it is preserved.
func sourceRef(item model.Item, sourcePath string) *model.SourceRef {
	if item.Source != nil {
		src := *item.Source
		switch {
		case strings.EqualFold(src, model.SourceAPRL), strings.EqualFold(src, model.SourceWAFSG):
			return &model.SourceRef{Type: strings.ToLower(src)}
		case strings.Contains(src, ".yaml"):
			// Imported from YAML: came from APRL.
			return &model.SourceRef{Type: model.SourceAPRL}
		case strings.Contains(src, ".md"):
			// Imported from Markdown: came from a WAF service guide.
			return &model.SourceRef{Type: model.SourceWAFSG}
		}
		return nil
	}
	if item.SourceType != nil {
		ref := &model.SourceRef{Type: strings.ToLower(*item.SourceType)}
		if item.SourceFile != nil {
			ref.File = *item.SourceFile
		}
		return ref
	}
	return &model.SourceRef{Type: model.SourceLocal, File: sourcePath}
}
