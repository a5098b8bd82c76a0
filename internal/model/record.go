package model

// Record is a recommendation in the normalized v2 schema — the output type.
// Optional scalar fields are pointers: nil means the key is absent from the
// serialized document, which is not the same as an empty value (severity 0
// is High, not "no severity").
//
// Queries is heterogeneous on purpose: an empty sequence when the item had
// no graph query, a {arg: <query>} mapping when it did. That inconsistency
// is inherited from the v1 corpus and preserved rather than normalized.
type Record struct {
	GUID          *string           `yaml:"guid,omitempty" json:"guid,omitempty"`
	Title         *string           `yaml:"title,omitempty" json:"title,omitempty"`
	Description   *string           `yaml:"description,omitempty" json:"description,omitempty"`
	WAF           *string           `yaml:"waf,omitempty" json:"waf,omitempty"`
	Severity      *Severity         `yaml:"severity,omitempty" json:"severity,omitempty"`
	Labels        map[string]string `yaml:"labels" json:"labels"`
	Queries       any               `yaml:"queries" json:"queries"`
	Links         []string          `yaml:"links" json:"links"`
	Source        *SourceRef        `yaml:"source,omitempty" json:"source,omitempty"`
	Service       *string           `yaml:"service,omitempty" json:"service,omitempty"`
	ResourceTypes []string          `yaml:"resourceTypes" json:"resourceTypes"`
}

// SourceRef records where a recommendation came from.
type SourceRef struct {
	Type string `yaml:"type" json:"type"`
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Known source types.
const (
	SourceAPRL  = "aprl"  // Azure Proactive Resiliency Library (YAML imports)
	SourceWAFSG = "wafsg" // WAF service guides (Markdown imports)
	SourceLocal = "local" // authored directly in a local checklist file
)

// HasGUID reports whether the record carries a usable identifier.
// An empty guid would name an output file ".yaml", so it counts as missing.
func (r Record) HasGUID() bool {
	return r.GUID != nil && *r.GUID != ""
}

// DisplayName returns something identifying for error messages: the title
// if present, else the guid, else a placeholder.
func (r Record) DisplayName() string {
	if r.Title != nil && *r.Title != "" {
		return *r.Title
	}
	if r.GUID != nil && *r.GUID != "" {
		return *r.GUID
	}
	return "(untitled)"
}
