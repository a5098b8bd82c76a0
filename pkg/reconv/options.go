package reconv

type options struct {
	dictionary       Dictionary
	extraLabels      map[string]string
	idLabel          string
	categoryLabel    string
	subcategoryLabel string
	format           string
	overwrite        bool
}

// Option configures Convert and Store calls. Options that don't apply to a
// call are ignored by it, so one option slice can serve both.
type Option func(*options)

// WithDictionary supplies a service dictionary for alias normalization and
// resource-type resolution. Entry order matters: the first entry whose
// names contain an alias wins.
func WithDictionary(d Dictionary) Option {
	return func(o *options) {
		o.dictionary = d
	}
}

// WithExtraLabels merges static labels into every converted record,
// overwriting mapped labels on key collision.
func WithExtraLabels(labels map[string]string) Option {
	return func(o *options) {
		o.extraLabels = labels
	}
}

// WithLabelNames overrides the label keys used for the v1 id, category and
// subcategory fields. Empty strings keep the defaults ("id", "area",
// "subarea").
func WithLabelNames(id, category, subcategory string) Option {
	return func(o *options) {
		o.idLabel = id
		o.categoryLabel = category
		o.subcategoryLabel = subcategory
	}
}

// WithFormat sets the output serialization: "yaml" (default, "yml" also
// accepted) or "json". Anything else makes Store fail before touching any
// record.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithOverwrite replaces existing files for a guid instead of reporting
// conflicts, and prunes directories emptied by the replacements.
func WithOverwrite(overwrite bool) Option {
	return func(o *options) {
		o.overwrite = overwrite
	}
}

func defaultOptions() options {
	return options{format: "yaml"}
}
