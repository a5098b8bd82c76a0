package model

// Checklist is a parsed v1 checklist document. The legacy format is a single
// JSON object whose only meaningful key is "items".
type Checklist struct {
	Items []Item `json:"items"`
}

// Item is one recommendation in the legacy v1 flat schema. Every field is
// optional, and presence matters: an empty string is a real value, absence
// means the key was not in the document. Fields are pointers so the two
// cases stay distinguishable through decoding.
type Item struct {
	GUID                       *string `json:"guid"`
	Text                       *string `json:"text"`
	Description                *string `json:"description"`
	WAF                        *string `json:"waf"`
	Severity                   *string `json:"severity"`
	Category                   *string `json:"category"`
	Subcategory                *string `json:"subcategory"`
	ID                         *string `json:"id"`
	Graph                      *string `json:"graph"`
	Link                       *string `json:"link"`
	Training                   *string `json:"training"`
	Source                     *string `json:"source"`
	SourceType                 *string `json:"sourceType"`
	SourceFile                 *string `json:"sourceFile"`
	Service                    *string `json:"service"`
	RecommendationResourceType *string `json:"recommendationResourceType"`
}
