package domain

// IndexRange is an inclusive, 0-based interval into a test-case list.
// Invariant: 0 <= Start <= End < len(list).
type IndexRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// CategorySelection narrows one test-case category (example or hidden).
// At most one of Range and Indices should be set; when both are present
// Indices wins. Indices are order-preserving and may contain duplicates.
type CategorySelection struct {
	Range   *IndexRange `json:"range,omitempty"`
	Indices []int       `json:"indices,omitempty"`
}

// TestCaseConfig is the per-assessment override attached to a
// section-problem link. A nil category selection means "use all".
type TestCaseConfig struct {
	Example *CategorySelection `json:"example,omitempty"`
	Hidden  *CategorySelection `json:"hidden,omitempty"`
}
