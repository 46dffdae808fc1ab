package domain

// EvalResult is the per-item outcome of one eval.
type EvalResult struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"durationMs"`
	Detail     any    `json:"detail,omitempty"`
}

// EvalSummary aggregates the eval results for one transcript.
type EvalSummary struct {
	Results []EvalResult `json:"results"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Errors  int          `json:"errors"`
	Skipped int          `json:"skipped"`
}

// EnrichmentResult is the per-item outcome of one enrichment.
type EnrichmentResult struct {
	Name       string `json:"name"`
	Value      any    `json:"value,omitempty"`
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

// EnrichmentSummary aggregates enrichment results for one transcript.
type EnrichmentSummary struct {
	Results []EnrichmentResult `json:"results"`
	Errors  int                `json:"errors"`
	Skipped int                `json:"skipped"`
}

// ActionResult is the per-item outcome of one action.
type ActionResult struct {
	Name       string `json:"name"`
	Output     any    `json:"output,omitempty"`
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

// ActionSummary aggregates action results for one transcript.
type ActionSummary struct {
	Results []ActionResult `json:"results"`
	Errors  int            `json:"errors"`
	Skipped int            `json:"skipped"`
}

// FilterResult is the per-item outcome of one filter.
type FilterResult struct {
	Name       string `json:"name"`
	Matched    bool   `json:"matched"`
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

// FilterSummary aggregates filter results for one transcript.
type FilterSummary struct {
	Results []FilterResult `json:"results"`
	Matched int            `json:"matched"`
	Errors  int            `json:"errors"`
	Skipped int            `json:"skipped"`
}
