package runner

import (
	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/engine/harness"
)

// summarize folds harness outcomes into the summary type of a kind.
func summarize(kind domain.ItemKind, outcomes []harness.Outcome) any {
	switch kind {
	case domain.KindEvals:
		return summarizeEvals(outcomes)
	case domain.KindEnrichments:
		return summarizeEnrichments(outcomes)
	case domain.KindActions:
		return summarizeActions(outcomes)
	default:
		return summarizeFilters(outcomes)
	}
}

// resultFor converts a single harness outcome into the per-item result
// type of a kind.
func resultFor(kind domain.ItemKind, out harness.Outcome) any {
	switch kind {
	case domain.KindEvals:
		return evalResult(out)
	case domain.KindEnrichments:
		return enrichmentResult(out)
	case domain.KindActions:
		return actionResult(out)
	default:
		return filterResult(out)
	}
}

func summarizeEvals(outcomes []harness.Outcome) *domain.EvalSummary {
	s := &domain.EvalSummary{Results: make([]domain.EvalResult, 0, len(outcomes))}
	for _, out := range outcomes {
		r := evalResult(out)
		s.Results = append(s.Results, r)
		switch {
		case r.Skipped:
			s.Skipped++
		case r.Error != "":
			s.Errors++
		case r.Passed:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

func summarizeEnrichments(outcomes []harness.Outcome) *domain.EnrichmentSummary {
	s := &domain.EnrichmentSummary{Results: make([]domain.EnrichmentResult, 0, len(outcomes))}
	for _, out := range outcomes {
		r := enrichmentResult(out)
		s.Results = append(s.Results, r)
		switch {
		case r.Skipped:
			s.Skipped++
		case r.Error != "":
			s.Errors++
		}
	}
	return s
}

func summarizeActions(outcomes []harness.Outcome) *domain.ActionSummary {
	s := &domain.ActionSummary{Results: make([]domain.ActionResult, 0, len(outcomes))}
	for _, out := range outcomes {
		r := actionResult(out)
		s.Results = append(s.Results, r)
		switch {
		case r.Skipped:
			s.Skipped++
		case r.Error != "":
			s.Errors++
		}
	}
	return s
}

func summarizeFilters(outcomes []harness.Outcome) *domain.FilterSummary {
	s := &domain.FilterSummary{Results: make([]domain.FilterResult, 0, len(outcomes))}
	for _, out := range outcomes {
		r := filterResult(out)
		s.Results = append(s.Results, r)
		switch {
		case r.Skipped:
			s.Skipped++
		case r.Error != "":
			s.Errors++
		case r.Matched:
			s.Matched++
		}
	}
	return s
}

// evalResult interprets an eval's return value as a verdict: a bare
// bool is the verdict itself; a map carrying a "pass" bool is a verdict
// with detail; anything else counts as a pass with the value attached.
func evalResult(out harness.Outcome) domain.EvalResult {
	r := domain.EvalResult{
		Name:       out.Name,
		Skipped:    out.Skipped,
		DurationMs: out.Duration.Milliseconds(),
	}
	if out.Err != nil {
		r.Error = out.Err.Error()
		return r
	}
	if out.Skipped {
		return r
	}
	switch v := out.Value.(type) {
	case bool:
		r.Passed = v
	case map[string]any:
		pass, ok := v["pass"].(bool)
		r.Passed = !ok || pass
		r.Detail = v
	default:
		r.Passed = true
		r.Detail = v
	}
	return r
}

func enrichmentResult(out harness.Outcome) domain.EnrichmentResult {
	r := domain.EnrichmentResult{
		Name:       out.Name,
		Skipped:    out.Skipped,
		DurationMs: out.Duration.Milliseconds(),
	}
	if out.Err != nil {
		r.Error = out.Err.Error()
		return r
	}
	r.Value = out.Value
	return r
}

func actionResult(out harness.Outcome) domain.ActionResult {
	r := domain.ActionResult{
		Name:       out.Name,
		Skipped:    out.Skipped,
		DurationMs: out.Duration.Milliseconds(),
	}
	if out.Err != nil {
		r.Error = out.Err.Error()
		return r
	}
	r.Output = out.Value
	return r
}

// filterResult interprets a filter's return value: a bare bool is the
// match verdict; any other non-nil value counts as a match.
func filterResult(out harness.Outcome) domain.FilterResult {
	r := domain.FilterResult{
		Name:       out.Name,
		Skipped:    out.Skipped,
		DurationMs: out.Duration.Milliseconds(),
	}
	if out.Err != nil {
		r.Error = out.Err.Error()
		return r
	}
	if v, ok := out.Value.(bool); ok {
		r.Matched = v
	} else {
		r.Matched = out.Value != nil
	}
	return r
}
