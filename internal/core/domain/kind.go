// Package domain contains the core types shared by the cache, the batch
// harness and the work queue.
package domain

// ItemKind discriminates the four families of user-registered functions.
// Each kind has its own cache namespace, even for identical project and
// session keys.
type ItemKind string

const (
	// KindEvals are pass/fail checks over a session transcript.
	KindEvals ItemKind = "evals"
	// KindEnrichments compute derived values attached to a session.
	KindEnrichments ItemKind = "enrichments"
	// KindActions produce side-effect outcomes (notifications, exports).
	KindActions ItemKind = "actions"
	// KindFilters decide whether a session matches a predicate.
	KindFilters ItemKind = "filters"
)

// Valid reports whether k is one of the four known kinds.
func (k ItemKind) Valid() bool {
	switch k {
	case KindEvals, KindEnrichments, KindActions, KindFilters:
		return true
	}
	return false
}

// Scope declares which transcripts a registered item applies to.
type Scope string

const (
	// ScopeSession applies only to top-level session transcripts.
	ScopeSession Scope = "session"
	// ScopeSubagent applies only to subagent transcripts.
	ScopeSubagent Scope = "subagent"
	// ScopeBoth applies to both.
	ScopeBoth Scope = "both"
)

// Includes reports whether an item declared with scope s applies to a
// transcript of scope target. target is never ScopeBoth.
func (s Scope) Includes(target Scope) bool {
	return s == ScopeBoth || s == target
}
