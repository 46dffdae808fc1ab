package domain

import "context"

// ItemFunc is one user-registered function. The session argument is the
// shared transcript context; the returned value is kind-specific (a
// verdict for evals, an arbitrary value for enrichments, and so on).
type ItemFunc func(ctx context.Context, session map[string]any) (any, error)

// ConditionFunc gates item execution. A false return is normal filtering;
// an error return signals a bug in operator code and is recorded as an
// error result, not a skip.
type ConditionFunc func(session map[string]any) (bool, error)

// RegisteredItem is one named function registered by the operator, bound
// from the evals module.
type RegisteredItem struct {
	// Name identifies the item within its kind.
	Name string
	// Kind is the item's family.
	Kind ItemKind
	// Scope declares which transcripts the item applies to.
	Scope Scope
	// SubagentType optionally restricts a subagent-scoped item to one
	// subagent type. Empty means any.
	SubagentType string
	// CodeHash is the hash of the item function's source text. Editing a
	// single function invalidates only that function's cached results.
	CodeHash string
	// Condition optionally gates execution of this item.
	Condition ConditionFunc
	// Fn is the item function itself.
	Fn ItemFunc
}
