package ports

import "github.com/claudeye/claudeye/internal/core/domain"

// Registry exposes the operator's currently-registered items, bound
// from the evals module.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Items returns the registered items of one kind that apply to the
	// given scope. scope is ScopeSession or ScopeSubagent; subagentType
	// additionally filters subagent-scoped items when non-empty.
	Items(kind domain.ItemKind, scope domain.Scope, subagentType string) []domain.RegisteredItem

	// Item looks up a single registered item by kind and name.
	Item(kind domain.ItemKind, name string) (domain.RegisteredItem, bool)

	// Names returns the registered item names of one kind, sorted.
	Names(kind domain.ItemKind) []string

	// GlobalCondition returns the module's global gating condition for
	// the given scope, or nil when none is registered.
	GlobalCondition(scope domain.Scope) domain.ConditionFunc

	// Reload re-reads the evals module and rebuilds all bindings.
	Reload() error
}
