// Package evals loads the operator's evals module and binds its
// functions as registered items.
//
// The module is a single Go source file interpreted at runtime. Its
// top-level functions are registered by naming convention:
//
//	Eval*    pass/fail evals
//	Enrich*  enrichments
//	Action*  actions
//	Filter*  filters
//
//	When            global gating condition for sessions
//	WhenSubagent    global gating condition for subagents
//	<ItemName>When  per-item gating condition
//
//	Scopes() map[string]string   optional; item name -> "session",
//	                             "subagent", "subagent:<type>" or "both"
//
// Item functions take the session context map and return any value
// (optionally with an error); condition functions return bool
// (optionally with an error).
package evals

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.trai.ch/zerr"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
)

var _ ports.Registry = (*Registry)(nil)

const (
	globalConditionName         = "When"
	globalSubagentConditionName = "WhenSubagent"
	conditionSuffix             = "When"
	scopesFuncName              = "Scopes"
)

// Registry holds the items bound from the evals module. Safe for
// concurrent use; Reload swaps the whole binding set atomically.
type Registry struct {
	modulePath string
	hasher     ports.Hasher
	logger     ports.Logger

	mu      sync.RWMutex
	items   map[domain.ItemKind][]domain.RegisteredItem
	globals map[domain.Scope]domain.ConditionFunc
}

// NewRegistry creates a Registry and performs the initial load. An
// empty modulePath yields an empty registry, not an error.
func NewRegistry(modulePath string, hasher ports.Hasher, logger ports.Logger) (*Registry, error) {
	r := &Registry{
		modulePath: modulePath,
		hasher:     hasher,
		logger:     logger,
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the evals module and rebuilds all bindings.
func (r *Registry) Reload() error {
	items := make(map[domain.ItemKind][]domain.RegisteredItem)
	globals := make(map[domain.Scope]domain.ConditionFunc)

	if r.modulePath != "" {
		if err := r.load(items, globals); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.items = items
	r.globals = globals
	r.mu.Unlock()
	return nil
}

// Items returns the registered items of one kind applying to scope.
func (r *Registry) Items(kind domain.ItemKind, scope domain.Scope, subagentType string) []domain.RegisteredItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.RegisteredItem
	for _, item := range r.items[kind] {
		if !item.Scope.Includes(scope) {
			continue
		}
		if scope == domain.ScopeSubagent && item.SubagentType != "" &&
			subagentType != "" && item.SubagentType != subagentType {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Item looks up a single registered item by kind and name.
func (r *Registry) Item(kind domain.ItemKind, name string) (domain.RegisteredItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items[kind] {
		if item.Name == name {
			return item, true
		}
	}
	return domain.RegisteredItem{}, false
}

// Names returns the registered item names of one kind, sorted.
func (r *Registry) Names(kind domain.ItemKind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items[kind]))
	for _, item := range r.items[kind] {
		names = append(names, item.Name)
	}
	sort.Strings(names)
	return names
}

// GlobalCondition returns the module's global condition for scope, or
// nil when none is registered.
func (r *Registry) GlobalCondition(scope domain.Scope) domain.ConditionFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.globals[scope]
}

// load parses and interprets the module, populating items and globals.
func (r *Registry) load(items map[domain.ItemKind][]domain.RegisteredItem, globals map[domain.Scope]domain.ConditionFunc) error {
	src, err := os.ReadFile(r.modulePath) //nolint:gosec // Path comes from operator config
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrModuleReadFailed, err.Error()), "path", r.modulePath)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, r.modulePath, src, 0)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrModuleParseFailed, err.Error()), "path", r.modulePath)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return zerr.Wrap(domain.ErrModuleInterpretFailed, err.Error())
	}
	if _, err := i.EvalPath(r.modulePath); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrModuleInterpretFailed, err.Error()), "path", r.modulePath)
	}

	pkg := file.Name.Name
	scopes := r.loadScopes(i, pkg, file)
	conditions := make(map[string]domain.ConditionFunc)

	// First pass: bind conditions so items can pick theirs up.
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !fn.Name.IsExported() {
			continue
		}
		name := fn.Name.Name
		if !isConditionName(name) {
			continue
		}

		cond, err := r.bindCondition(i, pkg, name)
		if err != nil {
			return err
		}
		switch name {
		case globalConditionName:
			globals[domain.ScopeSession] = cond
		case globalSubagentConditionName:
			globals[domain.ScopeSubagent] = cond
		default:
			conditions[strings.TrimSuffix(name, conditionSuffix)] = cond
		}
	}

	// Second pass: bind items.
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !fn.Name.IsExported() {
			continue
		}
		name := fn.Name.Name
		kind, ok := kindForName(name)
		if !ok {
			continue
		}

		itemFn, err := r.bindItem(i, pkg, name)
		if err != nil {
			return err
		}

		srcText := string(src[fset.Position(fn.Pos()).Offset:fset.Position(fn.End()).Offset])
		scope, subagentType := parseScope(scopes[name])

		items[kind] = append(items[kind], domain.RegisteredItem{
			Name:         name,
			Kind:         kind,
			Scope:        scope,
			SubagentType: subagentType,
			CodeHash:     r.hasher.HashItemCode(srcText),
			Condition:    conditions[name],
			Fn:           itemFn,
		})
	}
	return nil
}

// loadScopes calls the optional Scopes() declaration.
func (r *Registry) loadScopes(i *interp.Interpreter, pkg string, file *ast.File) map[string]string {
	declared := false
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv == nil && fn.Name.Name == scopesFuncName {
			declared = true
			break
		}
	}
	if !declared {
		return nil
	}

	rv, err := r.symbol(i, pkg, scopesFuncName)
	if err != nil {
		r.logger.Warn("ignoring unreadable Scopes() declaration in evals module")
		return nil
	}
	out := rv.Call(nil)
	if len(out) != 1 {
		r.logger.Warn("ignoring Scopes() with unexpected signature in evals module")
		return nil
	}
	scopes, ok := out[0].Interface().(map[string]string)
	if !ok {
		r.logger.Warn("ignoring Scopes() with unexpected return type in evals module")
		return nil
	}
	return scopes
}

// bindItem wraps an interpreted function as a domain.ItemFunc.
func (r *Registry) bindItem(i *interp.Interpreter, pkg, name string) (domain.ItemFunc, error) {
	rv, err := r.symbol(i, pkg, name)
	if err != nil {
		return nil, err
	}
	if err := validateFunc(rv, name); err != nil {
		return nil, err
	}

	return func(_ context.Context, session map[string]any) (any, error) {
		out := rv.Call([]reflect.Value{reflect.ValueOf(session)})
		if len(out) == 2 {
			if errv, ok := out[1].Interface().(error); ok && errv != nil {
				return nil, errv
			}
		}
		return out[0].Interface(), nil
	}, nil
}

// bindCondition wraps an interpreted function as a domain.ConditionFunc.
func (r *Registry) bindCondition(i *interp.Interpreter, pkg, name string) (domain.ConditionFunc, error) {
	rv, err := r.symbol(i, pkg, name)
	if err != nil {
		return nil, err
	}
	if err := validateFunc(rv, name); err != nil {
		return nil, err
	}
	if rv.Type().Out(0).Kind() != reflect.Bool {
		return nil, zerr.With(zerr.Wrap(domain.ErrBadFunctionSignature, "condition must return bool"), "function", name)
	}

	return func(session map[string]any) (bool, error) {
		out := rv.Call([]reflect.Value{reflect.ValueOf(session)})
		if len(out) == 2 {
			if errv, ok := out[1].Interface().(error); ok && errv != nil {
				return false, errv
			}
		}
		return out[0].Bool(), nil
	}, nil
}

// symbol resolves a top-level symbol from the interpreter.
func (r *Registry) symbol(i *interp.Interpreter, pkg, name string) (reflect.Value, error) {
	path := name
	if pkg != "main" {
		path = pkg + "." + name
	}
	rv, err := i.Eval(path)
	if err != nil {
		return reflect.Value{}, zerr.With(zerr.Wrap(domain.ErrModuleInterpretFailed, err.Error()), "function", name)
	}
	return rv, nil
}

// validateFunc checks the shared shape of registered functions: one
// map[string]any parameter and one or two results, the second being an
// error when present.
func validateFunc(rv reflect.Value, name string) error {
	t := rv.Type()
	if rv.Kind() != reflect.Func ||
		t.NumIn() != 1 ||
		!reflect.TypeOf(map[string]any{}).AssignableTo(t.In(0)) ||
		t.NumOut() < 1 || t.NumOut() > 2 {
		return zerr.With(zerr.Wrap(domain.ErrBadFunctionSignature, "want func(map[string]any) (T[, error])"), "function", name)
	}
	if t.NumOut() == 2 && !t.Out(1).Implements(reflect.TypeOf((*error)(nil)).Elem()) {
		return zerr.With(zerr.Wrap(domain.ErrBadFunctionSignature, "second result must be error"), "function", name)
	}
	return nil
}

// kindForName classifies an exported function name, excluding
// conditions and the Scopes declaration.
func kindForName(name string) (domain.ItemKind, bool) {
	if isConditionName(name) || name == scopesFuncName {
		return "", false
	}
	switch {
	case strings.HasPrefix(name, "Eval"):
		return domain.KindEvals, true
	case strings.HasPrefix(name, "Enrich"):
		return domain.KindEnrichments, true
	case strings.HasPrefix(name, "Action"):
		return domain.KindActions, true
	case strings.HasPrefix(name, "Filter"):
		return domain.KindFilters, true
	}
	return "", false
}

// isConditionName reports whether name is a global or per-item
// condition by convention.
func isConditionName(name string) bool {
	return name == globalConditionName ||
		name == globalSubagentConditionName ||
		strings.HasSuffix(name, conditionSuffix)
}

// parseScope maps a Scopes() value to a scope and optional subagent
// type. Unknown or missing values default to session scope.
func parseScope(v string) (domain.Scope, string) {
	scope, subagentType, _ := strings.Cut(v, ":")
	switch domain.Scope(scope) {
	case domain.ScopeSubagent:
		return domain.ScopeSubagent, subagentType
	case domain.ScopeBoth:
		return domain.ScopeBoth, subagentType
	default:
		return domain.ScopeSession, ""
	}
}
