package token

import "sync"

// nextRuleID tracks the last assigned dynamic rule ID.
// Dynamic rules start after maxBuiltin (999).
var nextRuleID = maxBuiltin

var (
	registryMu   sync.RWMutex
	dynamicRules = make(map[Rule]string)
	dynamicNames = make(map[string]Rule)
)

// Register registers a rule emitted by an external grammar that the
// builtin set does not know about, such as EOI or a non-silent COMMENT.
// Registering the same name twice returns the same Rule. Registering a
// builtin name returns the builtin Rule.
func Register(name string) Rule {
	if r, ok := builtinRules[name]; ok {
		return r
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if r, ok := dynamicNames[name]; ok {
		return r
	}
	nextRuleID++
	r := nextRuleID
	dynamicRules[r] = name
	dynamicNames[name] = r
	return r
}

// getDynamicName returns the name of a dynamic rule.
func getDynamicName(r Rule) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name, ok := dynamicRules[r]
	return name, ok
}

// LookupDynamicRule returns the registered rule with the given name.
// Returns Invalid and false if the name was never registered.
func LookupDynamicRule(name string) (Rule, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if r, ok := dynamicNames[name]; ok {
		return r, true
	}
	return Invalid, false
}

// IsDynamic returns true if the rule was registered at runtime.
func IsDynamic(r Rule) bool {
	return r > maxBuiltin
}

// RegisteredRules returns a copy of all registered dynamic rules.
func RegisteredRules() map[Rule]string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make(map[Rule]string, len(dynamicRules))
	for k, v := range dynamicRules {
		result[k] = v
	}
	return result
}
