package localekit

import (
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/localekit/pkg/plural"
	"github.com/dmitrymomot/localekit/pkg/timeago"
)

// rePlaceholder matches $name interpolation tokens and the $$ escape.
var rePlaceholder = regexp.MustCompile(`\$(\$|[A-Za-z0-9_-]+)`)

// Get retrieves the message with the given dotted identifier. A miss
// across the whole fallback graph returns the identifier itself.
func (m *LocaleMap) Get(id string) string {
	return m.GetFormatted(id)
}

// GetFormatted retrieves a message, letting the arguments select a
// variant and fill placeholders. A Gender argument appends "_male" or
// "_female" to the identifier; a Quantity appends "_empty", "_one" or
// "_multiple" and injects $number. Lookup never fails: a total miss
// degrades to the augmented identifier.
func (m *LocaleMap) GetFormatted(id string, args ...Arg) string {
	var state formatState
	for _, arg := range args {
		arg.applyFormat(&state)
	}

	switch state.gender {
	case Male:
		id += "_male"
	case Female:
		id += "_female"
	}

	vars := state.vars
	if state.hasQty {
		id += state.qtySuffix
		vars = make(map[string]string, len(state.vars)+1)
		for k, v := range state.vars {
			vars[k] = v
		}
		vars["number"] = state.number
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == "" {
		return id
	}

	path := strings.Split(id, ".")
	if message, ok := m.resolveMessage(m.current, path, make(map[string]bool)); ok {
		return interpolate(message, vars)
	}

	m.log.Debug("message missing", "locale", m.current, "id", id)
	if m.missingKey != nil {
		m.missingKey(m.current, id)
	}
	return id
}

// resolveMessage walks the dotted path in the bundle of code, then
// recurses depth-first through its fallbacks. The seen set keeps
// cyclic fallback graphs terminating.
func (m *LocaleMap) resolveMessage(code string, path []string, seen map[string]bool) (string, bool) {
	if seen[code] {
		return "", false
	}
	seen[code] = true

	if message, ok := resolvePath(m.assets[code], path); ok {
		return message, true
	}
	for _, next := range m.fallbacks[code] {
		if message, ok := m.resolveMessage(next, path, seen); ok {
			return message, true
		}
	}
	return "", false
}

// resolvePath descends through nested objects; only a string leaf at
// the exact path counts as a hit.
func resolvePath(bundle map[string]any, path []string) (string, bool) {
	var node any = bundle
	if bundle == nil {
		return "", false
	}
	for _, frag := range path {
		obj, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = obj[frag]; !ok {
			return "", false
		}
	}
	message, ok := node.(string)
	return message, ok
}

// interpolate substitutes $name tokens from vars. "$$" yields a literal
// "$"; an unresolved name yields the literal string "undefined".
func interpolate(message string, vars map[string]string) string {
	return rePlaceholder.ReplaceAllStringFunc(message, func(token string) string {
		name := token[1:]
		if name == "$" {
			return "$"
		}
		if value, ok := vars[name]; ok {
			return value
		}
		return "undefined"
	})
}

// SelectPlural returns the CLDR plural category for n under the current
// locale's cardinal or ordinal rules. It fails with ErrNotLoaded before
// the first successful Load.
func (m *LocaleMap) SelectPlural(t plural.Type, n int64) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rule := m.cardinal
	if t == plural.Ordinal {
		rule = m.ordinal
	}
	if rule == nil {
		return "", ErrNotLoaded
	}
	return rule(n), nil
}

// FormatRelativeTime renders how long ago a duration was in the current
// locale's wording ("5 minutes ago", "há 5 minutos"). Before the first
// Load it returns "undefined".
func (m *LocaleMap) FormatRelativeTime(d time.Duration) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.wording == nil {
		return "undefined"
	}
	return timeago.Format(m.wording, d)
}
