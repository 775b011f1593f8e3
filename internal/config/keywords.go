package config

import (
	"fmt"

	"github.com/abelbrown/tensionwatch/internal/signal"
)

// Severity modifier group names.
const (
	ModifierEscalation         = "escalation"
	ModifierModerateEscalation = "moderate_escalation"
	ModifierDeEscalation       = "de_escalation"
)

// ModifierGroups lists the known severity modifier groups in the
// order they are applied.
var ModifierGroups = []string{
	ModifierEscalation,
	ModifierModerateEscalation,
	ModifierDeEscalation,
}

// LangKeywords is a keyword list pair, one sequence per language.
type LangKeywords struct {
	EN []string `yaml:"en"`
	ZH []string `yaml:"zh"`
}

// Modifier is a severity modifier group: a keyword pair plus a
// signed weight.
type Modifier struct {
	EN     []string `yaml:"en"`
	ZH     []string `yaml:"zh"`
	Weight int      `yaml:"weight"`
}

// Keywords bundles the caller-supplied keyword/weight tables. All
// three tables are read-only after Validate.
type Keywords struct {
	Categories map[signal.Category]LangKeywords `yaml:"categories"`
	Modifiers  map[string]Modifier              `yaml:"modifiers"`
	Entities   map[string]LangKeywords          `yaml:"entities"`
}

// Validate checks the keyword tables and normalizes nil keyword
// slices to empty ones so every key has both language lists present.
func (k *Keywords) Validate() error {
	if len(k.Categories) == 0 {
		return ErrNoCategories
	}
	for cat, kw := range k.Categories {
		if !cat.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
		}
		k.Categories[cat] = normalizeLists(kw)
	}

	if len(k.Modifiers) == 0 {
		return ErrNoModifiers
	}
	for name, mod := range k.Modifiers {
		if !knownModifier(name) {
			return fmt.Errorf("%w: %q", ErrUnknownModifier, name)
		}
		if mod.EN == nil {
			mod.EN = []string{}
		}
		if mod.ZH == nil {
			mod.ZH = []string{}
		}
		k.Modifiers[name] = mod
	}

	if len(k.Entities) == 0 {
		return ErrNoEntities
	}
	for id, aliases := range k.Entities {
		k.Entities[id] = normalizeLists(aliases)
	}

	return nil
}

func normalizeLists(kw LangKeywords) LangKeywords {
	if kw.EN == nil {
		kw.EN = []string{}
	}
	if kw.ZH == nil {
		kw.ZH = []string{}
	}
	return kw
}

func knownModifier(name string) bool {
	for _, known := range ModifierGroups {
		if name == known {
			return true
		}
	}
	return false
}
