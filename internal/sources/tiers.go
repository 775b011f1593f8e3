// Package sources maps free-text source names to reliability tiers.
package sources

import (
	"strings"

	"github.com/abelbrown/tensionwatch/internal/signal"
)

// Tier is a source reliability class.
type Tier string

const (
	TierOfficial   Tier = "official"   // government agencies and official bodies
	TierWire       Tier = "wire"       // international wire services
	TierSpecialist Tier = "specialist" // think tanks and specialist analysis
	TierMedia      Tier = "media"      // general media outlets
)

// Score returns the tier's contribution to the severity score.
func (t Tier) Score() int {
	switch t {
	case TierOfficial:
		return 4
	case TierWire:
		return 3
	case TierSpecialist:
		return 2
	}
	return 1
}

// Known source names per tier, both languages.
var tierNames = map[Tier]map[string][]string{
	TierOfficial: {
		"en": {
			"Global Affairs Canada", "PMO", "State Council", "MOFCOM",
			"PBOC", "MFA", "Taiwan Ministry of National Defense",
			"Xinhua", "CAC", "SAMR",
		},
		"zh": {
			"加拿大全球事务部", "总理办公室", "国务院", "商务部",
			"中国人民银行", "外交部", "台湾国防部", "新华社",
			"网信办", "市场监管总局",
		},
	},
	TierWire: {
		"en": {"Reuters", "AP", "AFP", "Bloomberg", "Nikkei Asia"},
		"zh": {"路透社", "美联社", "法新社", "彭博"},
	},
	TierSpecialist: {
		"en": {
			"CSIS", "Sinocism", "China Brief", "MERICS", "OSINT",
			"The Diplomat", "Asia Times",
		},
		"zh": {"加拿大安全情报局", "开源情报"},
	},
	TierMedia: {
		"en": {
			"Globe and Mail", "CBC", "South China Morning Post", "SCMP",
			"SCMP Politics", "SCMP Diplomacy", "SCMP Economy",
			"SCMP Business", "SCMP Tech", "SCMP Geopolitics", "BBC",
		},
		"zh": {"环球邮报", "CBC", "南华早报"},
	},
}

// tierOrder fixes the scan order for substring fallback: more
// reliable tiers win when a name fragment appears in several.
var tierOrder = []Tier{TierOfficial, TierWire, TierSpecialist, TierMedia}

type knownSource struct {
	name string
	tier Tier
}

// Flat lookup from lowercased source name to tier, and the same
// entries as an ordered list for substring scanning. Both built once
// at process start, read-only thereafter.
var (
	tierLookup   = buildLookup()
	orderedNames = buildOrdered()
)

func buildLookup() map[string]Tier {
	lookup := make(map[string]Tier)
	for _, src := range buildOrdered() {
		lookup[src.name] = src.tier
	}
	return lookup
}

func buildOrdered() []knownSource {
	var ordered []knownSource
	for _, tier := range tierOrder {
		for _, lang := range []string{"en", "zh"} {
			for _, name := range tierNames[tier][lang] {
				ordered = append(ordered, knownSource{strings.ToLower(name), tier})
			}
		}
	}
	return ordered
}

// Resolve maps a source name to its reliability tier. Exact
// case-insensitive lookup first, then bidirectional substring
// matching. Unknown sources silently degrade to media.
func Resolve(name string) Tier {
	if name == "" {
		return TierMedia
	}

	lowered := strings.ToLower(name)
	if tier, ok := tierLookup[lowered]; ok {
		return tier
	}

	for _, src := range orderedNames {
		if strings.Contains(lowered, src.name) || strings.Contains(src.name, lowered) {
			return src.tier
		}
	}

	return TierMedia
}

// ResolveBilingual resolves a bilingual source field. The English
// side is tried first; if it only yields the default tier and a
// Chinese name is present, that side gets a retry.
func ResolveBilingual(source signal.BilingualText) Tier {
	tier := Resolve(source.EN)
	if tier != TierMedia || source.ZH == "" {
		return tier
	}
	return Resolve(source.ZH)
}
