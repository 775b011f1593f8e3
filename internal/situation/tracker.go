// Package situation tracks long-running bilateral flashpoints. Each
// situation in the fixed registry has trigger keywords in both
// languages; any signal containing a trigger keeps the situation
// active for the day.
package situation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abelbrown/tensionwatch/internal/signal"
)

// Situation is one registered flashpoint.
type Situation struct {
	ID              string
	Name            signal.BilingualText
	TriggersEN      []string
	TriggersZH      []string
	DefaultSeverity signal.Severity
	Start           time.Time
}

// Active is a situation with at least one matching signal today.
type Active struct {
	ID        string               `json:"id"`
	Name      signal.BilingualText `json:"name"`
	Detail    signal.BilingualText `json:"detail"`
	Severity  signal.Severity      `json:"severity"`
	DayCount  int                  `json:"day_count"`
	SignalIDs []string             `json:"signal_ids"`
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Registry lists the tracked situations. Order here is not output
// order; results sort by severity.
var Registry = []Situation{
	{
		ID:              "canola_trade_dispute",
		Name:            signal.BilingualText{EN: "Canola Trade Dispute", ZH: "油菜籽贸易争端"},
		TriggersEN:      []string{"canola", "oilseed"},
		TriggersZH:      []string{"油菜籽", "菜籽"},
		DefaultSeverity: signal.SeverityElevated,
		Start:           day(2019, time.March, 1),
	},
	{
		ID:              "tech_decoupling",
		Name:            signal.BilingualText{EN: "Technology Decoupling", ZH: "科技脱钩"},
		TriggersEN:      []string{"huawei", "5g ban", "semiconductor", "tech ban"},
		TriggersZH:      []string{"华为", "5G禁令", "半导体"},
		DefaultSeverity: signal.SeverityHigh,
		Start:           day(2018, time.December, 1),
	},
	{
		ID:              "foreign_interference",
		Name:            signal.BilingualText{EN: "Foreign Interference Inquiry", ZH: "外国干预调查"},
		TriggersEN:      []string{"foreign interference", "csis", "interference inquiry"},
		TriggersZH:      []string{"外国干预", "干预调查"},
		DefaultSeverity: signal.SeverityHigh,
		Start:           day(2023, time.February, 1),
	},
	{
		ID:              "taiwan_strait_tensions",
		Name:            signal.BilingualText{EN: "Taiwan Strait Tensions", ZH: "台湾海峡紧张局势"},
		TriggersEN:      []string{"taiwan strait", "taiwan", "cross-strait", "pla"},
		TriggersZH:      []string{"台湾海峡", "台湾", "两岸"},
		DefaultSeverity: signal.SeverityElevated,
		Start:           day(2022, time.August, 1),
	},
	{
		ID:              "rare_earth_controls",
		Name:            signal.BilingualText{EN: "Rare Earth Export Controls", ZH: "稀土出口管制"},
		TriggersEN:      []string{"rare earth", "gallium", "germanium", "critical minerals"},
		TriggersZH:      []string{"稀土", "镓", "锗", "关键矿产"},
		DefaultSeverity: signal.SeverityElevated,
		Start:           day(2023, time.July, 1),
	},
	{
		ID:              "diplomatic_tensions",
		Name:            signal.BilingualText{EN: "Diplomatic Tensions", ZH: "外交紧张局势"},
		TriggersEN:      []string{"ambassador", "expelled", "diplomatic", "persona non grata"},
		TriggersZH:      []string{"大使", "驱逐", "外交"},
		DefaultSeverity: signal.SeverityModerate,
		Start:           day(2018, time.December, 1),
	},
}

// Tracker evaluates the registry against a day's signals.
type Tracker struct {
	registry []Situation
}

// NewTracker uses the built-in registry.
func NewTracker() *Tracker {
	return &Tracker{registry: Registry}
}

// NewTrackerWith evaluates a custom registry, for tests.
func NewTrackerWith(registry []Situation) *Tracker {
	return &Tracker{registry: registry}
}

// Track returns the situations with at least one matching signal,
// sorted by severity descending. Severity starts at the registered
// default and upgrades to the highest matching signal's severity.
// Overlapping triggers fire every matching situation.
func (t *Tracker) Track(signals []*signal.Signal, date time.Time) []Active {
	var active []Active
	for _, sit := range t.registry {
		severity := sit.DefaultSeverity
		var matched []string
		for _, sig := range signals {
			if !matches(sit, sig) {
				continue
			}
			matched = append(matched, sig.ID)
			severity = signal.MaxSeverity(severity, sig.Severity)
		}
		if len(matched) == 0 {
			continue
		}
		active = append(active, Active{
			ID:   sit.ID,
			Name: sit.Name,
			Detail: signal.BilingualText{
				EN: fmt.Sprintf("%d related signal(s) detected today.", len(matched)),
				ZH: fmt.Sprintf("今日检测到%d条相关信号。", len(matched)),
			},
			Severity:  severity,
			DayCount:  dayCount(sit.Start, date),
			SignalIDs: matched,
		})
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Severity.Rank() > active[j].Severity.Rank()
	})
	return active
}

func matches(sit Situation, sig *signal.Signal) bool {
	raw := sig.ClassifyText()
	if raw == "" {
		return false
	}
	lowered := strings.ToLower(raw)
	for _, trig := range sit.TriggersEN {
		if strings.Contains(lowered, strings.ToLower(trig)) {
			return true
		}
	}
	for _, trig := range sit.TriggersZH {
		if strings.Contains(raw, trig) {
			return true
		}
	}
	return false
}

// dayCount is the number of calendar days from start to date, floored
// at zero for dates before a situation began.
func dayCount(start, date time.Time) int {
	days := int(date.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
