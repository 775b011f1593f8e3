package entity

import (
	"reflect"
	"testing"

	"github.com/abelbrown/tensionwatch/internal/config"
	"github.com/abelbrown/tensionwatch/internal/signal"
)

func newMatcher(t *testing.T) *Matcher {
	t.Helper()
	return NewMatcher(config.DefaultKeywords())
}

func TestMatch(t *testing.T) {
	m := newMatcher(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "english case insensitive",
			text: "HUAWEI executives met with officials in Shenzhen",
			want: []string{"huawei"},
		},
		{
			name: "chinese exact substring",
			text: "华为高管在深圳会见官员",
			want: []string{"huawei"},
		},
		{
			name: "multiple entities sorted",
			text: "Xi Jinping discussed canola exports with the Ministry of Commerce",
			want: []string{"canola", "mofcom", "xi_jinping"},
		},
		{
			name: "second alias still matches",
			text: "Michael Kovrig returned to Canada in 2021",
			want: []string{"two_michaels"},
		},
		{
			name: "no matches",
			text: "municipal council approves transit expansion",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchSignalUsesAllSearchableText(t *testing.T) {
	m := newMatcher(t)

	sig := &signal.Signal{
		Title:        signal.BilingualText{EN: "Export review announced"},
		Implications: signal.BilingualText{EN: "Possible impact on rare earth supply chains"},
	}
	m.MatchSignal(sig)
	if !reflect.DeepEqual(sig.EntityIDs, []string{"rare_earths"}) {
		t.Fatalf("EntityIDs = %v, want [rare_earths]", sig.EntityIDs)
	}
}

func TestBuildDirectory(t *testing.T) {
	m := newMatcher(t)

	signals := []*signal.Signal{
		{EntityIDs: []string{"huawei", "csis"}},
		{EntityIDs: []string{"huawei"}},
		{EntityIDs: []string{"canola"}},
	}

	dir := m.BuildDirectory(signals)
	if len(dir) != 3 {
		t.Fatalf("directory has %d entries, want 3", len(dir))
	}

	top := dir[0]
	if top.ID != "huawei" || top.Mentions != 2 {
		t.Fatalf("top entry = %+v, want huawei with 2 mentions", top)
	}
	if top.Name.EN != "Huawei" || top.Name.ZH != "华为" {
		t.Errorf("huawei display name = %+v", top.Name)
	}
	if top.Type != "org" {
		t.Errorf("huawei type = %q, want org", top.Type)
	}
	if top.Description.EN != "Mentioned in 2 signal(s) today." {
		t.Errorf("huawei description = %q", top.Description.EN)
	}
	if top.Description.ZH != "今日在2条信号中被提及。" {
		t.Errorf("huawei description zh = %q", top.Description.ZH)
	}

	// Single-mention ties come back in ID order.
	if dir[1].ID != "canola" || dir[2].ID != "csis" {
		t.Errorf("tie order = %q, %q; want canola, csis", dir[1].ID, dir[2].ID)
	}
	if dir[1].Type != "commodity" {
		t.Errorf("canola type = %q, want commodity", dir[1].Type)
	}
	if dir[2].Type != "institution" {
		t.Errorf("csis type = %q, want institution", dir[2].Type)
	}
}

func TestDisplayNameFallsBackToID(t *testing.T) {
	kw := config.DefaultKeywords()
	kw.Entities["aiib"] = config.LangKeywords{EN: []string{"AIIB"}}
	m := NewMatcher(kw)

	dir := m.BuildDirectory([]*signal.Signal{{EntityIDs: []string{"aiib"}}})
	if len(dir) != 1 {
		t.Fatalf("directory = %+v, want one entry", dir)
	}
	if dir[0].Name.EN != "AIIB" {
		t.Errorf("Name.EN = %q, want AIIB", dir[0].Name.EN)
	}
	// No Chinese alias configured: the id stands in.
	if dir[0].Name.ZH != "aiib" {
		t.Errorf("Name.ZH = %q, want aiib", dir[0].Name.ZH)
	}
}

func TestBuildDirectoryEmpty(t *testing.T) {
	m := newMatcher(t)
	if dir := m.BuildDirectory(nil); len(dir) != 0 {
		t.Fatalf("directory = %v, want empty", dir)
	}
}
