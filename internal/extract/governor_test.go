package extract

import (
	"testing"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

func TestGovernorCapsAndRenumbers(t *testing.T) {
	var res records.Result
	res.Domain = records.DomainStoryboard
	for i := 1; i <= 5; i++ {
		res.Storyboard = append(res.Storyboard, records.NewStoryboardShot(i, "shot description"))
	}
	res.Storyboard[1].Description = "----"

	g := NewGovernor(GovernorConfig{MaxItems: 3, DropFormattingJunk: true})
	got := g.Apply(res)

	if len(got.Storyboard) != 3 {
		t.Fatalf("got %d shots, want 3", len(got.Storyboard))
	}
	for i, s := range got.Storyboard {
		if s.Number != i+1 {
			t.Errorf("shot %d numbered %d", i, s.Number)
		}
	}
}

func TestGovernorDropsFormattingJunk(t *testing.T) {
	res := records.Result{
		Domain: records.DomainProps,
		Props: []records.Prop{
			records.NewProp("***"),
			records.NewProp("revolver"),
		},
	}
	got := NewGovernor(DefaultGovernorConfig()).Apply(res)
	if len(got.Props) != 1 || got.Props[0].Name != "revolver" {
		t.Fatalf("got %+v, want single revolver", got.Props)
	}
}

func TestGovernorUnlimitedWhenZero(t *testing.T) {
	res := records.Result{Domain: records.DomainScript}
	for i := 0; i < 500; i++ {
		res.Script = append(res.Script, records.ScriptElement{Type: records.Action, Text: "beat"})
	}
	got := NewGovernor(GovernorConfig{MaxItems: 0}).Apply(res)
	if len(got.Script) != 500 {
		t.Fatalf("got %d elements, want 500", len(got.Script))
	}
}
