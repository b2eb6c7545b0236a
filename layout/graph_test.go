package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
)

type boxSizer struct{}

func (boxSizer) PersonSize(*state.Person) (float64, float64) {
	return 40, 20
}

func (boxSizer) SpotSize(*state.Spot) (float64, float64) {
	return 60, 20
}

func familyTree(t *testing.T) *state.FamilyTree {
	t.Helper()

	tree := state.NewFamilyTree()
	tree.AddPerson(Pos{X: 0, Y: 0})
	tree.AddPerson(Pos{X: 100, Y: 0})
	tree.AddPerson(Pos{X: 50, Y: 100})

	if !tree.MakeChild(0, 2) || !tree.MakeChild(1, 2) {
		t.Fatal("relations rejected")
	}

	tree.Resize(boxSizer{})

	return tree
}

func TestGraphFamily(t *testing.T) {
	tree := familyTree(t)
	tree.AddPerson(Pos{X: 200, Y: 100})
	tree.Resize(boxSizer{})

	if !tree.MakeAdoptedChild(0, 3) {
		t.Fatal("adoption rejected")
	}

	ids := tree.MarriageIds()

	if len(ids) != 2 {
		t.Fatalf("unions = %v", ids)
	}

	f, ok := GraphFamily(tree, ids[0])

	if !ok {
		t.Fatal("family not found")
	}

	if len(f.Spouses) != 2 || len(f.Children) != 1 || f.BioCount() != 1 {
		t.Errorf("family = %+v", f)
	}

	f, _ = GraphFamily(tree, ids[1])

	if len(f.Spouses) != 1 || len(f.Children) != 1 || f.BioCount() != 0 {
		t.Fatalf("adoptive family = %+v", f)
	}

	if c := f.Children[0]; c.Id != 3 || !c.Adopted || c.BothParents {
		t.Errorf("adopted child = %+v", c)
	}

	if _, ok := GraphFamily(tree, 99); ok {
		t.Error("unknown union resolved")
	}
}

func TestDraw(t *testing.T) {
	tree := familyTree(t)

	want := []Line{
		HLine(10, 47, 93, true, SpouseLine),
		VLine(70, 10, 93, false, DropLine),
	}

	if lines := Draw(tree, DefaultStyle()); !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %+v", lines)
	}
}

func TestRenderSvg(t *testing.T) {
	tree := familyTree(t)
	tree.SetTitle("A & B")

	p, _ := tree.Person(0)
	p.Name.GivenName = "Ann"

	style := DefaultStyle()
	svg := RenderSvg(tree, NewLabeler(style, nil))

	for _, s := range []string{
		"<svg ",
		"<title>A &amp; B</title>",
		`class="spouse"`,
		`class="drop"`,
		">Ann</text>",
		`writing-mode="vertical-rl"`,
	} {
		if !strings.Contains(svg, s) {
			t.Errorf("svg has no %s", s)
		}
	}

	if n := strings.Count(svg, `class="spouse"`); n != 2 {
		t.Errorf("spouse strokes = %d", n)
	}
}

func TestDecodeStyle(t *testing.T) {
	style := DefaultStyle()

	err := DecodeStyle(map[string]any{
		"margin":   30,
		"vertical": false,
		"nameFont": map[string]any{
			"size": 12,
		},
	}, &style)

	if err != nil {
		t.Fatal(err)
	}

	if style.Margin != 30 || style.Vertical || style.NameFont.Size != 12 {
		t.Errorf("style = %+v", style)
	}

	if style.Offset != 7 || style.NameFont.Family != "Yu Mincho" {
		t.Errorf("untouched fields changed: %+v", style)
	}
}
