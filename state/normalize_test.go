package state

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"

	. "github.com/redexp/familychart/types"
)

func dense(n int) []int {
	res := make([]int, n)

	for i := range res {
		res[i] = i
	}

	return res
}

func TestNormalizeDensity(t *testing.T) {
	tree := createTree(5)

	tree.MakeSpouses(0, 1)
	tree.MakeChild(0, 2)
	tree.MakeChild(1, 2)
	tree.MakeChild(3, 4)
	tree.AddSpot("a", Pos{})
	tree.AddSpot("b", Pos{})
	tree.DeleteSpot(0)
	tree.DeletePerson(0)

	tree.Normalize()

	if ids := tree.PersonIds(); !reflect.DeepEqual(ids, dense(4)) {
		t.Errorf("PersonIds = %v", ids)
	}

	if ids := tree.MarriageIds(); !reflect.DeepEqual(ids, dense(2)) {
		t.Errorf("MarriageIds = %v", ids)
	}

	if ids := tree.SpotIds(); !reflect.DeepEqual(ids, dense(1)) {
		t.Errorf("SpotIds = %v", ids)
	}

	if tree.NextPersonId() != 4 || tree.NextMarriageId() != 2 || tree.NextSpotId() != 1 {
		t.Errorf("counters = %d %d %d", tree.NextPersonId(), tree.NextMarriageId(), tree.NextSpotId())
	}

	p, _ := tree.Person(3)

	if p.Position.X != 400 || p.ParentMarriageId == nil || *p.ParentMarriageId != 1 {
		t.Errorf("person 3 = %+v", p.PersonData)
	}

	checkIntegrity(t, tree)
}

func TestNormalizeIdempotent(t *testing.T) {
	tree := createTree(6)

	tree.MakeChild(0, 1)
	tree.MakeChild(0, 2)
	tree.MakeAdoptedChild(3, 4)
	tree.DeletePerson(5)
	tree.DeletePerson(3)

	tree.Normalize()
	once := tree.Document()

	tree.Normalize()

	if !reflect.DeepEqual(once, tree.Document()) {
		t.Error("second Normalize changed the graph")
	}
}

func TestNormalizeSortsChildren(t *testing.T) {
	tree := createTree(4)

	tree.MakeChild(0, 1)
	tree.MakeChild(0, 2)
	tree.MakeChild(0, 3)

	p, _ := tree.Person(3)
	p.Position.X = 150

	tree.Normalize()

	m, _ := tree.Marriage(0)

	if !reflect.DeepEqual(m.ChildrenIds, []int{2, 3, 1}) {
		t.Errorf("ChildrenIds = %v", m.ChildrenIds)
	}
}

func TestEraseDegeneracy(t *testing.T) {
	tree := createTree(2)
	tree.MakeChild(0, 1)

	m, _ := tree.Marriage(0)
	m.ChildrenIds = append(m.ChildrenIds, 1, 1)

	p, _ := tree.Person(0)
	p.MarriageIds = append(p.MarriageIds, 0)

	tree.EraseDegeneracy()

	if !reflect.DeepEqual(m.ChildrenIds, []int{1}) || !reflect.DeepEqual(p.MarriageIds, []int{0}) {
		t.Errorf("ChildrenIds = %v, MarriageIds = %v", m.ChildrenIds, p.MarriageIds)
	}
}

func TestRandomEdits(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	tree := createTree(12)

	for step := range 600 {
		ids := tree.PersonIds()
		a := ids[r.IntN(len(ids))]
		b := ids[r.IntN(len(ids))]
		before := tree.Document()

		var ok bool

		switch r.IntN(7) {
		case 0:
			ok = tree.MakeSpouses(a, b)
		case 1, 2:
			ok = tree.MakeChild(a, b)
		case 3:
			ok = tree.MakeAdoptedChild(a, b)
		case 4:
			ok = tree.MakeBrother(a, b)
		case 5:
			ok = tree.DeleteRelation(a, b)
		case 6:
			if r.IntN(4) == 0 {
				tree.DeletePerson(a)
				tree.AddPerson(Pos{X: float64(step)})
				ok = true
			}
		}

		if !ok && !reflect.DeepEqual(before, tree.Document()) {
			t.Fatalf("step %d: failed edit changed the graph", step)
		}

		checkIntegrity(t, tree)

		if t.Failed() {
			t.Fatalf("step %d", step)
		}
	}

	tree.Normalize()
	checkIntegrity(t, tree)

	if ids := tree.PersonIds(); !slices.Equal(ids, dense(tree.PersonCount())) {
		t.Errorf("PersonIds = %v", ids)
	}
}
