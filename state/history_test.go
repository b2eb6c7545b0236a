package state

import (
	"testing"

	. "github.com/redexp/familychart/types"
	. "github.com/redexp/familychart/utils"
)

func intHistory(size int) *History[*int] {
	return NewHistory(size, func() *int { return new(int) }, func(dst, src *int) { *dst = *src })
}

func TestHistoryRing(t *testing.T) {
	h := intHistory(3)
	h.Reset(P(0))

	if h.CanUndo() || h.CanRedo() {
		t.Fatal("fresh history can move")
	}

	for i := 1; i <= 3; i++ {
		h.Save(P(i))
	}

	expect := []int{2, 1}

	for _, value := range expect {
		state, ok := h.Undo()

		if !ok {
			t.Fatalf("Undo failed, want %d", value)
		}

		if *state != value {
			t.Errorf("Undo = %d, want %d", *state, value)
		}
	}

	if h.CanUndo() {
		t.Error("undo past the oldest kept state")
	}

	for _, value := range []int{2, 3} {
		state, ok := h.Redo()

		if !ok {
			t.Fatalf("Redo failed, want %d", value)
		}

		if *state != value {
			t.Errorf("Redo = %d, want %d", *state, value)
		}
	}

	if _, ok := h.Redo(); ok {
		t.Error("redo past the newest state")
	}
}

func TestHistorySaveDropsRedo(t *testing.T) {
	h := intHistory(5)
	h.Reset(P(0))
	h.Save(P(1))
	h.Save(P(2))
	h.Undo()
	h.Save(P(9))

	if h.CanRedo() {
		t.Error("redo after save")
	}

	state, _ := h.Undo()

	if *state != 1 {
		t.Errorf("Undo = %d", *state)
	}

	state, _ = h.Undo()

	if *state != 0 || h.CanUndo() {
		t.Errorf("Undo = %d", *state)
	}
}

func TestHistoryOfTrees(t *testing.T) {
	tree := createTree(2)
	h := NewHistory(4, NewFamilyTree, func(dst, src *FamilyTree) { dst.Load(src) })
	h.Reset(tree)

	tree.MakeSpouses(0, 1)
	h.Save(tree)

	tree.AddPerson(Pos{})
	h.Save(tree)

	state, ok := h.Undo()

	if !ok {
		t.Fatal("Undo failed")
	}

	if state.PersonCount() != 2 || state.MarriageCount() != 1 {
		t.Fatalf("Undo = %d persons", state.PersonCount())
	}

	tree.Load(state)
	tree.DeletePerson(0)

	if state.PersonCount() != 2 {
		t.Error("history slot shares state with the tree")
	}
}
