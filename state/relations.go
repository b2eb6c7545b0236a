package state

import (
	"slices"

	. "github.com/redexp/familychart/utils"
)

// MakeSpouses creates a new union of a and b unless they already share one.
func (tree *FamilyTree) MakeSpouses(a, b int) bool {
	if a == b {
		return false
	}

	pa, ok1 := tree.Person(a)
	pb, ok2 := tree.Person(b)

	if !ok1 || !ok2 || tree.ShareMarriage(a, b) {
		return false
	}

	m := tree.newMarriage([]int{a, b}, nil, nil)
	pa.AddMarriageId(m.Id)
	pb.AddMarriageId(m.Id)

	return true
}

func (tree *FamilyTree) MakeChild(parentId, childId int) bool {
	return tree.makeChild(parentId, childId, false)
}

func (tree *FamilyTree) MakeAdoptedChild(parentId, childId int) bool {
	return tree.makeChild(parentId, childId, true)
}

func (tree *FamilyTree) makeChild(parentId, childId int, adopted bool) bool {
	if parentId == childId {
		return false
	}

	parent, ok1 := tree.Person(parentId)
	child, ok2 := tree.Person(childId)

	if !ok1 || !ok2 || tree.IsAscendant(childId, parentId) {
		return false
	}

	ownRef, otherRef := child.ParentMarriageId, child.AdoptedParentMarriageId

	if adopted {
		ownRef, otherRef = otherRef, ownRef
	}

	if other, ok := tree.marriageRef(otherRef); ok && other.HasSpouse(parentId) {
		return false
	}

	attach := func(m *Marriage) {
		if adopted {
			m.AddAdoptedChild(childId)
			child.SetAdoptedParentMarriage(m.Id)
		} else {
			m.AddChild(childId)
			child.SetParentMarriage(m.Id)
		}
	}

	current, ok := tree.marriageRef(ownRef)

	if !ok {
		for _, m := range tree.Marriages(parentId) {
			if len(m.ParentsIds) == 1 {
				attach(m)
				return true
			}
		}

		m := tree.newMarriage([]int{parentId}, nil, nil)
		parent.AddMarriageId(m.Id)
		attach(m)

		return true
	}

	if current.HasSpouse(parentId) || current.IsFull() {
		return false
	}

	spouses := append(slices.Clone(current.ParentsIds), parentId)

	for _, m := range tree.Marriages(parentId) {
		if m.Id != current.Id && SameElements(spouses, m.ParentsIds) {
			tree.absorb(current, m)
			return true
		}
	}

	current.AddSpouse(parentId)
	parent.AddMarriageId(current.Id)

	return true
}

// MakeBrother puts a and b under one biological parent union.
func (tree *FamilyTree) MakeBrother(a, b int) bool {
	if a == b {
		return false
	}

	pa, ok1 := tree.Person(a)
	pb, ok2 := tree.Person(b)

	if !ok1 || !ok2 || tree.IsAscendant(a, b) || tree.IsAscendant(b, a) {
		return false
	}

	ma, okA := tree.marriageRef(pa.ParentMarriageId)
	mb, okB := tree.marriageRef(pb.ParentMarriageId)

	switch {
	case !okA && !okB:
		m := tree.newMarriage(nil, []int{a, b}, nil)
		pa.SetParentMarriage(m.Id)
		pb.SetParentMarriage(m.Id)

	case !okA:
		if mb.HasSpouse(a) {
			return false
		}

		mb.AddChild(a)
		pa.SetParentMarriage(mb.Id)

	case !okB:
		if ma.HasSpouse(b) {
			return false
		}

		ma.AddChild(b)
		pb.SetParentMarriage(ma.Id)

	default:
		if ma.Id == mb.Id {
			return false
		}

		parents := Uniq(slices.Concat(ma.ParentsIds, mb.ParentsIds))

		if len(parents) > 2 {
			return false
		}

		tree.absorb(mb, ma)
	}

	return true
}

// absorb moves every spouse and child of from into into and removes from.
func (tree *FamilyTree) absorb(from, into *Marriage) {
	for _, id := range from.ParentsIds {
		spouse, ok := tree.Person(id)

		if !ok {
			continue
		}

		spouse.DeleteMarriageId(from.Id)

		if into.AddSpouse(id) || into.HasSpouse(id) {
			spouse.AddMarriageId(into.Id)
		}
	}

	for _, id := range from.ChildrenIds {
		child, ok := tree.Person(id)

		if !ok {
			continue
		}

		if into.HasAdoptedChild(id) {
			into.DeleteAdoptedChild(id)
			child.AdoptedParentMarriageId = nil
		}

		into.AddChild(id)
		child.SetParentMarriage(into.Id)
	}

	for _, id := range from.AdoptedChildrenIds {
		child, ok := tree.Person(id)

		if !ok {
			continue
		}

		if into.HasChild(id) {
			child.AdoptedParentMarriageId = nil
			continue
		}

		into.AddAdoptedChild(id)
		child.SetAdoptedParentMarriage(into.Id)
	}

	tree.marriages.Delete(from.Id)
}
