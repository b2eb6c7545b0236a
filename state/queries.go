package state

import (
	"slices"

	. "github.com/redexp/familychart/types"
)

func (tree *FamilyTree) Person(id int) (*Person, bool) {
	return tree.persons.Get(id)
}

func (tree *FamilyTree) Marriage(id int) (*Marriage, bool) {
	return tree.marriages.Get(id)
}

func (tree *FamilyTree) Spot(id int) (*Spot, bool) {
	return tree.spots.Get(id)
}

func (tree *FamilyTree) marriageRef(id *int) (*Marriage, bool) {
	if id == nil {
		return nil, false
	}

	return tree.Marriage(*id)
}

func (tree *FamilyTree) ParentMarriage(personId int) (*Marriage, bool) {
	person, ok := tree.Person(personId)

	if !ok {
		return nil, false
	}

	return tree.marriageRef(person.ParentMarriageId)
}

func (tree *FamilyTree) AdoptedParentMarriage(personId int) (*Marriage, bool) {
	person, ok := tree.Person(personId)

	if !ok {
		return nil, false
	}

	return tree.marriageRef(person.AdoptedParentMarriageId)
}

// Marriages returns the unions the person is a spouse of.
func (tree *FamilyTree) Marriages(personId int) (list []*Marriage) {
	person, ok := tree.Person(personId)

	if !ok {
		return
	}

	for _, id := range person.MarriageIds {
		m, ok := tree.Marriage(id)

		if ok {
			list = append(list, m)
		}
	}

	return
}

func (tree *FamilyTree) findPersons(ids []int) (list []*Person) {
	for _, id := range ids {
		p, ok := tree.Person(id)

		if ok {
			list = append(list, p)
		}
	}

	return
}

func (tree *FamilyTree) SpousesOf(marriageId int) []*Person {
	m, ok := tree.Marriage(marriageId)

	if !ok {
		return nil
	}

	return tree.findPersons(m.ParentsIds)
}

func (tree *FamilyTree) ChildrenOf(marriageId int) []*Person {
	m, ok := tree.Marriage(marriageId)

	if !ok {
		return nil
	}

	return tree.findPersons(m.ChildrenIds)
}

func (tree *FamilyTree) AdoptedChildrenOf(marriageId int) []*Person {
	m, ok := tree.Marriage(marriageId)

	if !ok {
		return nil
	}

	return tree.findPersons(m.AdoptedChildrenIds)
}

func (tree *FamilyTree) Parents(personId int) []*Person {
	m, ok := tree.ParentMarriage(personId)

	if !ok {
		return nil
	}

	return tree.findPersons(m.ParentsIds)
}

func (tree *FamilyTree) AdoptedParents(personId int) []*Person {
	m, ok := tree.AdoptedParentMarriage(personId)

	if !ok {
		return nil
	}

	return tree.findPersons(m.ParentsIds)
}

// AllParentsIds lists biological then adoptive parent ids.
func (tree *FamilyTree) AllParentsIds(personId int) (ids []int) {
	if m, ok := tree.ParentMarriage(personId); ok {
		ids = append(ids, m.ParentsIds...)
	}

	if m, ok := tree.AdoptedParentMarriage(personId); ok {
		ids = append(ids, m.ParentsIds...)
	}

	return
}

func (tree *FamilyTree) Children(personId int) (list []*Person) {
	for _, m := range tree.Marriages(personId) {
		list = append(list, tree.findPersons(m.ChildrenIds)...)
	}

	return
}

func (tree *FamilyTree) AdoptedChildren(personId int) (list []*Person) {
	for _, m := range tree.Marriages(personId) {
		list = append(list, tree.findPersons(m.AdoptedChildrenIds)...)
	}

	return
}

// Siblings returns the other children of the person's biological parent union.
func (tree *FamilyTree) Siblings(personId int) (list []*Person) {
	m, ok := tree.ParentMarriage(personId)

	if !ok {
		return
	}

	for _, p := range tree.findPersons(m.ChildrenIds) {
		if p.Id != personId {
			list = append(list, p)
		}
	}

	return
}

func (tree *FamilyTree) Spouses(personId int) (list []*Person) {
	for _, m := range tree.Marriages(personId) {
		for _, p := range tree.findPersons(m.ParentsIds) {
			if p.Id != personId && !slices.Contains(list, p) {
				list = append(list, p)
			}
		}
	}

	return
}

// ShareMarriage reports whether a and b are spouses in one union.
func (tree *FamilyTree) ShareMarriage(a, b int) bool {
	for _, m := range tree.Marriages(a) {
		if m.HasSpouse(b) {
			return true
		}
	}

	return false
}

// AllDescendants walks biological and adoptive children breadth first.
// Every descendant is returned once, even for malformed cyclic data.
func (tree *FamilyTree) AllDescendants(personId int) (list []*Person) {
	if _, ok := tree.Person(personId); !ok {
		return
	}

	queue := []int{personId}
	checked := map[int]bool{personId: true}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, m := range tree.Marriages(id) {
			for _, childId := range m.AllChildrenIds() {
				if checked[childId] {
					continue
				}

				child, ok := tree.Person(childId)

				if !ok {
					continue
				}

				checked[childId] = true
				queue = append(queue, childId)
				list = append(list, child)
			}
		}
	}

	return
}

// IsAscendant searches upward from young through every parent edge and
// reports whether it reaches elder or any child sharing a parent union with elder.
func (tree *FamilyTree) IsAscendant(elderId, youngId int) bool {
	elder, ok := tree.Person(elderId)

	if !ok {
		return false
	}

	if _, ok = tree.Person(youngId); !ok {
		return false
	}

	target := map[int]bool{}

	if m, ok := tree.marriageRef(elder.ParentMarriageId); ok {
		for _, id := range m.AllChildrenIds() {
			target[id] = true
		}
	} else {
		target[elder.Id] = true
	}

	if m, ok := tree.marriageRef(elder.AdoptedParentMarriageId); ok {
		for _, id := range m.AllChildrenIds() {
			target[id] = true
		}
	}

	queue := []int{youngId}
	checked := map[int]bool{youngId: true}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if target[id] {
			return true
		}

		for _, parentId := range tree.AllParentsIds(id) {
			if checked[parentId] {
				continue
			}

			checked[parentId] = true
			queue = append(queue, parentId)
		}
	}

	return false
}

func (tree *FamilyTree) PersonAt(pos Pos) (*Person, bool) {
	for person := range tree.persons.Values() {
		if person.Rect().Contains(pos) {
			return person, true
		}
	}

	return nil, false
}

func (tree *FamilyTree) SpotAt(pos Pos, scale float64) (*Spot, bool) {
	for spot := range tree.spots.Values() {
		if spot.Contains(pos, scale) {
			return spot, true
		}
	}

	return nil, false
}
