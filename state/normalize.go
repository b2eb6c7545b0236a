package state

import (
	"cmp"
	"slices"
)

// Normalize orders every union's children right to left and compacts all ids
// into [0,N) by insertion order. References that no longer resolve are dropped.
func (tree *FamilyTree) Normalize() {
	for m := range tree.marriages.Values() {
		children := tree.findPersons(m.ChildrenIds)

		slices.SortStableFunc(children, func(a, b *Person) int {
			return cmp.Compare(b.CenterX(), a.CenterX())
		})

		m.ChildrenIds = make([]int, len(children))

		for i, child := range children {
			m.ChildrenIds[i] = child.Id
		}
	}

	personRules := rules(tree.persons.Ids())
	marriageRules := rules(tree.marriages.Ids())
	spotRules := rules(tree.spots.Ids())

	for person := range tree.persons.Values() {
		person.normalizeId(personRules, marriageRules)
	}

	for m := range tree.marriages.Values() {
		m.normalizeId(personRules, marriageRules)
	}

	for spot := range tree.spots.Values() {
		spot.Id = spotRules[spot.Id]
	}

	tree.persons.rekey(func(p *Person) int { return p.Id })
	tree.marriages.rekey(func(m *Marriage) int { return m.Id })
	tree.spots.rekey(func(s *Spot) int { return s.Id })

	tree.nextPersonId = tree.persons.Len()
	tree.nextMarriageId = tree.marriages.Len()
	tree.nextSpotId = tree.spots.Len()
}

// EraseDegeneracy removes duplicated ids from every list.
func (tree *FamilyTree) EraseDegeneracy() {
	for person := range tree.persons.Values() {
		person.eraseDegeneracy()
	}

	for m := range tree.marriages.Values() {
		m.eraseDegeneracy()
	}
}

// reconcile makes both sides of every person-union link agree. A link known
// only to one side is dropped, unions over two spouses keep the first two,
// and unions left degenerate are removed.
func (tree *FamilyTree) reconcile() {
	for m := range tree.marriages.Values() {
		if len(m.ParentsIds) > 2 {
			m.ParentsIds = m.ParentsIds[:2]
		}
	}

	for person := range tree.persons.Values() {
		if m, ok := tree.marriageRef(person.ParentMarriageId); !ok || !m.HasChild(person.Id) {
			person.ParentMarriageId = nil
		}

		if m, ok := tree.marriageRef(person.AdoptedParentMarriageId); !ok || !m.HasAdoptedChild(person.Id) {
			person.AdoptedParentMarriageId = nil
		}

		person.MarriageIds = slices.DeleteFunc(person.MarriageIds, func(id int) bool {
			m, ok := tree.Marriage(id)
			return !ok || !m.HasSpouse(person.Id)
		})
	}

	for m := range tree.marriages.Values() {
		m.ParentsIds = slices.DeleteFunc(m.ParentsIds, func(id int) bool {
			p, ok := tree.Person(id)
			return !ok || !slices.Contains(p.MarriageIds, m.Id)
		})

		m.ChildrenIds = slices.DeleteFunc(m.ChildrenIds, func(id int) bool {
			p, ok := tree.Person(id)
			return !ok || !p.HasParentMarriage(m.Id)
		})

		m.AdoptedChildrenIds = slices.DeleteFunc(m.AdoptedChildrenIds, func(id int) bool {
			p, ok := tree.Person(id)
			return !ok || !p.HasAdoptedParentMarriage(m.Id)
		})
	}

	for _, id := range tree.marriages.Ids() {
		m, _ := tree.Marriage(id)
		tree.dropIfDegenerate(m)
	}
}

func rules(ids []int) map[int]int {
	res := make(map[int]int, len(ids))

	for i, id := range ids {
		res[id] = i
	}

	return res
}
