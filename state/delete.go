package state

import (
	"slices"
)

// DeleteRelation removes the first relation found between a and b, checked
// in the order spouse, sibling or parent through a's unions, then child of a.
func (tree *FamilyTree) DeleteRelation(a, b int) bool {
	if a == b {
		return false
	}

	pa, ok1 := tree.Person(a)
	pb, ok2 := tree.Person(b)

	if !ok1 || !ok2 {
		return false
	}

	for _, m := range tree.Marriages(a) {
		if m.HasSpouse(b) {
			m.DeleteSpouse(b)
			pb.DeleteMarriageId(m.Id)
			tree.dropIfDegenerate(m)
			return true
		}
	}

	for _, ref := range []*int{pa.ParentMarriageId, pa.AdoptedParentMarriageId} {
		m, ok := tree.marriageRef(ref)

		if !ok {
			continue
		}

		if m.HasChild(b) || m.HasAdoptedChild(b) {
			tree.detachChild(m, pb)
			return true
		}

		if m.HasSpouse(b) {
			m.DeleteSpouse(b)
			pb.DeleteMarriageId(m.Id)
			tree.dropIfDegenerate(m)
			return true
		}
	}

	for _, ref := range []*int{pb.ParentMarriageId, pb.AdoptedParentMarriageId} {
		m, ok := tree.marriageRef(ref)

		if ok && m.HasSpouse(a) {
			tree.detachChild(m, pb)
			return true
		}
	}

	return false
}

// DeletePerson detaches the person from every union and removes it.
func (tree *FamilyTree) DeletePerson(id int) bool {
	person, ok := tree.Person(id)

	if !ok {
		return false
	}

	for _, mid := range slices.Clone(person.MarriageIds) {
		m, ok := tree.Marriage(mid)

		if !ok {
			continue
		}

		m.DeleteSpouse(id)
		m.DeleteChild(id)
		m.DeleteAdoptedChild(id)
		tree.dropIfDegenerate(m)
	}

	person.MarriageIds = []int{}

	for _, ref := range []*int{person.ParentMarriageId, person.AdoptedParentMarriageId} {
		if m, ok := tree.marriageRef(ref); ok {
			tree.detachChild(m, person)
		}
	}

	tree.persons.Delete(id)
	tree.UpdateBounds()

	return true
}

func (tree *FamilyTree) detachChild(m *Marriage, child *Person) {
	if child.HasParentMarriage(m.Id) {
		child.ParentMarriageId = nil
	}

	if child.HasAdoptedParentMarriage(m.Id) {
		child.AdoptedParentMarriageId = nil
	}

	m.DeleteChild(child.Id)
	m.DeleteAdoptedChild(child.Id)
	tree.dropIfDegenerate(m)
}

// dropIfDegenerate removes a union left with one participant or less and
// clears the reference the remaining participant holds to it.
func (tree *FamilyTree) dropIfDegenerate(m *Marriage) bool {
	if m.Participants() > 1 {
		return false
	}

	for _, id := range m.ParentsIds {
		if p, ok := tree.Person(id); ok {
			p.DeleteMarriageId(m.Id)
		}
	}

	for _, id := range m.AllChildrenIds() {
		p, ok := tree.Person(id)

		if !ok {
			continue
		}

		if p.HasParentMarriage(m.Id) {
			p.ParentMarriageId = nil
		}

		if p.HasAdoptedParentMarriage(m.Id) {
			p.AdoptedParentMarriageId = nil
		}
	}

	tree.marriages.Delete(m.Id)

	return true
}
