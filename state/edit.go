package state

import (
	. "github.com/redexp/familychart/types"
)

// MovePerson shifts the person by delta. With descendants every descendant
// moves too, except that persons fixed vertically only move horizontally.
func (tree *FamilyTree) MovePerson(id int, delta Pos, withDescendants bool) bool {
	person, ok := tree.Person(id)

	if !ok {
		return false
	}

	person.Position = person.Position.Add(delta)

	if withDescendants {
		for _, desc := range tree.AllDescendants(id) {
			if desc.FixedVertically {
				desc.Position = desc.Position.Move(delta.X, 0)
			} else {
				desc.Position = desc.Position.Add(delta)
			}
		}
	}

	tree.UpdateBounds()

	return true
}

// SetPersonPosition places the person with its top-left corner at pos.
func (tree *FamilyTree) SetPersonPosition(id int, pos Pos) bool {
	person, ok := tree.Person(id)

	if !ok {
		return false
	}

	return tree.MovePerson(id, person.Position.Distance(pos), false)
}

// Merge adds a copy of other next to the current content. Ids of other are
// shifted past the current counters and positions by offset.
func (tree *FamilyTree) Merge(other *FamilyTree, offset Pos) {
	other = other.Clone()

	personOffset := tree.nextPersonId
	marriageOffset := tree.nextMarriageId
	spotOffset := tree.nextSpotId

	for person := range other.persons.Values() {
		person.addOffset(offset, personOffset, marriageOffset)
		tree.persons.Set(person.Id, person)
	}

	for m := range other.marriages.Values() {
		m.addOffset(personOffset, marriageOffset)
		tree.marriages.Set(m.Id, m)
	}

	for spot := range other.spots.Values() {
		spot.addOffset(offset, spotOffset)
		tree.spots.Set(spot.Id, spot)
	}

	tree.nextPersonId += other.nextPersonId
	tree.nextMarriageId += other.nextMarriageId
	tree.nextSpotId += other.nextSpotId

	tree.UpdateBounds()
}
