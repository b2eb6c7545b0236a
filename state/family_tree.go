package state

import (
	"iter"

	. "github.com/redexp/familychart/types"
)

const DefaultTitle = "家系図"

type FamilyTree struct {
	persons   *Registry[*Person]
	marriages *Registry[*Marriage]
	spots     *Registry[*Spot]

	title string

	nextPersonId   int
	nextMarriageId int
	nextSpotId     int

	bounds Rect
}

// Sizer measures the rendered labels of persons and spots.
type Sizer interface {
	PersonSize(person *Person) (width, height float64)
	SpotSize(spot *Spot) (width, height float64)
}

func NewFamilyTree() *FamilyTree {
	return &FamilyTree{
		persons:   NewRegistry[*Person](),
		marriages: NewRegistry[*Marriage](),
		spots:     NewRegistry[*Spot](),
		title:     DefaultTitle,
	}
}

func (tree *FamilyTree) Clone() *FamilyTree {
	clone := NewFamilyTree()
	clone.Load(tree)

	return clone
}

// Load replaces the whole content of the tree with a deep copy of src.
func (tree *FamilyTree) Load(src *FamilyTree) {
	if tree == src {
		return
	}

	tree.persons = src.persons.clone((*Person).Clone)
	tree.marriages = src.marriages.clone((*Marriage).Clone)
	tree.spots = src.spots.clone((*Spot).Clone)
	tree.title = src.title
	tree.nextPersonId = src.nextPersonId
	tree.nextMarriageId = src.nextMarriageId
	tree.nextSpotId = src.nextSpotId
	tree.bounds = src.bounds
}

func (tree *FamilyTree) Title() string {
	return tree.title
}

func (tree *FamilyTree) SetTitle(title string) {
	tree.title = title
}

func (tree *FamilyTree) NextPersonId() int {
	return tree.nextPersonId
}

func (tree *FamilyTree) NextMarriageId() int {
	return tree.nextMarriageId
}

func (tree *FamilyTree) NextSpotId() int {
	return tree.nextSpotId
}

func (tree *FamilyTree) PersonCount() int {
	return tree.persons.Len()
}

func (tree *FamilyTree) MarriageCount() int {
	return tree.marriages.Len()
}

func (tree *FamilyTree) SpotCount() int {
	return tree.spots.Len()
}

func (tree *FamilyTree) AllPersons() iter.Seq[*Person] {
	return tree.persons.Values()
}

func (tree *FamilyTree) AllMarriages() iter.Seq[*Marriage] {
	return tree.marriages.Values()
}

func (tree *FamilyTree) AllSpots() iter.Seq[*Spot] {
	return tree.spots.Values()
}

func (tree *FamilyTree) PersonIds() []int {
	return tree.persons.Ids()
}

func (tree *FamilyTree) MarriageIds() []int {
	return tree.marriages.Ids()
}

func (tree *FamilyTree) SpotIds() []int {
	return tree.spots.Ids()
}

// Bounds is the box around all person boxes.
func (tree *FamilyTree) Bounds() Rect {
	return tree.bounds
}

func (tree *FamilyTree) UpdateBounds() {
	first := true
	tree.bounds = Rect{}

	for person := range tree.persons.Values() {
		if first {
			tree.bounds = person.Rect()
			first = false
			continue
		}

		tree.bounds = tree.bounds.Union(person.Rect())
	}
}

// Resize refreshes the cached label sizes.
func (tree *FamilyTree) Resize(sizer Sizer) {
	for person := range tree.persons.Values() {
		person.Width, person.Height = sizer.PersonSize(person)
	}

	for spot := range tree.spots.Values() {
		spot.Width, spot.Height = sizer.SpotSize(spot)
	}

	tree.UpdateBounds()
}

func (tree *FamilyTree) AddPerson(pos Pos) *Person {
	person := NewPerson(tree.nextPersonId, pos)
	tree.nextPersonId++
	tree.persons.Set(person.Id, person)
	tree.UpdateBounds()

	return person
}

// UpdatePerson overwrites the editable attributes and keeps id, relations and position.
func (tree *FamilyTree) UpdatePerson(id int, data PersonData) bool {
	person, ok := tree.Person(id)

	if !ok {
		return false
	}

	data = data.Clone()
	FormatPersonData(&data)

	data.Id = person.Id
	data.ParentMarriageId = person.ParentMarriageId
	data.AdoptedParentMarriageId = person.AdoptedParentMarriageId
	data.MarriageIds = person.MarriageIds
	data.Position = person.Position

	person.PersonData = data

	return true
}

func (tree *FamilyTree) AddSpot(text string, pos Pos) *Spot {
	spot := &Spot{
		SpotData: SpotData{
			Id:       tree.nextSpotId,
			Text:     text,
			Position: pos,
		},
	}

	tree.nextSpotId++
	tree.spots.Set(spot.Id, spot)

	return spot
}

func (tree *FamilyTree) DeleteSpot(id int) bool {
	return tree.spots.Delete(id)
}

func (tree *FamilyTree) SetSpotText(id int, text string) bool {
	spot, ok := tree.Spot(id)

	if ok {
		spot.Text = text
	}

	return ok
}

func (tree *FamilyTree) MoveSpot(id int, pos Pos) bool {
	spot, ok := tree.Spot(id)

	if ok {
		spot.Position = pos
	}

	return ok
}

func (tree *FamilyTree) newMarriage(parents []int, children []int, adopted []int) *Marriage {
	m := NewMarriage(tree.nextMarriageId, parents, children, adopted)
	tree.nextMarriageId++
	tree.marriages.Set(m.Id, m)

	return m
}
