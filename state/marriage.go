package state

import (
	"slices"

	. "github.com/redexp/familychart/utils"
)

type MarriageData struct {
	Id                 int   `json:"id" validate:"gte=0"`
	ParentsIds         []int `json:"parentsIds" validate:"max=2,dive,gte=0"`
	ChildrenIds        []int `json:"childrenIds" validate:"dive,gte=0"`
	AdoptedChildrenIds []int `json:"adoptedChildrenIds" validate:"dive,gte=0"`
}

func (data MarriageData) Clone() MarriageData {
	data.ParentsIds = cloneList(data.ParentsIds)
	data.ChildrenIds = cloneList(data.ChildrenIds)
	data.AdoptedChildrenIds = cloneList(data.AdoptedChildrenIds)
	return data
}

// Marriage is a union of up to two spouses with its biological and adopted children.
type Marriage struct {
	MarriageData
}

func NewMarriage(id int, parents []int, children []int, adopted []int) *Marriage {
	return &Marriage{
		MarriageData: MarriageData{
			Id:                 id,
			ParentsIds:         cloneList(parents),
			ChildrenIds:        cloneList(children),
			AdoptedChildrenIds: cloneList(adopted),
		},
	}
}

func (m *Marriage) Clone() *Marriage {
	return &Marriage{
		MarriageData: m.MarriageData.Clone(),
	}
}

func (m *Marriage) HasSpouse(id int) bool {
	return slices.Contains(m.ParentsIds, id)
}

func (m *Marriage) HasChild(id int) bool {
	return slices.Contains(m.ChildrenIds, id)
}

func (m *Marriage) HasAdoptedChild(id int) bool {
	return slices.Contains(m.AdoptedChildrenIds, id)
}

func (m *Marriage) IsFull() bool {
	return len(m.ParentsIds) >= 2
}

// AddSpouse ignores duplicates and never grows the spouse set past two.
func (m *Marriage) AddSpouse(id int) bool {
	if m.HasSpouse(id) || m.IsFull() {
		return false
	}

	m.ParentsIds = append(m.ParentsIds, id)

	return true
}

func (m *Marriage) DeleteSpouse(id int) {
	m.ParentsIds = Without(m.ParentsIds, id)
}

func (m *Marriage) AddChild(id int) {
	m.ChildrenIds = AppendUniq(m.ChildrenIds, id)
}

func (m *Marriage) DeleteChild(id int) {
	m.ChildrenIds = Without(m.ChildrenIds, id)
}

func (m *Marriage) AddAdoptedChild(id int) {
	m.AdoptedChildrenIds = AppendUniq(m.AdoptedChildrenIds, id)
}

func (m *Marriage) DeleteAdoptedChild(id int) {
	m.AdoptedChildrenIds = Without(m.AdoptedChildrenIds, id)
}

func (m *Marriage) AllChildrenIds() []int {
	return slices.Concat(m.ChildrenIds, m.AdoptedChildrenIds)
}

// Participants counts spouses plus all children.
func (m *Marriage) Participants() int {
	return len(m.ParentsIds) + len(m.ChildrenIds) + len(m.AdoptedChildrenIds)
}

func (m *Marriage) normalizeId(personRules, marriageRules map[int]int) {
	m.Id = marriageRules[m.Id]
	m.ParentsIds = remapList(m.ParentsIds, personRules)
	m.ChildrenIds = remapList(m.ChildrenIds, personRules)
	m.AdoptedChildrenIds = remapList(m.AdoptedChildrenIds, personRules)
}

func (m *Marriage) eraseDegeneracy() {
	m.ParentsIds = Uniq(m.ParentsIds)
	m.ChildrenIds = Uniq(m.ChildrenIds)
	m.AdoptedChildrenIds = Uniq(m.AdoptedChildrenIds)
}

func (m *Marriage) addOffset(personOffset, marriageOffset int) {
	m.Id += marriageOffset

	for _, list := range [][]int{m.ParentsIds, m.ChildrenIds, m.AdoptedChildrenIds} {
		for i := range list {
			list[i] += personOffset
		}
	}
}
