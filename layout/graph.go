package layout

import (
	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
)

// FamilyPerson is a resolved box of one union member.
type FamilyPerson struct {
	Rect

	Id int `json:"id"`

	// Adopted is set for children listed as adopted by the union.
	Adopted bool `json:"adopted"`

	// BothParents is set for children that also have the other kind of parent union.
	BothParents bool `json:"bothParents"`
}

// Family is one union with every member resolved to its box.
type Family struct {
	MarriageId int            `json:"marriageId"`
	Spouses    []FamilyPerson `json:"spouses"`
	Children   []FamilyPerson `json:"children"`
}

func (f Family) BioCount() (count int) {
	for _, c := range f.Children {
		if !c.Adopted {
			count++
		}
	}

	return
}

func GraphFamily(tree *state.FamilyTree, marriageId int) (f Family, ok bool) {
	m, ok := tree.Marriage(marriageId)

	if !ok {
		return
	}

	f.MarriageId = m.Id

	for _, p := range tree.SpousesOf(m.Id) {
		f.Spouses = append(f.Spouses, FamilyPerson{
			Rect: p.Rect(),
			Id:   p.Id,
		})
	}

	for _, p := range tree.ChildrenOf(m.Id) {
		f.Children = append(f.Children, FamilyPerson{
			Rect:        p.Rect(),
			Id:          p.Id,
			BothParents: p.AdoptedParentMarriageId != nil,
		})
	}

	for _, p := range tree.AdoptedChildrenOf(m.Id) {
		f.Children = append(f.Children, FamilyPerson{
			Rect:        p.Rect(),
			Id:          p.Id,
			Adopted:     true,
			BothParents: p.ParentMarriageId != nil,
		})
	}

	return
}

func GraphFamilies(tree *state.FamilyTree) (list []Family) {
	for _, id := range tree.MarriageIds() {
		f, ok := GraphFamily(tree, id)

		if ok {
			list = append(list, f)
		}
	}

	return
}

// Draw routes the connectors of every union in id order.
func Draw(tree *state.FamilyTree, style Style) (lines []Line) {
	for _, f := range GraphFamilies(tree) {
		lines = append(lines, Connectors(f, style)...)
	}

	return
}
