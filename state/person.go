package state

import (
	"slices"
	"strings"

	. "github.com/redexp/familychart/types"
	. "github.com/redexp/familychart/utils"
)

type Sex uint8

const (
	Male Sex = iota
	Female
	Other
)

type Date struct {
	IsBC  bool `json:"isBC"`
	Year  *int `json:"year,omitempty" validate:"omitempty,gte=0"`
	Month *int `json:"month,omitempty" validate:"omitempty,gte=1,lte=12"`
	Day   *int `json:"day,omitempty" validate:"omitempty,gte=1,lte=31"`
}

func (d *Date) IsEmpty() bool {
	return d == nil || (d.Year == nil && d.Month == nil && d.Day == nil)
}

func (d *Date) Clone() *Date {
	if d == nil {
		return nil
	}

	return &Date{
		IsBC:  d.IsBC,
		Year:  cloneInt(d.Year),
		Month: cloneInt(d.Month),
		Day:   cloneInt(d.Day),
	}
}

type Name struct {
	FamilyName     *string `json:"familyName,omitempty"`
	FamilyNameKana *string `json:"familyNameKana,omitempty"`
	GivenName      string  `json:"givenName"`
	GivenNameKana  *string `json:"givenNameKana,omitempty"`
	Title          *string `json:"title,omitempty"`
}

func (n Name) Clone() Name {
	n.FamilyName = cloneString(n.FamilyName)
	n.FamilyNameKana = cloneString(n.FamilyNameKana)
	n.GivenNameKana = cloneString(n.GivenNameKana)
	n.Title = cloneString(n.Title)
	return n
}

func (n Name) Display() string {
	if n.FamilyName != nil {
		return *n.FamilyName + n.GivenName
	}

	if n.Title != nil {
		return n.GivenName + *n.Title
	}

	return n.GivenName
}

// PersonData is the persisted attribute set of a person.
type PersonData struct {
	Id                      int      `json:"id" validate:"gte=0"`
	Name                    Name     `json:"name"`
	Sex                     Sex      `json:"sex" validate:"oneof=0 1 2"`
	Bywords                 string   `json:"bywords"`
	Birthday                *Date    `json:"birthday,omitempty"`
	Deathday                *Date    `json:"deathday,omitempty"`
	ParentMarriageId        *int     `json:"parentMarriageId,omitempty" validate:"omitempty,gte=0"`
	AdoptedParentMarriageId *int     `json:"adoptedParentMarriageId,omitempty" validate:"omitempty,gte=0"`
	MarriageIds             []int    `json:"marriageIds" validate:"dive,gte=0"`
	Aliases                 []string `json:"aliases"`
	TagIds                  []int    `json:"tagIds" validate:"dive,gte=0"`
	Works                   []string `json:"works"`
	Description             string   `json:"description"`
	Words                   []string `json:"words"`
	Position                Pos      `json:"position"`
	FixedVertically         bool     `json:"fixedVertically,omitempty"`
}

func (data PersonData) Clone() PersonData {
	data.Name = data.Name.Clone()
	data.Birthday = data.Birthday.Clone()
	data.Deathday = data.Deathday.Clone()
	data.ParentMarriageId = cloneInt(data.ParentMarriageId)
	data.AdoptedParentMarriageId = cloneInt(data.AdoptedParentMarriageId)
	data.MarriageIds = cloneList(data.MarriageIds)
	data.Aliases = cloneList(data.Aliases)
	data.TagIds = cloneList(data.TagIds)
	data.Works = cloneList(data.Works)
	data.Words = cloneList(data.Words)
	return data
}

// FormatPersonData turns empty optional fields into nil and drops blank list entries.
func FormatPersonData(data *PersonData) {
	data.Name.FamilyName = emptyToNil(data.Name.FamilyName)
	data.Name.FamilyNameKana = emptyToNil(data.Name.FamilyNameKana)
	data.Name.GivenNameKana = emptyToNil(data.Name.GivenNameKana)
	data.Name.Title = emptyToNil(data.Name.Title)

	if data.Birthday.IsEmpty() {
		data.Birthday = nil
	}

	if data.Deathday.IsEmpty() {
		data.Deathday = nil
	}

	data.Aliases = withoutBlank(data.Aliases)
	data.Works = withoutBlank(data.Works)
	data.Words = withoutBlank(data.Words)
}

type Person struct {
	PersonData

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewPerson(id int, pos Pos) *Person {
	return &Person{
		PersonData: PersonData{
			Id:          id,
			Sex:         Male,
			MarriageIds: []int{},
			Aliases:     []string{},
			TagIds:      []int{},
			Works:       []string{},
			Words:       []string{},
			Position:    pos,
		},
	}
}

func (p *Person) Clone() *Person {
	return &Person{
		PersonData: p.PersonData.Clone(),
		Width:      p.Width,
		Height:     p.Height,
	}
}

func (p *Person) DisplayName() string {
	return p.Name.Display()
}

func (p *Person) Rect() Rect {
	return Rect{
		X:      p.Position.X,
		Y:      p.Position.Y,
		Width:  p.Width,
		Height: p.Height,
	}
}

func (p *Person) CenterX() float64 {
	return p.Position.X + p.Width/2
}

func (p *Person) HasParentMarriage(id int) bool {
	return p.ParentMarriageId != nil && *p.ParentMarriageId == id
}

func (p *Person) HasAdoptedParentMarriage(id int) bool {
	return p.AdoptedParentMarriageId != nil && *p.AdoptedParentMarriageId == id
}

func (p *Person) SetParentMarriage(id int) {
	p.ParentMarriageId = &id
}

func (p *Person) SetAdoptedParentMarriage(id int) {
	p.AdoptedParentMarriageId = &id
}

func (p *Person) AddMarriageId(id int) {
	p.MarriageIds = AppendUniq(p.MarriageIds, id)
}

func (p *Person) DeleteMarriageId(id int) {
	p.MarriageIds = Without(p.MarriageIds, id)
}

func (p *Person) normalizeId(personRules, marriageRules map[int]int) {
	p.Id = personRules[p.Id]
	p.ParentMarriageId = remapRef(p.ParentMarriageId, marriageRules)
	p.AdoptedParentMarriageId = remapRef(p.AdoptedParentMarriageId, marriageRules)
	p.MarriageIds = remapList(p.MarriageIds, marriageRules)
}

func (p *Person) eraseDegeneracy() {
	p.MarriageIds = Uniq(p.MarriageIds)
	p.TagIds = Uniq(p.TagIds)
}

func (p *Person) addOffset(offset Pos, personOffset, marriageOffset int) {
	p.Position = p.Position.Add(offset)
	p.Id += personOffset

	if p.ParentMarriageId != nil {
		p.SetParentMarriage(*p.ParentMarriageId + marriageOffset)
	}

	if p.AdoptedParentMarriageId != nil {
		p.SetAdoptedParentMarriage(*p.AdoptedParentMarriageId + marriageOffset)
	}

	for i, id := range p.MarriageIds {
		p.MarriageIds[i] = id + marriageOffset
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}

	return P(*v)
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}

	return P(*v)
}

func cloneList[T any](list []T) []T {
	if list == nil {
		return []T{}
	}

	return slices.Clone(list)
}

func emptyToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}

	return v
}

func withoutBlank(list []string) []string {
	res := make([]string, 0, len(list))

	for _, item := range list {
		if strings.TrimSpace(item) != "" {
			res = append(res, item)
		}
	}

	return res
}

func remapRef(id *int, rules map[int]int) *int {
	if id == nil {
		return nil
	}

	next, ok := rules[*id]

	if !ok {
		return nil
	}

	return &next
}

func remapList(list []int, rules map[int]int) []int {
	res := make([]int, 0, len(list))

	for _, id := range list {
		next, ok := rules[id]

		if ok {
			res = append(res, next)
		}
	}

	return res
}
