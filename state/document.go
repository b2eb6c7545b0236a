package state

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var documentValidate = validator.New(validator.WithRequiredStructEnabled())

// Document is the persisted form of a chart.
type Document struct {
	Title        string         `json:"title"`
	PersonData   []PersonData   `json:"personData" validate:"unique=Id,dive"`
	MarriageData []MarriageData `json:"marriageData" validate:"unique=Id,dive"`
	SpotData     []SpotData     `json:"spotData" validate:"unique=Id,dive"`
}

// documentKeys holds the keys every stored chart and record must carry.
// Pointers tell a missing key from a zero value.
type documentKeys struct {
	PersonData []struct {
		Id   *int            `json:"id" validate:"required"`
		Name json.RawMessage `json:"name" validate:"required"`
	} `json:"personData" validate:"required,dive"`

	MarriageData []struct {
		Id *int `json:"id" validate:"required"`
	} `json:"marriageData" validate:"required,dive"`

	SpotData []struct {
		Id   *int    `json:"id" validate:"required"`
		Text *string `json:"text" validate:"required"`
	} `json:"spotData" validate:"required,dive"`
}

func ParseDocument(data []byte) (doc *Document, err error) {
	doc = &Document{}
	err = json.Unmarshal(data, doc)

	if err != nil {
		return nil, fmt.Errorf("parse chart: %w", err)
	}

	keys := documentKeys{}
	err = json.Unmarshal(data, &keys)

	if err == nil {
		err = documentValidate.Struct(&keys)
	}

	if err != nil {
		return nil, fmt.Errorf("invalid chart: %w", err)
	}

	return
}

func (doc *Document) Validate() error {
	err := documentValidate.Struct(doc)

	if err != nil {
		return fmt.Errorf("invalid chart: %w", err)
	}

	return nil
}

func (data *PersonData) Validate() error {
	err := documentValidate.Struct(data)

	if err != nil {
		return fmt.Errorf("invalid person: %w", err)
	}

	return nil
}

func (doc *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// FromDocument validates doc and builds a normalized tree from it.
// Id gaps and links recorded on one side only are tolerated and repaired.
func FromDocument(doc *Document) (*FamilyTree, error) {
	err := doc.Validate()

	if err != nil {
		return nil, err
	}

	tree := NewFamilyTree()

	if doc.Title != "" {
		tree.title = doc.Title
	}

	for _, data := range doc.PersonData {
		person := &Person{PersonData: data.Clone()}
		tree.persons.Set(person.Id, person)
		tree.nextPersonId = max(tree.nextPersonId, person.Id+1)
	}

	for _, data := range doc.MarriageData {
		m := &Marriage{MarriageData: data.Clone()}
		tree.marriages.Set(m.Id, m)
		tree.nextMarriageId = max(tree.nextMarriageId, m.Id+1)
	}

	for _, data := range doc.SpotData {
		spot := &Spot{SpotData: data}
		tree.spots.Set(spot.Id, spot)
		tree.nextSpotId = max(tree.nextSpotId, spot.Id+1)
	}

	tree.EraseDegeneracy()
	tree.reconcile()
	tree.Normalize()
	tree.UpdateBounds()

	return tree, nil
}

// Document copies the persisted attributes of the tree.
func (tree *FamilyTree) Document() *Document {
	doc := &Document{
		Title:        tree.title,
		PersonData:   make([]PersonData, 0, tree.persons.Len()),
		MarriageData: make([]MarriageData, 0, tree.marriages.Len()),
		SpotData:     make([]SpotData, 0, tree.spots.Len()),
	}

	for person := range tree.persons.Values() {
		doc.PersonData = append(doc.PersonData, person.PersonData.Clone())
	}

	for m := range tree.marriages.Values() {
		doc.MarriageData = append(doc.MarriageData, m.MarriageData.Clone())
	}

	for spot := range tree.spots.Values() {
		doc.SpotData = append(doc.SpotData, spot.SpotData)
	}

	return doc
}
