package state

import (
	"reflect"
	"testing"

	. "github.com/redexp/familychart/types"
	. "github.com/redexp/familychart/utils"
)

func TestDocumentRoundTrip(t *testing.T) {
	tree := createTree(4)
	tree.SetTitle("Yamada")
	tree.MakeSpouses(0, 1)
	tree.MakeChild(0, 2)
	tree.MakeChild(1, 2)
	tree.MakeAdoptedChild(1, 3)
	tree.AddSpot("Kyoto", Pos{X: 10, Y: 20})
	tree.UpdatePerson(2, PersonData{
		Name:     Name{GivenName: "Hanako", FamilyNameKana: P("やまだ")},
		Sex:      Female,
		Bywords:  "poet",
		Birthday: &Date{Year: P(1890), Month: P(4)},
		Deathday: &Date{IsBC: true, Year: P(12)},
		Works:    []string{"Songs"},
	})
	tree.Normalize()

	data, err := tree.Document().Marshal()

	if err != nil {
		t.Fatal(err)
	}

	doc, err := ParseDocument(data)

	if err != nil {
		t.Fatal(err)
	}

	loaded, err := FromDocument(doc)

	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(tree.Document(), loaded.Document()) {
		t.Errorf("round trip differs:\n%+v\n%+v", tree.Document(), loaded.Document())
	}

	checkIntegrity(t, loaded)
}

func TestFromDocumentGaps(t *testing.T) {
	doc := &Document{
		PersonData: []PersonData{
			{Id: 5, MarriageIds: []int{3}},
			{Id: 9, ParentMarriageId: P(3)},
			{Id: 12, ParentMarriageId: P(40), TagIds: []int{1, 1}},
		},
		MarriageData: []MarriageData{
			{Id: 3, ParentsIds: []int{5}, ChildrenIds: []int{9, 77}},
		},
	}

	tree, err := FromDocument(doc)

	if err != nil {
		t.Fatal(err)
	}

	if tree.Title() != DefaultTitle {
		t.Errorf("Title = %q", tree.Title())
	}

	m, ok := tree.Marriage(0)

	if !ok || !reflect.DeepEqual(m.ParentsIds, []int{0}) || !reflect.DeepEqual(m.ChildrenIds, []int{1}) {
		t.Fatalf("marriage = %+v", m)
	}

	p, _ := tree.Person(2)

	if p.ParentMarriageId != nil || !reflect.DeepEqual(p.TagIds, []int{1}) {
		t.Errorf("person 2 = %+v", p.PersonData)
	}

	checkIntegrity(t, tree)
}

func TestFromDocumentOneSidedLink(t *testing.T) {
	doc := &Document{
		PersonData: []PersonData{
			{Id: 0, MarriageIds: []int{0}},
			{Id: 1},
		},
		MarriageData: []MarriageData{
			{Id: 0, ParentsIds: []int{0}, ChildrenIds: []int{1}},
		},
	}

	tree, err := FromDocument(doc)

	if err != nil {
		t.Fatal(err)
	}

	if tree.MarriageCount() != 0 {
		t.Errorf("MarriageCount = %d", tree.MarriageCount())
	}

	checkIntegrity(t, tree)
}

func TestDocumentValidate(t *testing.T) {
	list := []struct {
		Name string
		Doc  Document
	}{
		{
			Name: "duplicate person",
			Doc:  Document{PersonData: []PersonData{{Id: 1}, {Id: 1}}},
		},
		{
			Name: "negative id",
			Doc:  Document{PersonData: []PersonData{{Id: -1}}},
		},
		{
			Name: "unknown sex",
			Doc:  Document{PersonData: []PersonData{{Id: 0, Sex: 5}}},
		},
		{
			Name: "three spouses",
			Doc:  Document{MarriageData: []MarriageData{{Id: 0, ParentsIds: []int{0, 1, 2}}}},
		},
		{
			Name: "bad month",
			Doc:  Document{PersonData: []PersonData{{Id: 0, Birthday: &Date{Month: P(13)}}}},
		},
	}

	for _, item := range list {
		_, err := FromDocument(&item.Doc)

		if err == nil {
			t.Errorf("%s: no error", item.Name)
		}
	}
}

func TestParseDocumentError(t *testing.T) {
	list := []string{
		`{`,
		`{}`,
		`{"personData":[],"marriageData":[]}`,
		`{"personData":[],"marriageData":[{}],"spotData":[]}`,
		`{"personData":[{"name":{}}],"marriageData":[],"spotData":[]}`,
		`{"personData":[{"id":0}],"marriageData":[],"spotData":[]}`,
		`{"personData":[],"marriageData":[],"spotData":[{"id":0}]}`,
	}

	for _, src := range list {
		_, err := ParseDocument([]byte(src))

		if err == nil {
			t.Errorf("%s: no error", src)
		}
	}
}

func TestParseDocumentZeroIds(t *testing.T) {
	src := `{
		"title": "",
		"personData": [{"id": 0, "name": {"givenName": ""}}],
		"marriageData": [{"id": 0, "parentsIds": [0]}],
		"spotData": [{"id": 0, "text": ""}]
	}`

	doc, err := ParseDocument([]byte(src))

	if err != nil {
		t.Fatal(err)
	}

	tree, err := FromDocument(doc)

	if err != nil {
		t.Fatal(err)
	}

	if tree.PersonCount() != 1 || tree.SpotCount() != 1 {
		t.Errorf("persons = %d, spots = %d", tree.PersonCount(), tree.SpotCount())
	}
}

func TestMerge(t *testing.T) {
	tree := createTree(2)
	tree.MakeSpouses(0, 1)

	other := createTree(2)
	other.MakeChild(0, 1)
	other.AddSpot("x", Pos{})

	tree.Merge(other, Pos{X: 1000, Y: 50})

	if tree.PersonCount() != 4 || tree.MarriageCount() != 2 || tree.SpotCount() != 1 {
		t.Fatalf("counts = %d %d %d", tree.PersonCount(), tree.MarriageCount(), tree.SpotCount())
	}

	p, _ := tree.Person(3)

	if p.Position != (Pos{X: 1100, Y: 50}) || p.ParentMarriageId == nil || *p.ParentMarriageId != 1 {
		t.Errorf("person 3 = %+v", p.PersonData)
	}

	if other.PersonCount() != 2 {
		t.Error("other changed")
	}

	checkIntegrity(t, tree)
}
