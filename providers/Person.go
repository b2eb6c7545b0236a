package providers

import (
	"encoding/json"

	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
)

func PersonAdd(ctx *Ctx, params *PositionParams) (person *state.Person, err error) {
	id := -1

	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		id = tree.AddPerson(params.Position).Id
		return true, nil
	})

	if err != nil {
		return
	}

	err = session.Read(func(tree *state.FamilyTree) error {
		if p, ok := tree.Person(id); ok {
			person = p.Clone()
		}

		return nil
	})

	return
}

func PersonUpdate(ctx *Ctx, params *PersonUpdateParams) (res *EditResult, err error) {
	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		if e := params.Data.Validate(); e != nil {
			return false, e
		}

		res = result(tree.UpdatePerson(params.Id, params.Data), "person_not_found", params.Id)

		return res.Ok, nil
	})

	return
}

func PersonMove(ctx *Ctx, params *PersonMoveParams) (res *EditResult, err error) {
	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		var ok bool

		if params.Position != nil {
			ok = tree.SetPersonPosition(params.Id, *params.Position)
		} else {
			ok = tree.MovePerson(params.Id, params.Delta, params.WithDescendants)
		}

		res = result(ok, "person_not_found", params.Id)

		return ok, nil
	})

	return
}

func PersonDelete(ctx *Ctx, params *PersonIdParams) (res *EditResult, err error) {
	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		res = result(tree.DeletePerson(params.Id), "person_not_found", params.Id)

		return res.Ok, nil
	})

	return
}

// PersonAt returns the person under position or nil.
func PersonAt(ctx *Ctx, params *PositionParams) (person *state.Person, err error) {
	err = session.Read(func(tree *state.FamilyTree) error {
		if p, ok := tree.PersonAt(params.Position); ok {
			person = p.Clone()
		}

		return nil
	})

	return
}

func PersonDescendants(ctx *Ctx, params *PersonIdParams) (ids []int, err error) {
	ids = make([]int, 0)

	err = session.Read(func(tree *state.FamilyTree) error {
		for _, p := range tree.AllDescendants(params.Id) {
			ids = append(ids, p.Id)
		}

		return nil
	})

	return
}

type PersonHandlers struct {
	Add         PersonAddFunc
	Update      PersonUpdateFunc
	Move        PersonMoveFunc
	Delete      PersonDeleteFunc
	At          PersonAtFunc
	Descendants PersonDescendantsFunc
}

func NewPersonHandlers() *PersonHandlers {
	return &PersonHandlers{
		Add:         PersonAdd,
		Update:      PersonUpdate,
		Move:        PersonMove,
		Delete:      PersonDelete,
		At:          PersonAt,
		Descendants: PersonDescendants,
	}
}

func (req *PersonHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case PersonAddMethod:
		validMethod = true

		var params PositionParams
		if err = unmarshalParams(ctx, &params); err == nil {
			validParams = true
			res, err = req.Add(ctx, &params)
		}

	case PersonUpdateMethod:
		validMethod = true

		var params PersonUpdateParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Update(ctx, &params)
		}

	case PersonMoveMethod:
		validMethod = true

		var params PersonMoveParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Move(ctx, &params)
		}

	case PersonDeleteMethod:
		validMethod = true

		var params PersonIdParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Delete(ctx, &params)
		}

	case PersonAtMethod:
		validMethod = true

		var params PositionParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.At(ctx, &params)
		}

	case PersonDescendantsMethod:
		validMethod = true

		var params PersonIdParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Descendants(ctx, &params)
		}
	}

	return
}

const (
	PersonAddMethod         = "person/add"
	PersonUpdateMethod      = "person/update"
	PersonMoveMethod        = "person/move"
	PersonDeleteMethod      = "person/delete"
	PersonAtMethod          = "person/at"
	PersonDescendantsMethod = "person/descendants"
)

type PositionParams struct {
	Position Pos `json:"position"`
}

type PersonIdParams struct {
	Id int `json:"id"`
}

type PersonUpdateParams struct {
	Id   int              `json:"id"`
	Data state.PersonData `json:"data"`
}

// PersonMoveParams moves by Delta, or to Position when it is set.
type PersonMoveParams struct {
	Id              int  `json:"id"`
	Delta           Pos  `json:"delta"`
	Position        *Pos `json:"position,omitempty"`
	WithDescendants bool `json:"withDescendants"`
}

type PersonAddFunc func(*Ctx, *PositionParams) (*state.Person, error)
type PersonUpdateFunc func(*Ctx, *PersonUpdateParams) (*EditResult, error)
type PersonMoveFunc func(*Ctx, *PersonMoveParams) (*EditResult, error)
type PersonDeleteFunc func(*Ctx, *PersonIdParams) (*EditResult, error)
type PersonAtFunc func(*Ctx, *PositionParams) (*state.Person, error)
type PersonDescendantsFunc func(*Ctx, *PersonIdParams) ([]int, error)
