package providers

import (
	"encoding/json"

	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
)

func SpotAdd(ctx *Ctx, params *SpotAddParams) (spot *state.Spot, err error) {
	id := -1

	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		id = tree.AddSpot(params.Text, params.Position).Id
		return true, nil
	})

	if err != nil {
		return
	}

	err = session.Read(func(tree *state.FamilyTree) error {
		if s, ok := tree.Spot(id); ok {
			spot = s.Clone()
		}

		return nil
	})

	return
}

func SpotUpdate(ctx *Ctx, params *SpotUpdateParams) (res *EditResult, err error) {
	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		ok := true

		if params.Text != nil {
			ok = tree.SetSpotText(params.Id, *params.Text)
		}

		if ok && params.Position != nil {
			ok = tree.MoveSpot(params.Id, *params.Position)
		}

		if ok && params.Text == nil && params.Position == nil {
			_, ok = tree.Spot(params.Id)
		}

		res = result(ok, "spot_not_found", params.Id)

		return ok, nil
	})

	return
}

func SpotDelete(ctx *Ctx, params *SpotIdParams) (res *EditResult, err error) {
	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		res = result(tree.DeleteSpot(params.Id), "spot_not_found", params.Id)

		return res.Ok, nil
	})

	return
}

// SpotAt hit tests spot labels drawn at scale. It returns nil for a miss.
func SpotAt(ctx *Ctx, params *SpotAtParams) (spot *state.Spot, err error) {
	err = session.Read(func(tree *state.FamilyTree) error {
		if s, ok := tree.SpotAt(params.Position, params.Scale); ok {
			spot = s.Clone()
		}

		return nil
	})

	return
}

type SpotHandlers struct {
	Add    SpotAddFunc
	Update SpotUpdateFunc
	Delete SpotDeleteFunc
	At     SpotAtFunc
}

func NewSpotHandlers() *SpotHandlers {
	return &SpotHandlers{
		Add:    SpotAdd,
		Update: SpotUpdate,
		Delete: SpotDelete,
		At:     SpotAt,
	}
}

func (req *SpotHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case SpotAddMethod:
		validMethod = true

		var params SpotAddParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Add(ctx, &params)
		}

	case SpotUpdateMethod:
		validMethod = true

		var params SpotUpdateParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Update(ctx, &params)
		}

	case SpotDeleteMethod:
		validMethod = true

		var params SpotIdParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Delete(ctx, &params)
		}

	case SpotAtMethod:
		validMethod = true

		var params SpotAtParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.At(ctx, &params)
		}
	}

	return
}

const (
	SpotAddMethod    = "spot/add"
	SpotUpdateMethod = "spot/update"
	SpotDeleteMethod = "spot/delete"
	SpotAtMethod     = "spot/at"
)

type SpotAddParams struct {
	Text     string `json:"text"`
	Position Pos    `json:"position"`
}

type SpotUpdateParams struct {
	Id       int     `json:"id"`
	Text     *string `json:"text,omitempty"`
	Position *Pos    `json:"position,omitempty"`
}

type SpotIdParams struct {
	Id int `json:"id"`
}

type SpotAtParams struct {
	Position Pos     `json:"position"`
	Scale    float64 `json:"scale"`
}

type SpotAddFunc func(*Ctx, *SpotAddParams) (*state.Spot, error)
type SpotUpdateFunc func(*Ctx, *SpotUpdateParams) (*EditResult, error)
type SpotDeleteFunc func(*Ctx, *SpotIdParams) (*EditResult, error)
type SpotAtFunc func(*Ctx, *SpotAtParams) (*state.Spot, error)
