package providers

import (
	"encoding/json"
	"fmt"

	"github.com/redexp/familychart/i18n"
	"github.com/redexp/familychart/state"
)

type RelationKind string

const (
	SpouseRelation        RelationKind = "spouse"
	ChildRelation         RelationKind = "child"
	ParentRelation        RelationKind = "parent"
	AdoptedChildRelation  RelationKind = "adopted_child"
	AdoptedParentRelation RelationKind = "adopted_parent"
	BrotherRelation       RelationKind = "brother"
)

// AddRelation links from and to. Child kinds make to the child of from,
// parent kinds make to the parent of from.
func AddRelation(tree *state.FamilyTree, kind RelationKind, from, to int) (ok bool, err error) {
	switch kind {
	case SpouseRelation:
		ok = tree.MakeSpouses(from, to)
	case ChildRelation:
		ok = tree.MakeChild(from, to)
	case ParentRelation:
		ok = tree.MakeChild(to, from)
	case AdoptedChildRelation:
		ok = tree.MakeAdoptedChild(from, to)
	case AdoptedParentRelation:
		ok = tree.MakeAdoptedChild(to, from)
	case BrotherRelation:
		ok = tree.MakeBrother(from, to)
	default:
		err = fmt.Errorf("%s", i18n.L("unknown_relation", kind))
	}

	return
}

func RelationAdd(ctx *Ctx, params *RelationParams) (res *EditResult, err error) {
	log.Debugf("relation/add: %s %d %d", params.Kind, params.From, params.To)

	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		if id, found := missingPerson(tree, params.From, params.To); found {
			res = result(false, "person_not_found", id)
			return false, nil
		}

		ok, err := AddRelation(tree, params.Kind, params.From, params.To)

		if err != nil {
			return false, err
		}

		res = result(ok, "relation_rejected", params.Kind, params.From, params.To)

		return ok, nil
	})

	return
}

func RelationDelete(ctx *Ctx, params *RelationParams) (res *EditResult, err error) {
	log.Debugf("relation/delete: %d %d", params.From, params.To)

	_, err = session.Edit(func(tree *state.FamilyTree) (bool, error) {
		if id, found := missingPerson(tree, params.From, params.To); found {
			res = result(false, "person_not_found", id)
			return false, nil
		}

		res = result(tree.DeleteRelation(params.From, params.To), "relation_not_found", params.From, params.To)

		return res.Ok, nil
	})

	return
}

func missingPerson(tree *state.FamilyTree, ids ...int) (int, bool) {
	for _, id := range ids {
		if _, ok := tree.Person(id); !ok {
			return id, true
		}
	}

	return 0, false
}

type RelationHandlers struct {
	Add    RelationAddFunc
	Delete RelationDeleteFunc
}

func NewRelationHandlers() *RelationHandlers {
	return &RelationHandlers{
		Add:    RelationAdd,
		Delete: RelationDelete,
	}
}

func (req *RelationHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case RelationAddMethod:
		validMethod = true

		var params RelationParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Add(ctx, &params)
		}

	case RelationDeleteMethod:
		validMethod = true

		var params RelationParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Delete(ctx, &params)
		}
	}

	return
}

const (
	RelationAddMethod    = "relation/add"
	RelationDeleteMethod = "relation/delete"
)

type RelationParams struct {
	Kind RelationKind `json:"kind"`
	From int          `json:"from"`
	To   int          `json:"to"`
}

type RelationAddFunc func(*Ctx, *RelationParams) (*EditResult, error)
type RelationDeleteFunc func(*Ctx, *RelationParams) (*EditResult, error)
