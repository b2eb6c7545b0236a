package providers

import (
	"encoding/json"

	"github.com/redexp/familychart/i18n"
	"github.com/redexp/familychart/layout"
	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
	. "github.com/redexp/familychart/utils"
)

// EditResult answers every edit. A rejected edit is not a protocol error,
// Message explains it in the current locale.
type EditResult struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func result(ok bool, key string, args ...any) *EditResult {
	if ok {
		return &EditResult{Ok: true}
	}

	return &EditResult{Message: i18n.L(key, args...)}
}

func ChartNew(ctx *Ctx, params *ChartNewParams) (*ChartInfo, error) {
	log.Debugf("chart/new: %s", params.Title)

	err := session.New(params.Title)

	if err != nil {
		return nil, err
	}

	return chartInfo()
}

func ChartOpen(ctx *Ctx, params *ChartUriParams) (*ChartInfo, error) {
	uri, err := NormalizeUri(params.URI)

	if err != nil {
		return nil, err
	}

	err = session.Open(uri)

	if err != nil {
		return nil, err
	}

	return chartInfo()
}

func ChartSave(ctx *Ctx, params *ChartUriParams) (*ChartInfo, error) {
	uri := params.URI

	if uri != "" {
		var err error
		uri, err = NormalizeUri(uri)

		if err != nil {
			return nil, err
		}
	}

	err := session.Save(uri)

	if err != nil {
		return nil, err
	}

	return chartInfo()
}

func ChartMerge(ctx *Ctx, params *ChartMergeParams) (*ChartInfo, error) {
	uri, err := NormalizeUri(params.URI)

	if err != nil {
		return nil, err
	}

	err = session.Merge(uri, params.Offset)

	if err != nil {
		return nil, err
	}

	return chartInfo()
}

func ChartTitle(ctx *Ctx, params *ChartTitleParams) (*ChartInfo, error) {
	_, err := session.Edit(func(tree *state.FamilyTree) (bool, error) {
		if tree.Title() == params.Title {
			return false, nil
		}

		tree.SetTitle(params.Title)

		return true, nil
	})

	if err != nil {
		return nil, err
	}

	return chartInfo()
}

func ChartGet(ctx *Ctx) (*ChartData, error) {
	info, err := chartInfo()

	if err != nil {
		return nil, err
	}

	data := &ChartData{
		ChartInfo: *info,
		Persons:   make([]*state.Person, 0),
		Marriages: make([]*state.Marriage, 0),
		Spots:     make([]*state.Spot, 0),
	}

	err = session.Read(func(tree *state.FamilyTree) error {
		for p := range tree.AllPersons() {
			data.Persons = append(data.Persons, p.Clone())
		}

		for m := range tree.AllMarriages() {
			data.Marriages = append(data.Marriages, m.Clone())
		}

		for s := range tree.AllSpots() {
			data.Spots = append(data.Spots, s.Clone())
		}

		return nil
	})

	return data, err
}

func ChartLines(ctx *Ctx) (lines []layout.Line, err error) {
	style := session.Style()

	err = session.Read(func(tree *state.FamilyTree) error {
		lines = layout.Draw(tree, style)
		return nil
	})

	if lines == nil {
		lines = make([]layout.Line, 0)
	}

	return
}

func ChartRuler(ctx *Ctx, params *ChartRulerParams) (*layout.Ruler, error) {
	ruler := layout.NewRuler(params.View, params.Scale, session.Style())

	return &ruler, nil
}

func ChartSvg(ctx *Ctx) (svg string, err error) {
	labeler := session.Labeler()

	err = session.Read(func(tree *state.FamilyTree) error {
		svg = layout.RenderSvg(tree, labeler)
		return nil
	})

	return
}

func chartInfo() (info *ChartInfo, err error) {
	info = &ChartInfo{
		URI:     session.Uri(),
		CanUndo: session.CanUndo(),
		CanRedo: session.CanRedo(),
	}

	err = session.Read(func(tree *state.FamilyTree) error {
		info.Title = tree.Title()
		info.Bounds = tree.Bounds()
		info.PersonCount = tree.PersonCount()
		info.MarriageCount = tree.MarriageCount()
		info.SpotCount = tree.SpotCount()
		return nil
	})

	return
}

type ChartHandlers struct {
	New   ChartNewFunc
	Open  ChartOpenFunc
	Save  ChartSaveFunc
	Merge ChartMergeFunc
	Title ChartTitleFunc
	Get   ChartGetFunc
	Lines ChartLinesFunc
	Ruler ChartRulerFunc
	Svg   ChartSvgFunc
}

func NewChartHandlers() *ChartHandlers {
	return &ChartHandlers{
		New:   ChartNew,
		Open:  ChartOpen,
		Save:  ChartSave,
		Merge: ChartMerge,
		Title: ChartTitle,
		Get:   ChartGet,
		Lines: ChartLines,
		Ruler: ChartRuler,
		Svg:   ChartSvg,
	}
}

func (req *ChartHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case ChartNewMethod:
		validMethod = true

		var params ChartNewParams
		if err = unmarshalParams(ctx, &params); err == nil {
			validParams = true
			res, err = req.New(ctx, &params)
		}

	case ChartOpenMethod:
		validMethod = true

		var params ChartUriParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Open(ctx, &params)
		}

	case ChartSaveMethod:
		validMethod = true

		var params ChartUriParams
		if err = unmarshalParams(ctx, &params); err == nil {
			validParams = true
			res, err = req.Save(ctx, &params)
		}

	case ChartMergeMethod:
		validMethod = true

		var params ChartMergeParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Merge(ctx, &params)
		}

	case ChartTitleMethod:
		validMethod = true

		var params ChartTitleParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Title(ctx, &params)
		}

	case ChartGetMethod:
		validMethod = true
		validParams = true
		res, err = req.Get(ctx)

	case ChartLinesMethod:
		validMethod = true
		validParams = true
		res, err = req.Lines(ctx)

	case ChartRulerMethod:
		validMethod = true

		var params ChartRulerParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Ruler(ctx, &params)
		}

	case ChartSvgMethod:
		validMethod = true
		validParams = true
		res, err = req.Svg(ctx)
	}

	return
}

// unmarshalParams accepts a missing params member for methods whose params are optional.
func unmarshalParams(ctx *Ctx, params any) error {
	if len(ctx.Params) == 0 || string(ctx.Params) == "null" {
		return nil
	}

	return json.Unmarshal(ctx.Params, params)
}

const (
	ChartNewMethod   = "chart/new"
	ChartOpenMethod  = "chart/open"
	ChartSaveMethod  = "chart/save"
	ChartMergeMethod = "chart/merge"
	ChartTitleMethod = "chart/title"
	ChartGetMethod   = "chart/get"
	ChartLinesMethod = "chart/lines"
	ChartRulerMethod = "chart/ruler"
	ChartSvgMethod   = "chart/svg"
)

type ChartInfo struct {
	URI           Uri    `json:"uri"`
	Title         string `json:"title"`
	Bounds        Rect   `json:"bounds"`
	PersonCount   int    `json:"personCount"`
	MarriageCount int    `json:"marriageCount"`
	SpotCount     int    `json:"spotCount"`
	CanUndo       bool   `json:"canUndo"`
	CanRedo       bool   `json:"canRedo"`
}

type ChartData struct {
	ChartInfo

	Persons   []*state.Person   `json:"personData"`
	Marriages []*state.Marriage `json:"marriageData"`
	Spots     []*state.Spot     `json:"spotData"`
}

type ChartNewParams struct {
	Title string `json:"title"`
}

type ChartUriParams struct {
	URI Uri `json:"uri"`
}

type ChartMergeParams struct {
	URI    Uri `json:"uri"`
	Offset Pos `json:"offset"`
}

type ChartTitleParams struct {
	Title string `json:"title"`
}

type ChartRulerParams struct {
	View  Rect    `json:"view"`
	Scale float64 `json:"scale"`
}

type ChartNewFunc func(*Ctx, *ChartNewParams) (*ChartInfo, error)
type ChartOpenFunc func(*Ctx, *ChartUriParams) (*ChartInfo, error)
type ChartSaveFunc func(*Ctx, *ChartUriParams) (*ChartInfo, error)
type ChartMergeFunc func(*Ctx, *ChartMergeParams) (*ChartInfo, error)
type ChartTitleFunc func(*Ctx, *ChartTitleParams) (*ChartInfo, error)
type ChartGetFunc func(*Ctx) (*ChartData, error)
type ChartLinesFunc func(*Ctx) ([]layout.Line, error)
type ChartRulerFunc func(*Ctx, *ChartRulerParams) (*layout.Ruler, error)
type ChartSvgFunc func(*Ctx) (string, error)
