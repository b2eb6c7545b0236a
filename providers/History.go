package providers

func HistoryUndo(ctx *Ctx) (*EditResult, error) {
	return result(session.Undo(), "nothing_to_undo"), nil
}

func HistoryRedo(ctx *Ctx) (*EditResult, error) {
	return result(session.Redo(), "nothing_to_redo"), nil
}

type HistoryHandlers struct {
	Undo HistoryFunc
	Redo HistoryFunc
}

func NewHistoryHandlers() *HistoryHandlers {
	return &HistoryHandlers{
		Undo: HistoryUndo,
		Redo: HistoryRedo,
	}
}

func (req *HistoryHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case HistoryUndoMethod:
		validMethod = true
		validParams = true
		res, err = req.Undo(ctx)

	case HistoryRedoMethod:
		validMethod = true
		validParams = true
		res, err = req.Redo(ctx)
	}

	return
}

const (
	HistoryUndoMethod = "history/undo"
	HistoryRedoMethod = "history/redo"
)

type HistoryFunc func(*Ctx) (*EditResult, error)
