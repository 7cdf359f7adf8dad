package apperror

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrIllegalMove    = errors.New("illegal move")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNothingToRedo  = errors.New("nothing to redo")
	ErrSaveNotFound   = errors.New("saved game not found")
	ErrMalformedSave  = errors.New("saved game is malformed")
	ErrGameFinished   = errors.New("game is already finished")
	ErrExit           = errors.New("exit requested")
)
