package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	New      func(NameArgs) (Result, error)
	Rename   func(NameArgs) (Result, error)
	Delete   func() (Result, error)
	Theme    func(ThemeArgs) (Result, error)
	Add      func(AddArgs) (Result, error)
	Notes    func(NotesArgs) (Result, error)
	About    func() (Result, error)
	Settings func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeNew:
		if handlers.New == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.New(*cmd.New)
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Rename(*cmd.Rename)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Delete()
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Theme(*cmd.Theme)
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeNotes:
		if handlers.Notes == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Notes(*cmd.Notes)
	case TypeAbout:
		if handlers.About == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.About()
	case TypeSettings:
		if handlers.Settings == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Settings()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
