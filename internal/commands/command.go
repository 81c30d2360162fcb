package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeNew      Type = "new"
	TypeRename   Type = "rename"
	TypeDelete   Type = "delete"
	TypeTheme    Type = "theme"
	TypeAdd      Type = "add"
	TypeNotes    Type = "notes"
	TypeAbout    Type = "about"
	TypeSettings Type = "settings"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
	ErrCodeNoSelection     ErrorCode = "no_selection"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type NameArgs struct {
	Name string
}

type ThemeArgs struct {
	Theme string
}

type AddArgs struct {
	Title string
}

type NotesArgs struct {
	Notes string
}

type Command struct {
	Type   Type
	Raw    string
	New    *NameArgs
	Rename *NameArgs
	Theme  *ThemeArgs
	Add    *AddArgs
	Notes  *NotesArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(raw, parts[0]))

	switch Type(head) {
	case TypeNew:
		name, err := requireText(rest, "new requires a list name")
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeNew, Raw: input, New: &NameArgs{Name: name}}, nil
	case TypeRename:
		name, err := requireText(rest, "rename requires a list name")
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeRename, Raw: input, Rename: &NameArgs{Name: name}}, nil
	case TypeDelete, TypeAbout, TypeSettings:
		return Command{Type: Type(head), Raw: input}, nil
	case TypeTheme:
		theme, err := requireText(rest, "theme requires one of system, dark, light")
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeTheme, Raw: input, Theme: &ThemeArgs{Theme: strings.ToLower(theme)}}, nil
	case TypeAdd:
		title, err := requireText(rest, "add requires a title")
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeAdd, Raw: input, Add: &AddArgs{Title: title}}, nil
	case TypeNotes:
		// Empty notes clear them.
		return Command{Type: TypeNotes, Raw: input, Notes: &NotesArgs{Notes: strings.ReplaceAll(rest, `\n`, "\n")}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func requireText(rest, message string) (string, error) {
	if rest == "" {
		return "", &CommandError{Code: ErrCodeInvalidArgument, Message: message}
	}
	return rest, nil
}
