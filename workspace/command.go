package workspace

import (
	"errors"
	"fmt"
	"strings"
)

// CommandKind identifies a slash command.
type CommandKind int

const (
	// CommandAdd tracks a file.
	CommandAdd CommandKind = iota + 1
	// CommandRemove untracks a file.
	CommandRemove
	// CommandEdit rewrites a tracked file.
	CommandEdit
	// CommandList lists tracked files.
	CommandList
)

const editSeparator = "=>"

var usage = map[CommandKind]string{
	CommandAdd:    "Usage: /add <path>",
	CommandRemove: "Usage: /remove <path>",
	CommandEdit:   "Usage: /edit <path> <old> => <new>",
}

// Command is a parsed slash command. Malformed is set when the command word
// was recognised but its arguments were not.
type Command struct {
	Kind      CommandKind
	Path      string
	Old       string
	New       string
	Malformed bool
}

// ParseCommand recognises a workspace command at the start of content.
// Unknown slash words and ordinary text are not commands.
func ParseCommand(content string) (Command, bool) {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "/") {
		return Command{}, false
	}
	word, rest, _ := strings.Cut(s, " ")
	rest = strings.TrimSpace(rest)

	var cmd Command
	switch strings.ToLower(word) {
	case "/add":
		cmd.Kind = CommandAdd
	case "/remove", "/drop":
		cmd.Kind = CommandRemove
	case "/edit":
		cmd.Kind = CommandEdit
	case "/files":
		return Command{Kind: CommandList}, true
	default:
		return Command{}, false
	}

	if cmd.Kind != CommandEdit {
		cmd.Path = rest
		cmd.Malformed = rest == "" || strings.ContainsAny(rest, " \t")
		return cmd, true
	}

	path, edit, _ := strings.Cut(rest, " ")
	oldStr, newStr, ok := strings.Cut(edit, editSeparator)
	cmd.Path = path
	cmd.Old = strings.TrimSpace(oldStr)
	cmd.New = strings.TrimSpace(newStr)
	cmd.Malformed = path == "" || !ok || cmd.Old == ""
	return cmd, true
}

// Handle runs cmd and renders the outcome as user-facing text. Failures are
// rendered too; Handle never returns an error.
func (w *Workspace) Handle(cmd Command) string {
	if cmd.Malformed {
		return usage[cmd.Kind]
	}
	switch cmd.Kind {
	case CommandAdd:
		p, err := w.Add(cmd.Path)
		if err != nil {
			return fmt.Sprintf("Cannot add %s: %s", cmd.Path, describe(err))
		}
		return fmt.Sprintf("Added %s to context", p)
	case CommandRemove:
		p, err := w.Remove(cmd.Path)
		if err != nil {
			return fmt.Sprintf("File %s is not in context", cmd.Path)
		}
		return fmt.Sprintf("Removed %s from context", p)
	case CommandEdit:
		p, err := w.Edit(cmd.Path, cmd.Old, cmd.New)
		if err != nil {
			return fmt.Sprintf("Cannot edit %s: %s", cmd.Path, describe(err))
		}
		return fmt.Sprintf("Edited %s", p)
	case CommandList:
		files := w.Files()
		if len(files) == 0 {
			return "No files in context"
		}
		return "Files in context:\n  " + strings.Join(files, "\n  ")
	default:
		return "Unsupported command"
	}
}

func describe(err error) string {
	var wsErr *Error
	if errors.As(err, &wsErr) {
		return wsErr.Message
	}
	return err.Error()
}
