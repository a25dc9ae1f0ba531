package registry

import (
	"fmt"
	"strings"

	cfg "github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/urfave/cli/v3"
)

type CommandFactory interface {
	CreateCommand(t *i18n.Translations, cfg *cfg.Config) *cli.Command
}

// Entry names a top-level command and the factory that builds it.
type Entry struct {
	Name    string
	Factory CommandFactory
}

// Registry builds top-level commands in registration order.
type Registry struct {
	entries []Entry
	config  *cfg.Config
	t       *i18n.Translations
}

func NewRegistry(cfg *cfg.Config, t *i18n.Translations) *Registry {
	return &Registry{config: cfg, t: t}
}

// Register appends entries in order and stops at the first one it rejects.
// Entries accepted before the rejected one stay registered.
func (r *Registry) Register(entries ...Entry) error {
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		switch {
		case name == "":
			return fmt.Errorf("%s", r.t.GetMessage("command_name_empty", 0, nil))
		case e.Factory == nil:
			return fmt.Errorf("%s", r.t.GetMessage("command_factory_missing", 0, map[string]interface{}{
				"FactoryName": name,
			}))
		case r.has(name):
			return fmt.Errorf("%s", r.t.GetMessage("factory_already_registered", 0, map[string]interface{}{
				"FactoryName": name,
			}))
		}
		r.entries = append(r.entries, Entry{Name: name, Factory: e.Factory})
	}
	return nil
}

// Names lists the registered command names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

func (r *Registry) has(name string) bool {
	for _, e := range r.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// CreateCommands builds every registered command. A factory that returns nil
// contributes nothing, and an unnamed command takes its registered name.
func (r *Registry) CreateCommands() []*cli.Command {
	commands := make([]*cli.Command, 0, len(r.entries))
	for _, e := range r.entries {
		cmd := e.Factory.CreateCommand(r.t, r.config)
		if cmd == nil {
			continue
		}
		if cmd.Name == "" {
			cmd.Name = e.Name
		}
		commands = append(commands, cmd)
	}
	return commands
}
