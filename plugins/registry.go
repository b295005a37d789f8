package plugins

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores named commands for host lookup.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command to the registry. It returns an error if a
// command with the same name is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[c.Name()]; exists {
		return fmt.Errorf("command %q already registered", c.Name())
	}
	r.commands[c.Name()] = c
	return nil
}

// Get returns a command by name, or nil if not found.
func (r *Registry) Get(name string) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[name]
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry pre-populated with the four gauge
// commands.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []Command{
		&RunCommand{},
		&ValidateCommand{},
		&FormatCommand{},
		&InstallCommand{},
	} {
		// Names are distinct literals; Register cannot fail here.
		_ = r.Register(c)
	}
	return r
}
