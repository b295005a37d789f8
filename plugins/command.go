// Package plugins exposes gauge operations as named commands that build
// hosts (Mage targets, make wrappers, CI steps) drive through a fixed
// lifecycle: InitializeOptions, set raw option fields, FinalizeOptions,
// Run. The boolean result maps to the host's own success signal.
package plugins

// Command is the capability a build host binds to. Option fields on the
// concrete commands are raw strings and bools the host sets between
// InitializeOptions and FinalizeOptions; FinalizeOptions parses and
// validates them.
type Command interface {
	// Name returns the unique command name.
	Name() string
	// Description returns a one-line description for host help output.
	Description() string
	// InitializeOptions resets all option fields to their zero values.
	InitializeOptions()
	// FinalizeOptions parses and validates the raw option fields.
	FinalizeOptions() error
	// Run executes the gauge operation. A false result means gauge ran
	// and exited non-zero; an error means the operation could not run.
	Run() (bool, error)
}
