package input

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourcePlugin indicates the action originated from a plugin script.
	SourcePlugin
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourcePlugin:
		return "plugin"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// ActionArgs holds command arguments.
type ActionArgs map[string]any

// Get retrieves a value.
func (a ActionArgs) Get(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a[key]
	return v, ok
}

// GetString retrieves a string value.
func (a ActionArgs) GetString(key string) string {
	if v, ok := a.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetBool retrieves a bool value.
func (a ActionArgs) GetBool(key string) bool {
	if v, ok := a.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Clone returns a shallow copy.
func (a ActionArgs) Clone() ActionArgs {
	if a == nil {
		return nil
	}
	out := make(ActionArgs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "incremental_select_add").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count.
	Count int
}

// NewAction creates an action with no arguments.
func NewAction(name string) Action {
	return Action{Name: name}
}

// WithArg returns a copy of the action with key set to value.
func (a Action) WithArg(key string, value any) Action {
	args := a.Args.Clone()
	if args == nil {
		args = make(ActionArgs, 1)
	}
	args[key] = value
	a.Args = args
	return a
}

// WithSource returns a copy of the action with the given source.
func (a Action) WithSource(source ActionSource) Action {
	a.Source = source
	return a
}
