package command

type ArgParser interface {
	ParseArg(opts map[string]string) error
}

type ArgConstructor func() ArgParser

const (
	Register = "register"
	Refresh  = "refresh"
)

type Router struct {
	handlers map[string]ArgConstructor
}

func NewRouter() *Router {
	return &Router{
		handlers: map[string]ArgConstructor{
			Register: func() ArgParser { return new(RegisterArgs) },
			Refresh:  func() ArgParser { return new(RefreshArgs) },
		},
	}
}

// Route returns fresh arguments for the named command, or nil if the
// command isn't one of ours.
func (r *Router) Route(name string) ArgParser {
	ctor, ok := r.handlers[name]
	if !ok {
		return nil
	}
	return ctor()
}
