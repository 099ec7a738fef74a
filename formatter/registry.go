package formatter

// ItemFactory builds an Item from a directive argument. The argument is
// the text between '{' and '}', or "" when the directive has none.
type ItemFactory func(arg string) (Item, error)

// Registry maps directive keys to item factories.
//
// A Registry is not safe for concurrent mutation. Build it once, then
// share it read-only between Compile calls.
type Registry struct {
	factories map[byte]ItemFactory
}

// NewRegistry returns a registry holding the built-in directives:
//
//	%d{layout}  event time (strftime layout, default DefaultDateLayout)
//	%f{depth}   source file, trimmed to depth directories
//	%l          source line
//	%p          level name
//	%m          message
//	%c          logger name
//	%T          tab
//	%n          newline
//	%r          milliseconds since process start
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register('d', newDateItem)
	r.Register('f', newFileItem)
	r.Register('l', fixed(lineItem{}))
	r.Register('p', fixed(levelItem{}))
	r.Register('m', fixed(messageItem{}))
	r.Register('c', fixed(loggerNameItem{}))
	r.Register('T', fixed(tabItem{}))
	r.Register('n', fixed(newlineItem{}))
	r.Register('r', fixed(elapsedItem{}))
	return r
}

// NewEmptyRegistry returns a registry with no directives.
func NewEmptyRegistry() *Registry {
	return &Registry{factories: make(map[byte]ItemFactory)}
}

// Register binds key to f, replacing any previous factory. '%' can never
// be a key and is ignored.
func (r *Registry) Register(key byte, f ItemFactory) {
	if key == '%' || f == nil {
		return
	}
	r.factories[key] = f
}

// Lookup returns the factory for key.
func (r *Registry) Lookup(key byte) (ItemFactory, bool) {
	f, ok := r.factories[key]
	return f, ok
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	c := &Registry{factories: make(map[byte]ItemFactory, len(r.factories))}
	for k, f := range r.factories {
		c.factories[k] = f
	}
	return c
}
