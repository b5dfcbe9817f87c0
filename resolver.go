package paramselect

import (
	"fmt"

	"github.com/google/uuid"
)

// Resolver applies a preference profile to the capabilities a device offers.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	params []parameter
	meter  Meter
}

type parameter struct {
	name     string
	selector Selector[string]
	required bool
}

// Resolution is the result of one Resolve call.
type Resolution struct {
	ID         string
	Values     map[string]string
	Unresolved []string // optional parameters with no acceptable option
}

// Value returns the selected value for name.
func (r Resolution) Value(name string) (string, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMeter sets the meter.
func WithMeter(m Meter) Option {
	return func(r *Resolver) { r.meter = m }
}

// WithSelector adds a parameter resolved by s, or replaces the selector of a
// parameter of the same name from the config.
func WithSelector(name string, s Selector[string], required bool) Option {
	return func(r *Resolver) {
		p := parameter{name: name, selector: s, required: required}
		for i := range r.params {
			if r.params[i].name == name {
				r.params[i] = p
				return
			}
		}
		r.params = append(r.params, p)
	}
}

// NewResolver creates a Resolver for cfg. An empty cfg is allowed when
// parameters are supplied with WithSelector.
func NewResolver(cfg Config, opts ...Option) (*Resolver, error) {
	if len(cfg.Parameters) > 0 {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	r := &Resolver{params: make([]parameter, 0, len(cfg.Parameters))}
	for _, p := range cfg.Parameters {
		r.params = append(r.params, parameter{
			name:     p.Name,
			selector: p.Selector(),
			required: p.Required,
		})
	}

	for _, opt := range opts {
		opt(r)
	}

	if len(r.params) == 0 {
		return nil, fmt.Errorf("%w: at least one parameter is required", ErrInvalidConfig)
	}
	for _, p := range r.params {
		if p.name == "" {
			return nil, fmt.Errorf("%w: parameter name is required", ErrInvalidConfig)
		}
		if p.selector == nil {
			return nil, fmt.Errorf("%w: parameter %q: selector is nil", ErrInvalidConfig, p.name)
		}
	}

	if r.meter == nil {
		r.meter = noopMeter{}
	}

	return r, nil
}

// Parameters returns the parameter names in resolution order.
func (r *Resolver) Parameters() []string {
	names := make([]string, len(r.params))
	for i, p := range r.params {
		names[i] = p.name
	}
	return names
}

// Resolve selects a value for every parameter from caps.
// A required parameter with no acceptable option fails the whole resolution
// with a *ResolveError wrapping ErrUnsupported.
func (r *Resolver) Resolve(caps Capabilities) (Resolution, error) {
	res := Resolution{
		ID:     uuid.New().String(),
		Values: make(map[string]string, len(r.params)),
	}

	for _, p := range r.params {
		offered := caps.Options(p.name)
		value, ok := p.selector.Select(offered).Get()

		r.meter.OnSelect(SelectEvent{
			ResolutionID: res.ID,
			Parameter:    p.name,
			Value:        value,
			Selected:     ok,
			Required:     p.required,
			Offered:      len(offered),
		})

		if ok {
			res.Values[p.name] = value
			continue
		}
		if p.required {
			return Resolution{}, &ResolveError{
				Err:          ErrUnsupported,
				ResolutionID: res.ID,
				Parameter:    p.name,
				Offered:      offered,
			}
		}
		res.Unresolved = append(res.Unresolved, p.name)
	}

	return res, nil
}

// ResolveOne selects a value for a single parameter.
// It returns ErrUnknownParameter if name is not configured.
func (r *Resolver) ResolveOne(name string, caps Capabilities) (string, bool, error) {
	for _, p := range r.params {
		if p.name == name {
			value, ok := p.selector.Select(caps.Options(name)).Get()
			return value, ok, nil
		}
	}
	return "", false, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// noopMeter is a meter that does nothing.
type noopMeter struct{}

func (noopMeter) OnSelect(SelectEvent) {}
