package merge

import (
	"github.com/agentstation/stigmerge/pkg/cci"
	"github.com/agentstation/stigmerge/pkg/errors"
)

// CatalogLoader supplies the CCI list used to resolve control filters.
type CatalogLoader func() (*cci.Catalog, error)

// options configures an Engine.
type options struct {
	mode     Mode
	override bool
	filter   string
	strict   bool
	catalog  CatalogLoader
	observer Observer
}

func defaultOptions() *options {
	return &options{
		mode:     ModeMerge,
		catalog:  cci.Load,
		observer: NopObserver{},
	}
}

// Option is a function that configures an Engine.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns engine options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithMode selects merge or copy naming. Defaults to ModeMerge.
func WithMode(mode Mode) Option {
	return func(o *options) error {
		if mode.Tag == "" {
			return &errors.ValidationError{
				Field:   "mode",
				Message: "tag cannot be empty",
			}
		}
		o.mode = mode
		return nil
	}
}

// WithOverride lets reviewed target entries and set target text fields be overwritten.
func WithOverride(enabled bool) Option {
	return func(o *options) error {
		o.override = enabled
		return nil
	}
}

// WithControlFilter restricts propagation to entries referencing a CCI
// whose control index contains prefix. An empty prefix disables filtering.
func WithControlFilter(prefix string) Option {
	return func(o *options) error {
		o.filter = prefix
		return nil
	}
}

// WithStrict turns a source entry missing from the target STIG into an error.
func WithStrict(enabled bool) Option {
	return func(o *options) error {
		o.strict = enabled
		return nil
	}
}

// WithCatalog sets the CCI list loader. It is only called when a control filter is set.
func WithCatalog(loader CatalogLoader) Option {
	return func(o *options) error {
		if loader == nil {
			return &errors.ValidationError{
				Field:   "catalog",
				Message: "cannot be nil",
			}
		}
		o.catalog = loader
		return nil
	}
}

// WithObserver sets the receiver of engine events.
func WithObserver(observer Observer) Option {
	return func(o *options) error {
		if observer == nil {
			return &errors.ValidationError{
				Field:   "observer",
				Message: "cannot be nil",
			}
		}
		o.observer = observer
		return nil
	}
}
