package rom

import (
	"github.com/go-logr/logr"
	"golang.org/x/text/language"

	"github.com/pdswan/rom/order"
)

// Options is the configuration a Dataset is built with.  Every dataset
// derived from it by an operator carries the same options.
type Options struct {
	// Logger receives debug output from the operators at V(1).
	Logger logr.Logger

	// Nils is the nil policy of Order.
	Nils order.NilPolicy

	// JoinWorkers bounds the goroutines that match tuples in Join.  1 joins
	// sequentially and 0 uses GOMAXPROCS.
	JoinWorkers int

	// Collation selects language specific string ordering in Order.
	// language.Und orders strings by bytes.
	Collation language.Tag
}

// Option configures a Dataset or Storage.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Logger:      logr.Discard(),
		Nils:        order.NilsLast,
		JoinWorkers: 1,
		Collation:   language.Und,
	}
}

func newOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithNils sets the nil policy used by Order.
func WithNils(p order.NilPolicy) Option {
	return func(o *Options) { o.Nils = p }
}

// WithJoinWorkers sets the number of goroutines Join matches with.
func WithJoinWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.JoinWorkers = n
	}
}

// WithCollation sets the language whose collation orders strings.
func WithCollation(tag language.Tag) Option {
	return func(o *Options) { o.Collation = tag }
}

// WithOptions replaces all options, for building a dataset that shares the
// configuration of another.
func WithOptions(o2 Options) Option {
	return func(o *Options) { *o = o2 }
}
