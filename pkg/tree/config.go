package tree

import (
	"fmt"
	"log/slog"
)

// DefaultDelimiter separates segments of string paths.
const DefaultDelimiter = "/"

// Option names accepted by Option and WithDefault.
const (
	OptionDelimiter = "delimiter"
	OptionUndefined = "undefined"
	OptionLogger    = "logger"
)

// UndefinedFunc is invoked when a key cannot address an entry: an
// unsupported key type, or a path that runs into a leaf where a container
// was expected. key is a printable label for the offending key. The result
// is returned from Get.
type UndefinedFunc func(key string) any

// Config holds the per-tree settings.
type Config struct {
	// Delimiter splits string keys into path segments. Must not be empty.
	Delimiter string

	// Undefined handles keys that cannot be resolved.
	// Default: nil, which logs a notice and returns nil.
	Undefined UndefinedFunc

	// Logger receives diagnostics. Default: nil, which uses the package logger.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration trees start with when built
// outside a Factory.
func DefaultConfig() Config {
	return Config{Delimiter: DefaultDelimiter}
}

// Validate checks c for invalid settings.
func (c Config) Validate() error {
	if c.Delimiter == "" {
		return ErrInvalidDelimiter
	}
	return nil
}

func (c Config) option(name string) (any, error) {
	switch name {
	case OptionDelimiter:
		return c.Delimiter, nil
	case OptionUndefined:
		return c.Undefined, nil
	case OptionLogger:
		return c.Logger, nil
	}
	return nil, wrapErr(ErrUnknownOption, "%q", name)
}

// Option changes one setting of a Config.
type Option struct {
	name  string
	apply func(cfg *Config, base Config) error
}

// Name returns the setting the option changes.
func (o Option) Name() string { return o.name }

// WithDelimiter sets the path delimiter.
func WithDelimiter(delim string) Option {
	return Option{name: OptionDelimiter, apply: func(cfg *Config, _ Config) error {
		if delim == "" {
			return ErrInvalidDelimiter
		}
		cfg.Delimiter = delim
		return nil
	}}
}

// WithUndefined sets the handler for keys that cannot be resolved.
// A nil handler restores the logging default.
func WithUndefined(fn UndefinedFunc) Option {
	return Option{name: OptionUndefined, apply: func(cfg *Config, _ Config) error {
		cfg.Undefined = fn
		return nil
	}}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return Option{name: OptionLogger, apply: func(cfg *Config, _ Config) error {
		cfg.Logger = l
		return nil
	}}
}

// WithDefault resets the named setting to its default. For a tree the
// default is the configuration it was built with; for a Factory it is
// DefaultConfig.
func WithDefault(name string) Option {
	return Option{name: name, apply: func(cfg *Config, base Config) error {
		switch name {
		case OptionDelimiter:
			cfg.Delimiter = base.Delimiter
		case OptionUndefined:
			cfg.Undefined = base.Undefined
		case OptionLogger:
			cfg.Logger = base.Logger
		default:
			return wrapErr(ErrUnknownOption, "%q", name)
		}
		return nil
	}}
}

// applyOptions applies opts to a copy of cur. cur is only replaced when
// every option succeeds.
func applyOptions(cur Config, base Config, opts []Option) (Config, error) {
	seen := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		if _, dup := seen[o.name]; dup {
			return cur, wrapErr(ErrDuplicateOption, "%q", o.name)
		}
		seen[o.name] = struct{}{}
	}

	next := cur
	for _, o := range opts {
		if o.apply == nil {
			return cur, fmt.Errorf("tree: zero Option for %q", o.name)
		}
		if err := o.apply(&next, base); err != nil {
			return cur, err
		}
	}
	if err := next.Validate(); err != nil {
		return cur, err
	}
	return next, nil
}

// PanicOnUndefined is an UndefinedFunc for callers that want unresolvable
// keys to abort. It panics with an error wrapping ErrInvalidKey.
func PanicOnUndefined(key string) any {
	panic(wrapErr(ErrInvalidKey, "undefined offset %s", key))
}

// Factory builds trees that share an initial configuration.
type Factory struct {
	cfg Config
}

// NewFactory returns a factory starting from DefaultConfig with opts applied.
func NewFactory(opts ...Option) (*Factory, error) {
	cfg, err := applyOptions(DefaultConfig(), DefaultConfig(), opts)
	if err != nil {
		return nil, err
	}
	return &Factory{cfg: cfg}, nil
}

// Configure changes the configuration of trees built from now on. Trees
// already built are not affected. On error the factory is unchanged.
func (f *Factory) Configure(opts ...Option) error {
	cfg, err := applyOptions(f.cfg, DefaultConfig(), opts)
	if err != nil {
		return err
	}
	f.cfg = cfg
	return nil
}

// Option returns the current value of the named setting.
func (f *Factory) Option(name string) (any, error) {
	return f.cfg.option(name)
}

// Config returns a copy of the factory configuration.
func (f *Factory) Config() Config { return f.cfg }

// New returns an empty tree.
func (f *Factory) New() *Tree {
	return newTree(f.cfg)
}

// Of returns a tree holding values under indices 0..n-1.
func (f *Factory) Of(values ...any) *Tree {
	t := newTree(f.cfg)
	for _, v := range values {
		t.appendValue(v)
	}
	return t
}

// FromMap returns a tree holding the entries of m in sorted key order.
func (f *Factory) FromMap(m map[string]any) *Tree {
	t := newTree(f.cfg)
	t.fillMap(m)
	return t
}

// FromEntries returns a tree holding entries in the given order. Later
// duplicates overwrite earlier ones in place.
func (f *Factory) FromEntries(entries ...Entry) *Tree {
	t := newTree(f.cfg)
	for _, e := range entries {
		t.put(e.Key, e.Value)
	}
	return t
}

// New returns an empty tree with DefaultConfig.
func New() *Tree { return newTree(DefaultConfig()) }

// Of returns a tree with DefaultConfig holding values under indices 0..n-1.
func Of(values ...any) *Tree { return (&Factory{cfg: DefaultConfig()}).Of(values...) }

// FromMap returns a tree with DefaultConfig holding m in sorted key order.
func FromMap(m map[string]any) *Tree { return (&Factory{cfg: DefaultConfig()}).FromMap(m) }

// FromEntries returns a tree with DefaultConfig holding entries in order.
func FromEntries(entries ...Entry) *Tree {
	return (&Factory{cfg: DefaultConfig()}).FromEntries(entries...)
}
