// SPDX-License-Identifier: EPL-2.0

package effects

import "fmt"

const (
	// DefaultMaxOptions bounds the flattened option count per effect.
	DefaultMaxOptions = 20

	// DefaultFileType is the type hint handed to the engine when the input
	// format cannot be determined from the file itself.
	DefaultFileType = "raw"

	// noEffectsName is the sentinel effect substituted for an empty chain at
	// execution time.
	noEffectsName = "no_effects"
)

// Config shapes a chain's output and option limits. The zero values of
// Normalization, FileType and MaxOptions stand for the defaults (divide by
// 1<<31, "raw" and DefaultMaxOptions). ChannelsFirst is taken as given;
// DefaultConfig sets it.
type Config struct {
	Normalization Normalization
	ChannelsFirst bool
	Signal        *SignalInfo
	Encoding      *EncodingInfo
	FileType      string
	MaxOptions    int
}

// DefaultConfig returns the configuration used when New receives nil:
// default normalization, channel-major output, "raw" type hint and
// DefaultMaxOptions options per effect.
func DefaultConfig() *Config {
	return &Config{
		Normalization: DefaultNormalization(),
		ChannelsFirst: true,
		FileType:      DefaultFileType,
		MaxOptions:    DefaultMaxOptions,
	}
}

// Chain is an ordered effects sequence bound to an engine. Append queues
// validated effects, SetInputFile points the chain at a file, Execute runs
// the whole pipeline once. Not safe for concurrent use.
type Chain struct {
	engine    Engine
	available map[string]struct{}

	effects   []Effect
	inputFile string

	norm          Normalization
	channelsFirst bool
	signal        *SignalInfo
	encoding      *EncodingInfo
	fileType      string
	maxOptions    int
}

// New builds a chain against eng, snapshotting its effect vocabulary once.
// A nil cfg selects DefaultConfig.
func New(eng Engine, cfg *Config) (*Chain, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	fileType := cfg.FileType
	if fileType == "" {
		fileType = DefaultFileType
	}
	maxOptions := cfg.MaxOptions
	if maxOptions <= 0 {
		maxOptions = DefaultMaxOptions
	}

	return &Chain{
		engine:        eng,
		available:     snapshotEffectNames(eng),
		norm:          cfg.Normalization,
		channelsFirst: cfg.ChannelsFirst,
		signal:        cfg.Signal,
		encoding:      cfg.Encoding,
		fileType:      fileType,
		maxOptions:    maxOptions,
	}, nil
}

// Append validates name against the vocabulary snapshot, flattens args to
// strings and queues the effect at the end of the chain. No args (or an
// empty list) is stored as a single empty-string option. Nothing is queued
// when validation fails.
func (c *Chain) Append(name string, args ...Arg) error {
	normalized, err := c.validateEffect(name)
	if err != nil {
		return err
	}

	opts := flattenArgs(args)
	if len(opts) == 0 {
		opts = []string{""}
	}
	if len(opts) > c.maxOptions {
		return fmt.Errorf("%w: effect %q has %d options, limit is %d",
			ErrTooManyOptions, normalized, len(opts), c.maxOptions)
	}

	c.effects = append(c.effects, Effect{Name: normalized, Options: opts})
	return nil
}

// Execute runs the chain against the current input file. When out is nil a
// fresh buffer is allocated; otherwise out must satisfy the buffer
// compatibility contract and is filled in place. The engine is invoked
// exactly once, then normalization is applied to the result.
//
// An empty chain is executed with a single no_effects sentinel for this
// call only; the chain itself is never mutated by execution. On failure the
// returned sample rate is meaningless and a caller supplied buffer may hold
// partial data.
func (c *Chain) Execute(out *Buffer) (*Buffer, int, error) {
	if c.inputFile == "" {
		return nil, 0, ErrNoInputFile
	}
	if out != nil {
		if err := out.validate(); err != nil {
			return nil, 0, err
		}
	} else {
		out = &Buffer{}
	}

	effs := c.effects
	if len(effs) == 0 {
		effs = []Effect{{Name: noEffectsName, Options: []string{""}}}
	}

	rate, err := c.engine.BuildFlow(&FlowRequest{
		InputPath:     c.inputFile,
		Out:           out,
		ChannelsFirst: c.channelsFirst,
		Signal:        c.signal,
		Encoding:      c.encoding,
		FileType:      c.fileType,
		Effects:       effs,
		MaxOptions:    c.maxOptions,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	c.norm.apply(out.Data)

	return out, rate, nil
}

// Clear discards all queued effects. The input file and configuration are
// untouched.
func (c *Chain) Clear() {
	c.effects = nil
}

// SetInputFile points the chain at path. Existence is not checked here; the
// engine reports missing or unreadable files at execution time.
func (c *Chain) SetInputFile(path string) {
	c.inputFile = path
}

// InputFile returns the currently configured input path, empty when unset.
func (c *Chain) InputFile() string { return c.inputFile }

// Len reports how many effects are queued.
func (c *Chain) Len() int { return len(c.effects) }

// Effects returns a copy of the queued effect sequence in execution order.
func (c *Chain) Effects() []Effect {
	out := make([]Effect, len(c.effects))
	copy(out, c.effects)
	return out
}
