package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Lannee/cmlang/runtime"
	"github.com/Lannee/cmlang/value"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a cmlang session.
type Config struct {
	Trace   string                 `yaml:"trace"`
	Assign  string                 `yaml:"assign"`
	Calls   string                 `yaml:"calls"`
	Globals map[string]interface{} `yaml:"globals"`
}

// Settings for Config.Assign and Config.Calls.
const (
	assignAll     = "all"
	assignNearest = "nearest"
	callsStrict   = "strict"
	callsLenient  = "lenient"
)

// traceKeys are the trace selectors of all cmlang packages.
var traceKeys = []string{
	"cmlang.value",
	"cmlang.runtime",
	"cmlang.ast",
	"cmlang.scanner",
	"cmlang.parser",
	"cmlang.cli",
}

func defaultConfig() *Config {
	return &Config{
		Trace:  "Error",
		Assign: assignAll,
		Calls:  callsStrict,
	}
}

// LoadConfig reads a YAML configuration file. Settings missing from the file
// keep their default values. An empty path yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	if err = conf.read(f); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	tracer().Debugf("loaded configuration from %s", path)
	return conf, nil
}

func (conf *Config) read(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return conf.validate()
}

func (conf *Config) validate() error {
	switch conf.Assign {
	case assignAll, assignNearest:
	default:
		return fmt.Errorf("assign must be %q or %q, is %q", assignAll, assignNearest, conf.Assign)
	}
	switch conf.Calls {
	case callsStrict, callsLenient:
	default:
		return fmt.Errorf("calls must be %q or %q, is %q", callsStrict, callsLenient, conf.Calls)
	}
	for name, v := range conf.Globals {
		if _, err := global(v); err != nil {
			return fmt.Errorf("global %q: %w", name, err)
		}
	}
	return nil
}

// TraceLevel returns the configured trace level.
func (conf *Config) TraceLevel() tracing.TraceLevel {
	return tracing.TraceLevelFromString(conf.Trace)
}

// ApplyTracing sets the trace level of every cmlang package.
func (conf *Config) ApplyTracing() {
	level := conf.TraceLevel()
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// Options translates the configuration into runtime options.
func (conf *Config) Options() []runtime.Option {
	return []runtime.Option{
		runtime.AssignNearest(conf.Assign == assignNearest),
		runtime.LenientCalls(conf.Calls == callsLenient),
	}
}

// Seed declares the configured globals in the global frame of env, in
// name order.
func (conf *Config) Seed(env *runtime.Environment) error {
	names := make([]string, 0, len(conf.Globals))
	for name := range conf.Globals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v, err := global(conf.Globals[name])
		if err != nil {
			return fmt.Errorf("global %q: %w", name, err)
		}
		env.DeclareGlobal(name, v)
		tracer().Debugf("global %s = %s", name, v.Render())
	}
	return nil
}

// global converts a decoded YAML scalar into a value.
func global(x interface{}) (value.Value, error) {
	switch v := x.(type) {
	case nil:
		return value.Unit, nil
	case int:
		return value.Integer(v), nil
	case int64:
		return value.Integer(v), nil
	case uint64:
		if v > 1<<63-1 {
			return nil, fmt.Errorf("integer %d out of range", v)
		}
		return value.Integer(v), nil
	case string:
		return value.Text(v), nil
	}
	return nil, fmt.Errorf("cannot use %T as a value", x)
}
