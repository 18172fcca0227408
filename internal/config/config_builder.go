package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs in precedence order. Source
// errors are accumulated and reported together by build.
type configBuilder struct {
	args   []string
	layers []*StructuredConfig
	errs   []error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{args: args}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(parseFlags(b.args))
}

// withJSON loads the file named by the most recent layer that set one.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, l := range b.layers {
		if l.JSONFilePath != "" {
			path = l.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

// build overlays every layer on defaultConfig; non-zero fields of later
// layers win.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := defaultConfig()
	for _, l := range b.layers {
		if err := mergo.Merge(cfg, l, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config: %w", err)
		}
	}
	return cfg, nil
}
