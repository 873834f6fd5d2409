// FILE: compat/builder.go
package compat

import (
	"fmt"

	"github.com/sid19991/rapidlog"
)

// Builder provides a flexible way to create configured logger adapters
// for gnet and fasthttp. It can use an existing *rapidlog.Logger instance
// or create a new one from a *rapidlog.Config.
type Builder struct {
	logger *rapidlog.Logger
	logCfg *rapidlog.Config
	err    error
}

// NewBuilder creates a new adapter builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// Recommended for applications that already have a central logger
// instance. If this is set, WithConfig is ignored.
func (b *Builder) WithLogger(l *rapidlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("rapidlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance. It is
// used only if an existing logger is NOT provided via WithLogger. With
// neither, a default logger is created.
func (b *Builder) WithConfig(cfg *rapidlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary.
func (b *Builder) getLogger() (*rapidlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l, err := rapidlog.New(b.logCfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter.
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter.
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *rapidlog.Logger instance,
// initializing it if necessary.
func (b *Builder) GetLogger() (*rapidlog.Logger, error) {
	return b.getLogger()
}

// --- Example usage ---
//
//	appLogger, err := rapidlog.NewBuilder().Preset("throughput").Build()
//	if err != nil { /* handle error */ }
//
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	// For gnet:
//	var events gnet.EventHandler // your event handler
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	// For fasthttp:
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")
