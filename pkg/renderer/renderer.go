package renderer

import (
	"log/slog"
	mathrand "math/rand/v2"

	"github.com/fauxdoc/fauxdoc/pkg/fake"
	"github.com/fauxdoc/fauxdoc/pkg/generator"
	"github.com/fauxdoc/fauxdoc/pkg/logging"
	"github.com/fauxdoc/fauxdoc/pkg/template"
)

// DocumentRenderer renders document templates by substituting
// {{generator(args)}} placeholders with generated values. It holds no
// per-render state: with the default random sources a single renderer
// is safe for concurrent use.
type DocumentRenderer struct {
	registry *generator.Registry
	engine   *template.Engine
	log      *slog.Logger
}

// Option configures a DocumentRenderer.
type Option func(*options)

type options struct {
	rng      *mathrand.Rand
	provider *fake.Provider
	log      *slog.Logger
}

// WithRand sets a seeded random source for the core generators, making
// their draws deterministic. A seeded source is not safe for concurrent
// renders.
func WithRand(rng *mathrand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithProvider sets the fake-value provider, typically a seeded one for
// deterministic tests.
func WithProvider(p *fake.Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New creates a renderer with every generator registered. The registry
// is immutable once New returns.
func New(opts ...Option) *DocumentRenderer {
	o := &options{log: logging.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	if o.provider == nil {
		o.provider = fake.NewProvider()
	}

	registry := generator.NewRegistry()
	generator.RegisterBuiltins(registry, o.rng)
	generator.RegisterFakeGenerators(registry, o.provider)

	engine := template.New()
	for _, d := range registry.Descriptors() {
		engine.RegisterFunction(d.Name, d.Func)
	}

	return &DocumentRenderer{
		registry: registry,
		engine:   engine,
		log:      o.log,
	}
}

// Render substitutes every placeholder in the template and returns the
// resulting document. No ambient variables are injected: all dynamism
// comes from generator calls. The first template syntax error or
// generator failure aborts the render with no partial output.
func (r *DocumentRenderer) Render(template string) (string, error) {
	document, err := r.engine.Render(template, nil)
	if err != nil {
		r.log.Debug("render failed", "error", err)
		return "", err
	}
	r.log.Debug("rendered document", "template_bytes", len(template), "document_bytes", len(document))
	return document, nil
}

// Generators returns a snapshot of generator name -> description for
// documentation and listing. It is not consumed during rendering.
func (r *DocumentRenderer) Generators() map[string]string {
	return r.registry.All()
}
