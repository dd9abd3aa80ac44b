/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Evaluation pipeline. Wires the knowledge base, the cascade inference
engine, result consolidation, the mechanism/therapy evaluators and citation resolution
into one deterministic call. The knowledge base is injected, never global.
*/

package core

import (
	"fmt"
	"time"

	"github.com/kleascm/mechid/pkg/analysis"
	"github.com/kleascm/mechid/pkg/citations"
	"github.com/kleascm/mechid/pkg/consolidate"
	"github.com/kleascm/mechid/pkg/inference"
	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/knowledge"
	"github.com/sirupsen/logrus"
)

// Engine runs the evaluation pipeline
// Safe for concurrent use: every dependency is read-only after construction
type Engine struct {
	base      *knowledge.Base
	inferer   inference.Engine
	resolver  *citations.Resolver
	logger    *logrus.Logger
	reporters []Reporter
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(logger *logrus.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithReporters registers reporters notified after every evaluation
func WithReporters(reporters ...Reporter) Option {
	return func(e *Engine) {
		e.reporters = append(e.reporters, reporters...)
	}
}

// NewEngine creates a pipeline. Nil arguments fall back to the built-in knowledge
// base, the single-pass inference engine and the default citation resolver.
func NewEngine(base *knowledge.Base, inferer inference.Engine, resolver *citations.Resolver, opts ...Option) *Engine {
	if base == nil {
		base = knowledge.Default()
	}
	if inferer == nil {
		inferer = inference.NewSinglePassEngine()
	}
	if resolver == nil {
		resolver = citations.DefaultResolver()
	}

	e := &Engine{
		base:     base,
		inferer:  inferer,
		resolver: resolver,
		logger:   logrus.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Base returns the knowledge base the engine was built with
func (e *Engine) Base() *knowledge.Base {
	return e.base
}

// Mode returns the inference mode in use
func (e *Engine) Mode() string {
	return e.inferer.Mode()
}

// AddReporter registers an additional reporter
func (e *Engine) AddReporter(r Reporter) {
	e.reporters = append(e.reporters, r)
}

// Evaluate parses the raw results of a request and runs the pipeline.
// The only error is an unparseable susceptibility call.
func (e *Engine) Evaluate(req interfaces.Request) (*interfaces.Evaluation, error) {
	profile, err := interfaces.ParseProfile(req.Results)
	if err != nil {
		return nil, fmt.Errorf("invalid results for %q: %w", req.Organism, err)
	}
	return e.Run(req.Organism, profile, req.Context()), nil
}

// Run evaluates an already-parsed profile. An unknown organism is a normal state and
// yields an evaluation with Known=false and empty lists.
func (e *Engine) Run(organism string, input interfaces.Profile, ctx interfaces.ClinicalContext) *interfaces.Evaluation {
	start := time.Now()
	name := e.base.Canonicalize(organism)

	eval := &interfaces.Evaluation{
		Organism:    name,
		Context:     ctx,
		Rows:        []interfaces.ResultRow{},
		Final:       interfaces.Profile{},
		Findings:    analysis.Evaluate(nil, nil, ctx),
		CitationIDs: []string{},
		Citations:   []string{},
	}

	org, ok := e.base.Lookup(name)
	if !ok {
		e.notify(eval, time.Since(start))
		return eval
	}
	eval.Known = true
	eval.Intrinsic = append([]string(nil), org.Intrinsic...)

	user := input.Clone()
	inferred := e.inferer.Infer(org, user)
	e.logger.WithFields(logrus.Fields{
		"organism": org.Name,
		"mode":     e.inferer.Mode(),
		"tested":   len(user),
		"inferred": len(inferred),
	}).Debug("Cascade inference complete")

	merged := consolidate.Consolidate(user, inferred, org.Intrinsic)
	eval.Final = merged.Final
	eval.Rows = consolidate.Rows(merged, org.Panel)

	eval.Findings = analysis.Evaluate(org.Evaluator(), merged.Final, ctx)
	eval.CitationIDs = e.resolver.ResolveIDs(org.Name, eval.Findings.Mechanisms, eval.Findings.Cautions)
	eval.Citations = e.resolver.Strings(eval.CitationIDs)

	e.notify(eval, time.Since(start))
	return eval
}

func (e *Engine) notify(eval *interfaces.Evaluation, d time.Duration) {
	for _, r := range e.reporters {
		r.OnEvaluation(eval, d)
	}
}
