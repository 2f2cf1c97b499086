package hooks

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Handler turns one event into one decision. Handlers never fail: every
// problem they meet degrades to a pass-through decision.
type Handler interface {
	// Kind returns the lifecycle point this handler serves.
	Kind() EventKind

	// Handle inspects event and decides whether the action may proceed.
	Handle(ctx context.Context, event *Event) *Decision
}

// Run reads one event from in, hands it to handler and writes the
// decision to out.
func Run(ctx context.Context, handler Handler, in io.Reader, out io.Writer, logger *zap.Logger) error {
	event := ReadEvent(in, handler.Kind(), logger)

	decision := NewContinueDecision()
	if !event.IsEmpty() {
		decision = handler.Handle(ctx, event)
	}

	logger.Info("hook decided",
		zap.String("kind", string(handler.Kind())),
		zap.String("path", event.TargetPath),
		zap.Bool("blocked", decision.Blocked()),
		zap.Bool("annotated", decision.HookSpecificOutput != nil),
	)
	return WriteDecision(out, decision, logger)
}

// securityHandler blocks writes that carry credentials or regulated data.
type securityHandler struct {
	engine *ruleEngine
	logger *zap.Logger
}

// NewSecurityHandler creates the pre-write handler that blocks on
// security and sensitive-data findings.
func NewSecurityHandler(logger *zap.Logger) Handler {
	return &securityHandler{
		engine: NewRuleEngine(logger,
			NewSecretRules(),
			NewCodeRiskRules(),
			NewSensitiveDataRules(),
			NewConnectionStringRules(),
		),
		logger: logger,
	}
}

// Kind returns EventFileWritePre.
func (h *securityHandler) Kind() EventKind {
	return EventFileWritePre
}

// Handle checks the content about to be written, or the file on disk
// when the event carries no content.
func (h *securityHandler) Handle(_ context.Context, event *Event) *Decision {
	doc := loadDocument(event, true, h.logger)
	return BuildBlockingDecision(h.engine.Evaluate(doc))
}

// qualityHandler annotates written files with quality findings and
// external linter output.
type qualityHandler struct {
	engine  *ruleEngine
	lint    LintHelper
	workDir string
	logger  *zap.Logger
}

// NewQualityHandler creates the post-write advisory handler. workDir is
// used for project detection when the event does not report a cwd.
func NewQualityHandler(lint LintHelper, workDir string, logger *zap.Logger) Handler {
	return &qualityHandler{
		engine: NewRuleEngine(logger,
			NewUntranslatedTextRules(),
			NewSecurityRules(),
			NewLooseTypingRules(),
			NewDomainFieldRules(),
			NewGenericTokenRules(),
		),
		lint:    lint,
		workDir: workDir,
		logger:  logger,
	}
}

// Kind returns EventFileWritePost.
func (h *qualityHandler) Kind() EventKind {
	return EventFileWritePost
}

// Handle checks the file as written. It never blocks.
func (h *qualityHandler) Handle(ctx context.Context, event *Event) *Decision {
	doc := loadDocument(event, false, h.logger)
	if doc.Text == "" {
		return NewContinueDecision()
	}

	findings := h.engine.Evaluate(doc)

	dir := event.Cwd
	if dir == "" {
		dir = h.workDir
	}
	diagnostics := h.lint.Diagnostics(ctx, dir, doc.Path)

	return BuildAdvisoryDecision(doc.Path, findings, diagnostics)
}

// promptHandler injects domain context into user prompts.
type promptHandler struct {
	injector *ContextInjector
}

// NewPromptHandler creates the prompt-submit handler.
func NewPromptHandler(injector *ContextInjector) Handler {
	return &promptHandler{injector: injector}
}

// Kind returns EventPromptSubmit.
func (h *promptHandler) Kind() EventKind {
	return EventPromptSubmit
}

// Handle builds the prompt context decision.
func (h *promptHandler) Handle(_ context.Context, event *Event) *Decision {
	return h.injector.Build(event.Prompt)
}

// loadDocument resolves the text to inspect. preferInline selects the
// event content over the file on disk; the other source is the fallback.
// Read errors leave the text empty.
func loadDocument(event *Event, preferInline bool, logger *zap.Logger) *Document {
	path := event.TargetPath
	if path != "" && !filepath.IsAbs(path) && event.Cwd != "" {
		path = filepath.Join(event.Cwd, path)
	}
	doc := &Document{Path: path}

	if preferInline && event.Content != "" {
		doc.Text = event.Content
		return doc
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			doc.Text = string(data)
			return doc
		}
		logger.Debug("cannot read target file", zap.String("path", path), zap.Error(err))
	}

	doc.Text = event.Content
	return doc
}
