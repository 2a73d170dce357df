// Package coordinator runs the debounce-then-cancel protocol that turns
// edits of the session state into at most one visible translation.
//
// The Coordinator lives on the bubbletea event loop: Trigger and Update are
// called from the model's Update and return commands for the runtime to
// execute. Timers and backend calls run inside those commands and report
// back as DebounceMsg and ResultMsg.
package coordinator

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/anomredux/instant-translator/internal/debounce"
	"github.com/anomredux/instant-translator/internal/session"
	"github.com/anomredux/instant-translator/internal/supersede"
	"github.com/anomredux/instant-translator/internal/translator"
)

// DefaultDelay is the quiet period before a request is sent.
const DefaultDelay = time.Second

// FailureMessage is the only error text users ever see.
const FailureMessage = "Translation failed. Please try again."

// DebounceMsg is delivered when the timer for Ticket elapses.
type DebounceMsg struct {
	Ticket debounce.Ticket
}

// ResultMsg carries the outcome of one backend call.
type ResultMsg struct {
	Token   supersede.Token
	Request translator.Request
	Text    string
	Err     error // nil, translator.ErrCancelled or *translator.BackendError
}

type Coordinator struct {
	backend   translator.Translator
	debouncer *debounce.Debouncer
	guard     supersede.Guard
	logger    *log.Logger

	root context.Context
	stop context.CancelFunc
}

// New returns a coordinator calling backend after delay of quiet.
// A nil logger discards output.
func New(backend translator.Translator, delay time.Duration, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	root, stop := context.WithCancel(context.Background())
	return &Coordinator{
		backend:   backend,
		debouncer: debounce.New(delay),
		logger:    logger.WithPrefix("coordinator"),
		root:      root,
		stop:      stop,
	}
}

func (c *Coordinator) Delay() time.Duration {
	return c.debouncer.Delay()
}

// SetDelay takes effect from the next trigger.
func (c *Coordinator) SetDelay(d time.Duration) {
	c.debouncer.SetDelay(d)
}

func (c *Coordinator) Backend() translator.Translator {
	return c.backend
}

// SetBackend takes effect from the next request. An in-flight request
// keeps running on the old backend.
func (c *Coordinator) SetBackend(b translator.Translator) {
	c.backend = b
}

// Scheduled reports whether a debounce timer is armed.
func (c *Coordinator) Scheduled() bool {
	return c.debouncer.Pending()
}

// InFlight reports whether a backend call is outstanding.
func (c *Coordinator) InFlight() bool {
	return c.guard.InFlight()
}

// Trigger starts a new cycle for s after any of its language codes or its
// input changed. The armed timer and the in-flight request are cancelled
// first.
func (c *Coordinator) Trigger(s session.State) (session.State, tea.Cmd) {
	s.Err = ""
	c.debouncer.Cancel()
	c.guard.Cancel()

	if !s.HasText() {
		s.Pending = false
		s.Translated = ""
		c.logger.Debug("empty input")
		return s, nil
	}

	s.Pending = true
	ticket := c.debouncer.Schedule()
	delay := c.debouncer.Delay()
	c.logger.Debug("scheduled", "ticket", ticket, "delay", delay, "source", s.Source, "target", s.Target)
	return s, tea.Tick(delay, func(time.Time) tea.Msg {
		return DebounceMsg{Ticket: ticket}
	})
}

// Update applies coordinator messages to s. handled is false for messages
// that belong to someone else.
func (c *Coordinator) Update(s session.State, msg tea.Msg) (next session.State, cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case DebounceMsg:
		next, cmd = c.fire(s, msg.Ticket)
		return next, cmd, true
	case ResultMsg:
		return c.apply(s, msg), nil, true
	}
	return s, nil, false
}

// Stop cancels the armed timer and the in-flight request for good.
func (c *Coordinator) Stop() {
	c.debouncer.Cancel()
	c.guard.Cancel()
	c.stop()
}

func (c *Coordinator) fire(s session.State, ticket debounce.Ticket) (session.State, tea.Cmd) {
	if !c.debouncer.Fire(ticket) {
		c.logger.Debug("discarded timer", "ticket", ticket)
		return s, nil
	}

	if s.SamePair() {
		c.logger.Debug("same language, echoing input", "lang", s.Source)
		s.Translated = s.Input
		s.Pending = false
		return s, nil
	}

	req := s.Request()
	ctx, tok := c.guard.Begin(c.root)
	backend := c.backend
	c.logger.Debug("request", "token", tok, "source", req.Source, "target", req.Target, "chars", len(req.Text))
	return s, func() tea.Msg {
		text, err := backend.Translate(ctx, req)
		return ResultMsg{Token: tok, Request: req, Text: text, Err: translator.Classify(err)}
	}
}

func (c *Coordinator) apply(s session.State, msg ResultMsg) session.State {
	if !c.guard.Finish(msg.Token) {
		c.logger.Debug("dropped superseded result", "token", msg.Token)
		return s
	}

	switch {
	case msg.Err == nil:
		s.Translated = msg.Text
		s.Pending = false
	case translator.IsCancelled(msg.Err):
		// Nothing newer owns the cycle, so only the indicator is reset.
		c.logger.Debug("request cancelled", "token", msg.Token)
		s.Pending = false
	default:
		c.logger.Warn("translation failed", "token", msg.Token,
			"source", msg.Request.Source, "target", msg.Request.Target, "err", msg.Err)
		s.Err = FailureMessage
		s.Pending = false
	}
	return s
}

// TranslateOnce runs one cycle for s without debouncing: the empty-input
// and same-language rules apply, then backend is called directly. The
// returned error is nil, translator.ErrCancelled or a *translator.BackendError.
func TranslateOnce(ctx context.Context, backend translator.Translator, s session.State) (session.State, error) {
	s.Err = ""
	s.Pending = false

	if !s.HasText() {
		s.Translated = ""
		return s, nil
	}
	if s.SamePair() {
		s.Translated = s.Input
		return s, nil
	}

	text, err := backend.Translate(ctx, s.Request())
	if err = translator.Classify(err); err != nil {
		if !translator.IsCancelled(err) {
			s.Err = FailureMessage
		}
		return s, err
	}
	s.Translated = text
	return s, nil
}
