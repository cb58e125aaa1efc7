// Package selection owns the transient navigation state of a gallery
// session: the active category, the active style and the copied-color
// flag that clears itself shortly after a copy.
package selection

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/clipboard"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/prompt"
	"github.com/zjrosen/stylebook/internal/pubsub"
)

// CopyFeedbackDuration is how long a copied color stays flagged.
const CopyFeedbackDuration = 1500 * time.Millisecond

// ErrNoRecord is returned by CopyPrompt when the active id has no record.
var ErrNoRecord = errors.New("no record selected")

// State is a snapshot of the selection. CopiedColor is "" when nothing is
// flagged as copied.
type State struct {
	ActiveCategoryID string
	ActiveStyleID    string
	CopiedColor      string
}

// Controller mutates and projects the selection state. Methods are safe
// to call from the UI loop while the copy timer fires on its own goroutine.
type Controller struct {
	catalog   *catalog.Catalog
	clipboard clipboard.Clipboard
	scheduler Scheduler
	events    *pubsub.Broker[State]
	sessionID string

	mu         sync.Mutex
	state      State
	clearTimer Timer
	generation uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClipboard sets the clipboard collaborator. Defaults to clipboard.Nop.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

// WithScheduler sets the scheduler used for the copy-clear timer.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithInitialCategory starts the session on categoryID instead of the
// catalog's first non-mixed category. Unknown ids are ignored.
func WithInitialCategory(categoryID string) Option {
	return func(c *Controller) {
		if _, ok := c.catalog.Category(categoryID); !ok {
			log.Warn(log.CatSelection, "Ignoring unknown start category", "category", categoryID)
			return
		}
		c.state.ActiveCategoryID = categoryID
		c.state.ActiveStyleID, _ = c.catalog.FirstIn(categoryID)
	}
}

// New creates a controller over cat with the default session state: the
// first non-mixed category and its first style.
func New(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog:   cat,
		clipboard: clipboard.Nop{},
		scheduler: RealScheduler{},
		events:    pubsub.NewBroker[State](),
		sessionID: uuid.NewString(),
	}

	if first, ok := cat.DefaultCategory(); ok {
		c.state.ActiveCategoryID = first.ID
		c.state.ActiveStyleID, _ = cat.FirstIn(first.ID)
	}

	for _, opt := range opts {
		opt(c)
	}

	log.Info(log.CatSelection, "Session started", "session", c.sessionID,
		"category", c.state.ActiveCategoryID, "style", c.state.ActiveStyleID)
	return c
}

// Catalog returns the catalog the controller reads from.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Events returns the broker that receives a State snapshot after every change.
func (c *Controller) Events() *pubsub.Broker[State] {
	return c.events
}

// State returns a snapshot of the current selection.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CopiedColor returns the flagged color, or "".
func (c *Controller) CopiedColor() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CopiedColor
}

// SelectCategory makes categoryID active and selects its first member in
// catalog order. When the category has no members the active style is
// left unchanged.
func (c *Controller) SelectCategory(categoryID string) {
	c.mu.Lock()
	c.state.ActiveCategoryID = categoryID
	if first, ok := c.catalog.FirstIn(categoryID); ok {
		c.state.ActiveStyleID = first
	} else {
		log.Debug(log.CatSelection, "Category has no members", "category", categoryID)
	}
	snapshot := c.state
	c.mu.Unlock()

	log.Debug(log.CatSelection, "Category selected", "session", c.sessionID,
		"category", categoryID, "style", snapshot.ActiveStyleID)
	c.events.Publish(pubsub.CategorySelected, snapshot)
}

// SelectStyle makes styleID active. The id is not checked against the
// active category; an unreachable id simply has no current record.
func (c *Controller) SelectStyle(styleID string) {
	c.mu.Lock()
	c.state.ActiveStyleID = styleID
	snapshot := c.state
	c.mu.Unlock()

	log.Debug(log.CatSelection, "Style selected", "session", c.sessionID, "style", styleID)
	c.events.Publish(pubsub.StyleSelected, snapshot)
}

// CurrentRecord resolves the active style id in the collection the active
// category routes to. It returns false when nothing matches.
func (c *Controller) CurrentRecord() (catalog.Record, bool) {
	s := c.State()
	return c.catalog.Lookup(s.ActiveCategoryID, s.ActiveStyleID)
}

// CopyColor hands color to the clipboard and flags it as copied for
// CopyFeedbackDuration. A new copy replaces the pending clear, so only the
// latest copy's timer can reset the flag. The flag is set even if the
// clipboard write fails; the error is returned for reporting.
func (c *Controller) CopyColor(color string) error {
	err := c.clipboard.Copy(color)
	if err != nil {
		log.ErrorErr(log.CatClipboard, "Failed to copy color", err, "color", color)
	}

	c.mu.Lock()
	if c.clearTimer != nil {
		c.clearTimer.Stop()
	}
	c.generation++
	gen := c.generation
	c.state.CopiedColor = color
	c.clearTimer = c.scheduler.AfterFunc(CopyFeedbackDuration, func() {
		c.clearCopied(gen)
	})
	snapshot := c.state
	c.mu.Unlock()

	log.Debug(log.CatSelection, "Color copied", "session", c.sessionID, "color", color)
	c.events.Publish(pubsub.ColorCopied, snapshot)
	return err
}

// clearCopied resets the flag if no newer copy superseded generation gen.
func (c *Controller) clearCopied(gen uint64) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.state.CopiedColor = ""
	c.clearTimer = nil
	snapshot := c.state
	c.mu.Unlock()

	c.events.Publish(pubsub.ColorCleared, snapshot)
}

// CopyPrompt composes the image prompt for the current record and hands
// it to the clipboard. It returns the prompt even when the clipboard write
// fails.
func (c *Controller) CopyPrompt() (string, error) {
	rec, ok := c.CurrentRecord()
	if !ok {
		return "", ErrNoRecord
	}

	text := prompt.For(rec)
	if err := c.clipboard.Copy(text); err != nil {
		log.ErrorErr(log.CatClipboard, "Failed to copy prompt", err, "style", rec.ID())
		return text, err
	}
	log.Debug(log.CatSelection, "Prompt copied", "session", c.sessionID, "style", rec.ID())
	return text, nil
}

// Members returns the ids listed under the active category.
func (c *Controller) Members() []string {
	return c.catalog.MemberIDs(c.State().ActiveCategoryID)
}

// NextStyle selects the following member of the active category, wrapping
// around. An active id outside the category moves to the first member.
func (c *Controller) NextStyle() {
	c.stepStyle(1)
}

// PrevStyle selects the preceding member of the active category.
func (c *Controller) PrevStyle() {
	c.stepStyle(-1)
}

func (c *Controller) stepStyle(delta int) {
	s := c.State()
	ids := c.catalog.MemberIDs(s.ActiveCategoryID)
	if len(ids) == 0 {
		return
	}
	i := slices.Index(ids, s.ActiveStyleID)
	if i < 0 {
		c.SelectStyle(ids[0])
		return
	}
	c.SelectStyle(ids[wrap(i+delta, len(ids))])
}

// NextCategory selects the following category, wrapping around.
func (c *Controller) NextCategory() {
	c.stepCategory(1)
}

// PrevCategory selects the preceding category.
func (c *Controller) PrevCategory() {
	c.stepCategory(-1)
}

func (c *Controller) stepCategory(delta int) {
	cats := c.catalog.Categories()
	if len(cats) == 0 {
		return
	}
	active := c.State().ActiveCategoryID
	i := slices.IndexFunc(cats, func(cat catalog.Category) bool { return cat.ID == active })
	if i < 0 {
		c.SelectCategory(cats[0].ID)
		return
	}
	c.SelectCategory(cats[wrap(i+delta, len(cats))].ID)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Close cancels a pending clear and closes the event broker.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
	c.generation++
	c.mu.Unlock()

	c.events.Close()
	log.Info(log.CatSelection, "Session ended", "session", c.sessionID)
}
