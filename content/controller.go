package content

import (
	"context"
	"errors"
	"image"
	"io/fs"
	"log"
	"sync"
	"sync/atomic"

	"github.com/automoto/fling/assets"
	"github.com/automoto/fling/assets/animations"
)

// Content is an installed visual together with its play-head.
type Content struct {
	Visual *assets.Visual
	// Token is the request generation that produced this content.
	Token uint64
	anim  *animations.Animation
}

// Controller loads ball content off the simulation thread and swaps it in
// atomically. When requests overlap, the most recently issued request wins:
// older in-flight requests are cancelled and their results discarded.
//
// The controller never touches the ball's position or drag state.
type Controller struct {
	fsys fs.FS
	opts assets.DecodeOptions

	latest  atomic.Uint64
	current atomic.Pointer[Content]

	// mu serializes installs, play-head updates and request issue order.
	mu         sync.Mutex
	cancelPrev context.CancelFunc

	wg sync.WaitGroup
}

func NewController(fsys fs.FS, opts assets.DecodeOptions) *Controller {
	return &Controller{fsys: fsys, opts: opts}
}

type request struct {
	token    uint64
	ctx      context.Context
	cancel   context.CancelFunc
	name     string
	preserve bool
}

// Load decodes name and installs it with a fresh play-head. It reports
// whether the content was installed.
func (c *Controller) Load(ctx context.Context, name string) bool {
	return c.run(c.issue(ctx, name, false))
}

// Switch decodes name and replaces the current visual. With preservePlayback
// the frame index and running flag carry over from the previous animated
// content. On failure the previous content stays installed.
func (c *Controller) Switch(ctx context.Context, name string, preservePlayback bool) bool {
	return c.run(c.issue(ctx, name, preservePlayback))
}

// LoadAsync is Load on a background goroutine. The request is ordered at call time.
func (c *Controller) LoadAsync(ctx context.Context, name string) <-chan bool {
	return c.async(c.issue(ctx, name, false))
}

// SwitchAsync is Switch on a background goroutine. The request is ordered at call time.
func (c *Controller) SwitchAsync(ctx context.Context, name string, preservePlayback bool) <-chan bool {
	return c.async(c.issue(ctx, name, preservePlayback))
}

// Wait blocks until all asynchronous requests have finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) async(req *request) <-chan bool {
	done := make(chan bool, 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		done <- c.run(req)
	}()
	return done
}

// issue assigns the next token and cancels the request it supersedes.
func (c *Controller) issue(ctx context.Context, name string, preserve bool) *request {
	reqCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelPrev != nil {
		c.cancelPrev()
	}
	c.cancelPrev = cancel

	return &request{
		token:    c.latest.Add(1),
		ctx:      reqCtx,
		cancel:   cancel,
		name:     name,
		preserve: preserve,
	}
}

func (c *Controller) run(req *request) bool {
	defer req.cancel()

	v, err := assets.DecodeVisual(req.ctx, c.fsys, req.name, c.opts)
	if err != nil {
		if c.superseded(req.token) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		log.Printf("Warning: Could not load content %q: %v", req.name, err)
		return false
	}

	return c.install(req, v)
}

func (c *Controller) superseded(token uint64) bool {
	return token != c.latest.Load()
}

func (c *Controller) install(req *request, v *assets.Visual) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.superseded(req.token) {
		return false
	}

	anim := newPlayHead(v)
	if req.preserve {
		if prev := c.current.Load(); prev != nil && prev.Visual.Type.Animated() && v.Type.Animated() {
			anim.Restore(prev.anim.PlayHead())
		}
	}

	c.current.Store(&Content{Visual: v, Token: req.token, anim: anim})
	return true
}

func newPlayHead(v *assets.Visual) *animations.Animation {
	if v.Type.Animated() {
		return animations.NewAnimation(v.Delays)
	}
	return animations.NewAnimation(make([]float64, v.FrameCount()))
}

// Current returns the installed content, or nil before the first successful load.
func (c *Controller) Current() *Content {
	return c.current.Load()
}

func (c *Controller) ContentType() assets.ContentType {
	if cur := c.current.Load(); cur != nil {
		return cur.Visual.Type
	}
	return assets.ContentNone
}

func (c *Controller) IsAnimated() bool {
	return c.ContentType().Animated()
}

// Path returns the path of the installed content.
func (c *Controller) Path() string {
	if cur := c.current.Load(); cur != nil {
		return cur.Visual.Path
	}
	return ""
}

// Generation returns the token of the installed content, 0 when nothing is installed.
func (c *Controller) Generation() uint64 {
	if cur := c.current.Load(); cur != nil {
		return cur.Token
	}
	return 0
}

// Tick advances the play-head by dt seconds.
func (c *Controller) Tick(dt float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur := c.current.Load(); cur != nil {
		cur.anim.Update(dt)
	}
}

// Frame returns the image for the current play-head position and its index.
func (c *Controller) Frame() (image.Image, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	if cur == nil {
		return nil, 0
	}
	i := cur.anim.Frame()
	return cur.Visual.Frame(i), i
}

// FrameIndex returns the play-head frame when generation is still installed.
// It reports false when nothing is installed or a newer generation replaced it,
// so frames cached for generation are never indexed with another play-head.
func (c *Controller) FrameIndex(generation uint64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	if cur == nil || cur.Token != generation {
		return 0, false
	}
	return cur.anim.Frame(), true
}

func (c *Controller) PlayHead() animations.PlayHead {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur := c.current.Load(); cur != nil {
		return cur.anim.PlayHead()
	}
	return animations.PlayHead{}
}

// SetRunning pauses or resumes animated content. It has no effect on static images.
func (c *Controller) SetRunning(running bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur := c.current.Load(); cur != nil && cur.Visual.Type.Animated() {
		cur.anim.Running = running
	}
}

// TogglePlayback flips the running flag and returns the new value.
func (c *Controller) TogglePlayback() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	if cur == nil || !cur.Visual.Type.Animated() {
		return false
	}
	cur.anim.Running = !cur.anim.Running
	return cur.anim.Running
}
