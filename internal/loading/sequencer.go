package loading

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// Phrases is the fixed status sequence shown while an analysis request is
// in flight. Cosmetic only.
var Phrases = []string{
	"Analyzing global events...",
	"Searching investment literature...",
	"Processing company fundamentals...",
	"Generating AI insights...",
	"Crafting your investment story...",
}

// Sequencer drives the loading display: a spinner glyph plus the status
// phrases, each revealed character by character. It is an explicit
// cancellable task: it checks its context before each phrase and before
// each character, stops cleanly when the result arrives, and never writes
// after Stop returns.
type Sequencer struct {
	spin      *spinner.Spinner
	interval  time.Duration
	charDelay time.Duration

	mu    sync.Mutex
	shown string

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

func New(out io.Writer) *Sequencer {
	sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(out))
	return &Sequencer{
		spin:      sp,
		interval:  2 * time.Second,
		charDelay: 50 * time.Millisecond,
		done:      make(chan struct{}),
	}
}

// SetTimings overrides the phrase interval and per-character reveal delay.
// A zero charDelay disables the typewriter effect.
func (s *Sequencer) SetTimings(interval, charDelay time.Duration) {
	s.interval = interval
	s.charDelay = charDelay
}

// Start begins the sequence. It returns immediately; the sequence advances
// on its own until it runs out of phrases or the context is cancelled.
func (s *Sequencer) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.spin.Start()
	go s.run(ctx)
}

// Stop cancels the sequence and blocks until no further writes can occur.
// Safe to call more than once.
func (s *Sequencer) Stop() {
	s.stopOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		}
		s.spin.Stop()
	})
}

// Current returns the most recently revealed status text.
func (s *Sequencer) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

func (s *Sequencer) run(ctx context.Context) {
	defer close(s.done)

	for _, phrase := range Phrases {
		if !s.reveal(ctx, phrase) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.interval):
		}
	}
}

// reveal types out one phrase. Returns false when cancelled mid-phrase.
func (s *Sequencer) reveal(ctx context.Context, phrase string) bool {
	for i := 1; i <= len(phrase); i++ {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		s.show(phrase[:i])

		if s.charDelay > 0 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(s.charDelay):
			}
		}
	}
	return true
}

func (s *Sequencer) show(text string) {
	s.mu.Lock()
	s.shown = text
	s.mu.Unlock()
	s.spin.Suffix = " " + text
}
