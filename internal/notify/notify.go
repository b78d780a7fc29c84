package notify

import (
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Severity classifies a notification.
type Severity int

const (
	Success Severity = iota
	Warning
	Error
	Info
)

// accent markers and colors, one distinct pair per severity.
var accents = map[Severity]struct {
	marker string
	color  *color.Color
}{
	Success: {"✔", color.New(color.FgGreen, color.Bold)},
	Warning: {"⚠", color.New(color.FgYellow, color.Bold)},
	Error:   {"✖", color.New(color.FgRed, color.Bold)},
	Info:    {"ℹ", color.New(color.FgCyan, color.Bold)},
}

// Notification is one transient user-facing message.
type Notification struct {
	ID       int
	Severity Severity
	Message  string
	PostedAt time.Time
}

// Notifier appends dismissible messages to a shared output. Each message
// self-dismisses after a fixed delay or earlier on explicit Dismiss.
// Nothing caps how many may accumulate; that matches observed behavior
// under rapid repeated failures.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	ttl    time.Duration
	nextID int
	alive  map[int]Notification
	timers map[int]*time.Timer
}

func New(out io.Writer) *Notifier {
	return &Notifier{
		out:    out,
		ttl:    5 * time.Second,
		alive:  map[int]Notification{},
		timers: map[int]*time.Timer{},
	}
}

// SetTTL overrides the auto-dismiss delay.
func (n *Notifier) SetTTL(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ttl = d
}

// Push displays a message and schedules its auto-dismissal. Returns the
// notification id for explicit dismissal.
func (n *Notifier) Push(sev Severity, msg string) int {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.alive[id] = Notification{ID: id, Severity: sev, Message: msg, PostedAt: time.Now()}
	n.timers[id] = time.AfterFunc(n.ttl, func() { n.Dismiss(id) })
	out := n.out
	n.mu.Unlock()

	accent := accents[sev]
	accent.color.Fprintf(out, "%s %s\n", accent.marker, msg)
	return id
}

// Dismiss removes a notification before its timer fires. Dismissing an
// unknown id is a no-op.
func (n *Notifier) Dismiss(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}
	delete(n.alive, id)
}

// Active returns the notifications that have not yet been dismissed.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, 0, len(n.alive))
	for _, v := range n.alive {
		out = append(out, v)
	}
	return out
}

func (n *Notifier) Success(msg string) int { return n.Push(Success, msg) }
func (n *Notifier) Warning(msg string) int { return n.Push(Warning, msg) }
func (n *Notifier) Error(msg string) int   { return n.Push(Error, msg) }
func (n *Notifier) Info(msg string) int    { return n.Push(Info, msg) }
