package booking

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/party-bliss/internal/model"
)

// DefaultThrottleWindow is the minimum time between two accepted submissions
// of the same form instance.
const DefaultThrottleWindow = 10 * time.Second

// ThrottleNotice is the blocking message shown for a throttled attempt.
func ThrottleNotice(window time.Duration) string {
	return fmt.Sprintf("Please wait %d seconds before submitting again.", int(math.Ceil(window.Seconds())))
}

// Outcome is the state a submit attempt ends in.
type Outcome int

const (
	OutcomeIdle Outcome = iota
	OutcomeThrottled
	OutcomeSpam
	OutcomeValidating
	OutcomeRejected
	OutcomeAccepted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeThrottled:
		return "throttled"
	case OutcomeSpam:
		return "spam"
	case OutcomeValidating:
		return "validating"
	case OutcomeRejected:
		return "rejected"
	case OutcomeAccepted:
		return "accepted"
	}
	return "idle"
}

// Logger is the subset of the echo/gommon logger the guard writes to.
type Logger interface {
	Infoj(j log.JSON)
	Warnf(format string, args ...interface{})
}

// Acceptance describes an accepted enquiry.  Contact details are left out on
// purpose: nothing downstream may keep them.
type Acceptance struct {
	InstanceID string
	Package    string
	Addons     []string
	Guests     int
	Date       string
	Time       string
	Totals     PriceBreakdown
	AcceptedAt time.Time
}

// Notifier acknowledges accepted enquiries.
type Notifier interface {
	EnquiryAccepted(ctx context.Context, a Acceptance) error
}

// LogNotifier acknowledges an enquiry by writing a log line.
type LogNotifier struct{ Log Logger }

func (n LogNotifier) EnquiryAccepted(_ context.Context, a Acceptance) error {
	n.Log.Infoj(log.JSON{
		"event":       "enquiry_accepted",
		"instance_id": a.InstanceID,
		"package":     a.Package,
		"addons":      a.Addons,
		"guests":      a.Guests,
		"grand":       a.Totals.Grand,
		"accepted_at": a.AcceptedAt.UTC().Format(time.RFC3339),
	})
	return nil
}

// Guard decides whether a submit attempt may reach validation and records
// accepted attempts.  It implements a fixed-window throttle per form instance
// followed by a honeypot check.
type Guard struct {
	Window   time.Duration
	Throttle ThrottleStore
	Notifier Notifier
	Log      Logger
	Now      func() time.Time
}

// NewGuard wires a guard.  A non-positive window falls back to
// DefaultThrottleWindow and a nil notifier to a LogNotifier.
func NewGuard(window time.Duration, throttle ThrottleStore, notifier Notifier, logger Logger) *Guard {
	if window <= 0 {
		window = DefaultThrottleWindow
	}
	if throttle == nil {
		throttle = NewMemoryThrottle()
	}
	if notifier == nil {
		notifier = LogNotifier{Log: logger}
	}
	return &Guard{
		Window:   window,
		Throttle: throttle,
		Notifier: notifier,
		Log:      logger,
		Now:      time.Now,
	}
}

// Check runs the throttle and honeypot steps.  It returns OutcomeThrottled
// with the remaining wait, OutcomeSpam, or OutcomeValidating when the attempt
// may be validated.  Neither rejection mutates any state.
func (g *Guard) Check(ctx context.Context, key string, f model.BookingForm, now time.Time) (Outcome, time.Duration) {
	last, err := g.Throttle.LastAccepted(ctx, key)
	if err != nil {
		// fail open like the HTTP rate limiter
		g.Log.Warnf("[guard] throttle lookup failed for %s: %v", key, err)
	} else if !last.IsZero() {
		if elapsed := now.Sub(last); elapsed < g.Window {
			return OutcomeThrottled, g.Window - elapsed
		}
	}

	if strings.TrimSpace(f.Lastname) != "" {
		g.Log.Warnf("[guard] honeypot filled, submission dropped instance=%s", key)
		return OutcomeSpam, 0
	}
	return OutcomeValidating, 0
}

// Accept records the acceptance time for the throttle and acknowledges the
// enquiry.  Store and notifier failures are logged, never returned: the
// visitor's submission has already been accepted.
func (g *Guard) Accept(ctx context.Context, a Acceptance) {
	if err := g.Throttle.MarkAccepted(ctx, a.InstanceID, a.AcceptedAt); err != nil {
		g.Log.Warnf("[guard] throttle update failed for %s: %v", a.InstanceID, err)
	}
	if err := g.Notifier.EnquiryAccepted(ctx, a); err != nil {
		g.Log.Warnf("[guard] acknowledgment failed for %s: %v", a.InstanceID, err)
	}
}

func (g *Guard) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}
