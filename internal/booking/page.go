package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/party-bliss/internal/model"
)

// DefaultAckDuration is how long the "thanks, we received your enquiry"
// acknowledgment stays visible after an accepted submission.
const DefaultAckDuration = 4 * time.Second

// Page is one visitor's form instance: the booking form plus the touched,
// suspended and acknowledgment state around it.  Every method is safe for
// concurrent use; requests for the same instance are serialized.
//
// Validation runs only once the form is touched (first submit attempt).  From
// then on every edit re-validates, except right after an accepted submission,
// when validation stays suspended until the next edit.
type Page struct {
	mu sync.Mutex

	id          string
	guard       *Guard
	ackDuration time.Duration

	form      model.BookingForm
	touched   bool
	suspended bool
	errs      Errors

	acknowledged bool
	ackTimer     *time.Timer
	ackSeq       uint64
	closed       bool
}

// NewPage creates a form instance with default field values.
func NewPage(id string, guard *Guard, ackDuration time.Duration) *Page {
	if ackDuration <= 0 {
		ackDuration = DefaultAckDuration
	}
	return &Page{
		id:          id,
		guard:       guard,
		ackDuration: ackDuration,
		form:        model.NewBookingForm(),
		errs:        Errors{},
	}
}

// ID returns the form instance id.
func (p *Page) ID() string { return p.id }

// Snapshot is a read-only view of a form instance.
type Snapshot struct {
	ID           string            `json:"id"`
	Form         model.BookingForm `json:"form"`
	Totals       PriceBreakdown    `json:"totals"`
	Errors       Errors            `json:"errors"`
	Touched      bool              `json:"touched"`
	Acknowledged bool              `json:"acknowledged"`
}

// DefaultSnapshot is the view of a form instance that has not been created
// yet: default field values and nothing touched.
func DefaultSnapshot(id string) Snapshot {
	f := model.NewBookingForm()
	return Snapshot{
		ID:     id,
		Form:   f,
		Totals: ComputeTotals(f.Package, f.Addons, f.Guests),
		Errors: Errors{},
	}
}

// Snapshot copies the current state.
func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		ID:           p.id,
		Form:         p.form.Clone(),
		Totals:       p.totals(),
		Errors:       p.visibleErrors(),
		Touched:      p.touched,
		Acknowledged: p.acknowledged,
	}
}

// Totals recomputes the quote for the current selections.
func (p *Page) Totals() PriceBreakdown {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals()
}

// Errors returns the errors currently shown; empty until the form is touched.
func (p *Page) Errors() Errors {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visibleErrors()
}

// Set edits a single scalar field.  Add-ons are edited with ToggleAddon or
// SetAddons.
func (p *Page) Set(field, value string) error {
	return p.Apply(map[string]string{field: value})
}

// Apply edits several scalar fields at once.  Either every edit is applied
// or, on the first invalid one, none is.
func (p *Page) Apply(fields map[string]string) error {
	return p.Edit(fields, nil)
}

// Edit applies scalar field edits and, when addons is non-nil, replaces the
// add-on selection in one step.  An invalid field or add-on id leaves the
// form unchanged.
func (p *Page) Edit(fields map[string]string, addons *[]string) error {
	var selection []string
	if addons != nil {
		var err error
		if selection, err = normalizeAddons(*addons); err != nil {
			return err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.form.Clone()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := setField(&next, k, fields[k]); err != nil {
			return err
		}
	}
	if addons != nil {
		next.Addons = selection
	}
	p.form = next
	p.edited()
	return nil
}

// ToggleAddon selects the add-on if it is not selected and deselects it
// otherwise.
func (p *Page) ToggleAddon(id string) error {
	if _, ok := model.FindAddon(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAddon, id)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.form.HasAddon(id) {
		kept := make([]string, 0, len(p.form.Addons))
		for _, a := range p.form.Addons {
			if a != id {
				kept = append(kept, a)
			}
		}
		p.form.Addons = kept
	} else {
		p.form.Addons = append(p.form.Addons, id)
	}
	p.edited()
	return nil
}

// SetAddons replaces the add-on selection.  Duplicates are collapsed and
// unknown ids reject the whole selection.
func (p *Page) SetAddons(ids []string) error {
	return p.Edit(nil, &ids)
}

func normalizeAddons(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := model.FindAddon(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddon, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// SubmitResult reports how a submit attempt ended.
type SubmitResult struct {
	Outcome    Outcome
	RetryAfter time.Duration
	Notice     string
	Errors     Errors
}

// Submit runs a submit attempt through the guard and the validator.
//
// A throttled or honeypot attempt changes nothing.  An invalid attempt marks
// the form touched and exposes the errors.  An accepted attempt is recorded
// by the guard, clears the contact fields and consent, suspends validation
// until the next edit and shows the acknowledgment for the ack duration.
func (p *Page) Submit(ctx context.Context) SubmitResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.guard.now()
	outcome, wait := p.guard.Check(ctx, p.id, p.form, now)
	switch outcome {
	case OutcomeThrottled:
		return SubmitResult{Outcome: outcome, RetryAfter: wait, Notice: ThrottleNotice(p.guard.Window)}
	case OutcomeSpam:
		return SubmitResult{Outcome: outcome}
	}

	p.touched = true
	p.errs = Validate(p.form)
	if !p.errs.Empty() {
		return SubmitResult{Outcome: OutcomeRejected, Errors: p.errs.Clone()}
	}

	p.guard.Accept(ctx, Acceptance{
		InstanceID: p.id,
		Package:    p.form.Package,
		Addons:     append([]string(nil), p.form.Addons...),
		Guests:     p.form.Guests,
		Date:       p.form.Date,
		Time:       p.form.Time,
		Totals:     p.totals(),
		AcceptedAt: now,
	})

	p.form.ClearContact()
	p.suspended = true
	p.acknowledge()
	return SubmitResult{Outcome: OutcomeAccepted, Errors: Errors{}}
}

// Close tears the instance down and cancels a pending acknowledgment timer.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ackTimer != nil {
		p.ackTimer.Stop()
		p.ackTimer = nil
	}
	p.acknowledged = false
	p.closed = true
}

// Closed reports whether Close was called.
func (p *Page) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *Page) totals() PriceBreakdown {
	return ComputeTotals(p.form.Package, p.form.Addons, p.form.Guests)
}

func (p *Page) visibleErrors() Errors {
	if !p.touched || p.suspended {
		return Errors{}
	}
	return p.errs.Clone()
}

// edited ends a post-acceptance suspension and re-validates a touched form.
func (p *Page) edited() {
	p.suspended = false
	if p.touched {
		p.errs = Validate(p.form)
	}
}

func (p *Page) acknowledge() {
	if p.closed {
		return
	}
	if p.ackTimer != nil {
		p.ackTimer.Stop()
	}
	p.ackSeq++
	seq := p.ackSeq
	p.acknowledged = true
	p.ackTimer = time.AfterFunc(p.ackDuration, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.ackSeq == seq {
			p.acknowledged = false
			p.ackTimer = nil
		}
	})
}

func setField(f *model.BookingForm, field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldLastname:
		f.Lastname = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldDate:
		f.Date = value
	case FieldTime:
		f.Time = value
	case FieldNotes:
		f.Notes = value
	case FieldGuests:
		f.Guests = parseGuests(value)
	case FieldPackage:
		if _, ok := model.FindPackage(value); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPackage, value)
		}
		f.Package = value
	case FieldAgree:
		f.Agree = parseAgree(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// parseGuests reads a typed guest count.  Blank or unparseable input counts
// as zero guests; the result is clamped to [0, MaxGuests].
func parseGuests(s string) int {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
			return MaxGuests
		}
		return 0
	}
	return ClampGuests(n)
}

// parseAgree accepts the HTML checkbox value "on" as well as boolean strings.
func parseAgree(s string) bool {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "on") || strings.EqualFold(s, "yes") {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
