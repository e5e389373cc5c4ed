package feedback

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/posecheck/internal/telemetry/metrics"
)

const (
	DefaultQueueSize = 32

	dropReasonQueueFull = "queue_full"
	dropReasonDuplicate = "duplicate"
)

type message struct {
	sessionID string
	text      string
}

type spoken struct {
	text string
	at   time.Time
}

type NewDispatcherParams struct {
	Speaker        Speaker
	QueueSize      int
	DedupWindow    time.Duration
	MetricsManager *metrics.Manager
}

// Dispatcher speaks feedback messages one at a time, in the order they were
// accepted. Notify never blocks the caller: messages are dropped when the
// queue is full, or when the same text is already waiting or was just spoken
// for the same session.
type Dispatcher struct {
	speaker        Speaker
	queue          chan message
	dedupWindow    time.Duration
	metricsManager *metrics.Manager

	mutex      sync.Mutex
	pending    map[string]map[string]int
	lastSpoken map[string]spoken
	lastSweep  time.Time
	closed     bool
	running    bool
	done       chan struct{}

	now func() time.Time
}

func NewDispatcher(params NewDispatcherParams) *Dispatcher {
	queueSize := params.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	speaker := params.Speaker
	if speaker == nil {
		speaker = LogSpeaker{}
	}

	return &Dispatcher{
		speaker:        speaker,
		queue:          make(chan message, queueSize),
		dedupWindow:    params.DedupWindow,
		metricsManager: params.MetricsManager,
		pending:        make(map[string]map[string]int),
		lastSpoken:     make(map[string]spoken),
		done:           make(chan struct{}),
		now:            time.Now,
	}
}

// Notify enqueues messages for a session and returns how many were accepted.
func (d *Dispatcher) Notify(sessionID string, texts ...string) int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return 0
	}

	accepted := 0
	for _, text := range texts {
		if d.isDuplicate(sessionID, text) {
			d.metricsManager.CounterFeedbackDropped.WithLabelValues(dropReasonDuplicate).Inc()
			continue
		}

		select {
		case d.queue <- message{sessionID: sessionID, text: text}:
			if d.pending[sessionID] == nil {
				d.pending[sessionID] = make(map[string]int)
			}
			d.pending[sessionID][text]++
			accepted++
		default:
			log.Warnf("feedback queue full, dropping [%s] for session %s", text, sessionID)
			d.metricsManager.CounterFeedbackDropped.WithLabelValues(dropReasonQueueFull).Inc()
		}
	}

	d.metricsManager.GaugeFeedbackQueue.Set(float64(len(d.queue)))
	return accepted
}

// must be called with the mutex held
func (d *Dispatcher) isDuplicate(sessionID, text string) bool {
	if d.pending[sessionID][text] > 0 {
		return true
	}
	last, ok := d.lastSpoken[sessionID]
	if !ok || last.text != text {
		return false
	}
	return d.now().Sub(last.at) < d.dedupWindow
}

// sweepLastSpoken drops entries that can no longer suppress a message, at
// most once per dedup window. Must be called with the mutex held.
func (d *Dispatcher) sweepLastSpoken(now time.Time) {
	if now.Sub(d.lastSweep) < d.dedupWindow {
		return
	}
	d.lastSweep = now
	for sessionID, last := range d.lastSpoken {
		if now.Sub(last.at) >= d.dedupWindow {
			delete(d.lastSpoken, sessionID)
		}
	}
}

// Forget drops what the dispatcher remembers about a session. Messages
// already queued for it are still spoken.
func (d *Dispatcher) Forget(sessionID string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.lastSpoken, sessionID)
}

// Run speaks queued messages until ctx is done or the dispatcher is closed
// and drained. Only the first call does any work.
func (d *Dispatcher) Run(ctx context.Context) {
	d.mutex.Lock()
	if d.running {
		d.mutex.Unlock()
		return
	}
	d.running = true
	d.mutex.Unlock()

	defer close(d.done)

	for {
		select {
		case <-ctx.Done():
			log.Debugln("feedback dispatcher stopped")
			return
		case msg, ok := <-d.queue:
			if !ok {
				log.Debugln("feedback dispatcher drained")
				return
			}
			d.speak(ctx, msg)
		}
	}
}

func (d *Dispatcher) speak(ctx context.Context, msg message) {
	d.mutex.Lock()
	if pending := d.pending[msg.sessionID]; pending != nil {
		pending[msg.text]--
		if pending[msg.text] <= 0 {
			delete(pending, msg.text)
		}
		if len(pending) == 0 {
			delete(d.pending, msg.sessionID)
		}
	}
	now := d.now()
	if d.dedupWindow > 0 {
		d.lastSpoken[msg.sessionID] = spoken{text: msg.text, at: now}
	}
	d.sweepLastSpoken(now)
	d.metricsManager.GaugeFeedbackQueue.Set(float64(len(d.queue)))
	d.mutex.Unlock()

	if err := d.speaker.Say(ctx, msg.text); err != nil {
		log.Errorf("speak feedback for session %s: %s", msg.sessionID, err)
		d.metricsManager.CounterSpeakerErrors.Inc()
		return
	}
	d.metricsManager.CounterFeedbackSpoken.Inc()
}

// Close stops accepting messages. If Run is active, Close waits until the
// queued messages are spoken.
func (d *Dispatcher) Close() {
	d.mutex.Lock()
	if d.closed {
		d.mutex.Unlock()
		return
	}
	d.closed = true
	running := d.running
	close(d.queue)
	d.mutex.Unlock()

	if running {
		<-d.done
	}
}
