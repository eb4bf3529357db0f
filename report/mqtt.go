package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

const (
	// DefaultTopicPrefix is the topic root used when none is configured.
	DefaultTopicPrefix = "satsp"

	// DefaultPublishTimeout bounds the wait on each publish token.
	DefaultPublishTimeout = 2 * time.Second
)

// ErrPublishTimeout is recorded when a publish token does not complete in time.
var ErrPublishTimeout = errors.New("report: mqtt publish timed out")

// Publisher is the slice of mqtt.Client the observer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// snapshotMessage is the JSON body published on <prefix>/snapshot.
type snapshotMessage struct {
	Run         int     `json:"run"`
	Iteration   int     `json:"iteration"`
	State       string  `json:"state"`
	Temperature float64 `json:"temperature"`
	Cost        float64 `json:"cost"`
	BestCost    float64 `json:"best_cost"`
	Accepted    bool    `json:"accepted"`
	Tour        []int   `json:"tour"`
	Timestamp   int64   `json:"timestamp"`
}

// resultMessage is the retained JSON body published on <prefix>/result.
type resultMessage struct {
	BestTour         []int    `json:"best_tour"`
	BestCost         float64  `json:"best_cost"`
	FinalTemperature float64  `json:"final_temperature"`
	Iterations       int      `json:"iterations"`
	AcceptanceRate   float64  `json:"acceptance_rate"`
	Names            []string `json:"names,omitempty"`
	Timestamp        int64    `json:"timestamp"`
}

// MQTTObserver streams search snapshots to an MQTT broker.
// It is safe to share between concurrent searches.
type MQTTObserver struct {
	pub     Publisher
	prefix  string
	qos     byte
	timeout time.Duration
	every   int
	run     int
	now     func() time.Time

	mu        sync.Mutex
	seen      int
	published int
	failed    int
}

// NewMQTTObserver returns an observer publishing through pub under prefix.
// An empty prefix falls back to DefaultTopicPrefix.
func NewMQTTObserver(pub Publisher, prefix string) *MQTTObserver {
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}

	return &MQTTObserver{
		pub:     pub,
		prefix:  prefix,
		timeout: DefaultPublishTimeout,
		every:   1,
		now:     time.Now,
	}
}

// SetQoS sets the QoS level for snapshot and result messages (0, 1 or 2).
func (o *MQTTObserver) SetQoS(qos byte) {
	if qos <= 2 {
		o.qos = qos
	}
}

// SetEvery publishes only every n-th snapshot. Terminal snapshots are always sent.
func (o *MQTTObserver) SetEvery(n int) {
	if n > 0 {
		o.every = n
	}
}

// SetTimeout overrides DefaultPublishTimeout.
func (o *MQTTObserver) SetTimeout(d time.Duration) {
	if d > 0 {
		o.timeout = d
	}
}

// ForRun returns a copy tagged with a run index, sharing the publisher and
// the counters of o.
func (o *MQTTObserver) ForRun(run int) tsp.Observer {
	return &runObserver{parent: o, run: run}
}

// Observe implements tsp.Observer.
func (o *MQTTObserver) Observe(s tsp.Snapshot) {
	o.observe(o.run, s)
}

func (o *MQTTObserver) observe(run int, s tsp.Snapshot) {
	o.mu.Lock()
	o.seen++
	skip := s.State != tsp.Terminated && s.Iteration%o.every != 0
	o.mu.Unlock()
	if skip {
		return
	}

	msg := snapshotMessage{
		Run:         run,
		Iteration:   s.Iteration,
		State:       s.State.String(),
		Temperature: s.Temperature,
		Cost:        s.Cost,
		BestCost:    s.BestCost,
		Accepted:    s.Accepted,
		Tour:        s.Tour,
		Timestamp:   o.now().Unix(),
	}
	if err := o.publish("snapshot", false, msg); err != nil {
		glog.Warningf("mqtt snapshot run=%d iteration=%d: %v", run, s.Iteration, err)
	}
}

// PublishResult sends the final result as a retained message on <prefix>/result.
func (o *MQTTObserver) PublishResult(res tsp.Result, names []string) error {
	msg := resultMessage{
		BestTour:         res.BestTour,
		BestCost:         res.BestCost,
		FinalTemperature: res.FinalTemperature,
		Iterations:       res.Iterations,
		AcceptanceRate:   res.AcceptanceRate(),
		Timestamp:        o.now().Unix(),
	}
	if names != nil {
		msg.Names = make([]string, len(res.BestTour))
		for k, idx := range res.BestTour {
			if idx >= 0 && idx < len(names) {
				msg.Names[k] = names[idx]
			}
		}
	}

	return o.publish("result", true, msg)
}

// Stats reports how many snapshots were observed, and how many messages were
// published or failed.
func (o *MQTTObserver) Stats() (seen, published, failed int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.seen, o.published, o.failed
}

func (o *MQTTObserver) publish(leaf string, retained bool, body interface{}) error {
	topic := fmt.Sprintf("%s/%s", o.prefix, leaf)

	payload, err := json.Marshal(body)
	if err != nil {
		o.countFailure()
		return fmt.Errorf("marshaling %s: %w", leaf, err)
	}

	token := o.pub.Publish(topic, o.qos, retained, payload)
	if !token.WaitTimeout(o.timeout) {
		o.countFailure()
		return fmt.Errorf("%w: %s", ErrPublishTimeout, topic)
	}
	if err = token.Error(); err != nil {
		o.countFailure()
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	o.mu.Lock()
	o.published++
	o.mu.Unlock()

	return nil
}

func (o *MQTTObserver) countFailure() {
	o.mu.Lock()
	o.failed++
	o.mu.Unlock()
}

type runObserver struct {
	parent *MQTTObserver
	run    int
}

func (r *runObserver) Observe(s tsp.Snapshot) { r.parent.observe(r.run, s) }

// ConnectMQTT dials broker and waits up to timeout for the connection.
func ConnectMQTT(broker, clientID string, timeout time.Duration) (mqtt.Client, error) {
	if clientID == "" {
		clientID = DefaultTopicPrefix
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(timeout)
	opts.SetOrderMatters(false)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("connecting to %s: timed out after %v", broker, timeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", broker, err)
	}
	glog.Infof("connected to mqtt broker %s as %s", broker, clientID)

	return client, nil
}
