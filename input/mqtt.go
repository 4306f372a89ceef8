package input

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"
	"github.com/enetx/g"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/enetx/microwave"
)

// MQTTConfig configures the MQTT remote-control source.
type MQTTConfig struct {
	BrokerURL string
	Topic     string
	ClientID  string // defaults to "microwave-" plus a random uuid
	KeepAlive uint16 // seconds; defaults to 20
}

// MQTT subscribes to a control topic and turns the first rune of each
// message payload into an event symbol. Messages arriving faster than the
// controller polls are buffered; overflow is dropped rather than blocking
// the broker callback.
type MQTT struct {
	cliCfg autopaho.ClientConfig
	conn   *autopaho.ConnectionManager
	topic  string
	events chan microwave.Event
	log    *zap.Logger
}

// NewMQTT creates an MQTT source for the given broker and topic. Connect
// must be called before polling yields anything.
func NewMQTT(cfg MQTTConfig, log *zap.Logger) (*MQTT, error) {
	u, err := url.Parse(cfg.BrokerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid broker url: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}

	if cfg.ClientID == "" {
		cfg.ClientID = "microwave-" + uuid.NewString()
	}

	if cfg.KeepAlive == 0 {
		cfg.KeepAlive = 20
	}

	src := &MQTT{
		topic:  cfg.Topic,
		events: make(chan microwave.Event, 16),
		log:    log,
	}

	src.cliCfg = autopaho.ClientConfig{
		BrokerUrls: []*url.URL{u},
		KeepAlive:  cfg.KeepAlive,
		OnConnectionUp: func(*autopaho.ConnectionManager, *paho.Connack) {
			log.Info("mqtt connection up", zap.String("topic", cfg.Topic))
		},
		OnConnectError: func(err error) {
			log.Warn("mqtt connect error", zap.Error(err))
		},
		ClientConfig: paho.ClientConfig{
			ClientID: cfg.ClientID,
			Router: paho.NewSingleHandlerRouter(func(m *paho.Publish) {
				symbol := decodeSymbol(m.Payload)
				if symbol.IsNone() {
					return
				}

				select {
				case src.events <- symbol.Some():
				default:
					log.Warn("mqtt event dropped", zap.ByteString("payload", m.Payload))
				}
			}),
			OnClientError: func(err error) {
				log.Warn("mqtt client error", zap.Error(err))
			},
		},
	}

	return src, nil
}

// Connect establishes the broker connection and subscribes to the control
// topic.
func (s *MQTT) Connect(ctx context.Context) error {
	conn, err := autopaho.NewConnection(ctx, s.cliCfg)
	if err != nil {
		return err
	}

	if err := conn.AwaitConnection(ctx); err != nil {
		return err
	}

	if _, err := conn.Subscribe(ctx, &paho.Subscribe{
		Subscriptions: []paho.SubscribeOptions{{Topic: s.topic, QoS: 1}},
	}); err != nil {
		return err
	}

	s.conn = conn

	return nil
}

// Disconnect closes the broker connection.
func (s *MQTT) Disconnect(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}

	return s.conn.Disconnect(ctx)
}

// Poll drains at most one buffered symbol without blocking.
func (s *MQTT) Poll() g.Option[microwave.Event] {
	select {
	case event := <-s.events:
		return g.Some(event)
	default:
		return g.None[microwave.Event]()
	}
}

// decodeSymbol extracts the first rune of a payload as an event symbol.
// Whitespace-only and invalid payloads decode to nothing.
func decodeSymbol(payload []byte) g.Option[microwave.Event] {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return g.None[microwave.Event]()
	}

	r, _ := utf8.DecodeRune(trimmed)
	if r == utf8.RuneError {
		return g.None[microwave.Event]()
	}

	return g.Some(microwave.EventFrom(r))
}
