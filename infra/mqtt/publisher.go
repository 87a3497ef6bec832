// Package mqtt broadcasts computed price updates to an MQTT broker, one topic
// per flight id, so downstream consumers (displays, notification services)
// can follow fares without polling the API.
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/skyops/farecast/core/model"
	"github.com/skyops/farecast/infra/logger"
)

// Config defines the connection parameters for the price broadcaster.
type Config struct {
	Enabled     bool   `json:"enabled"`
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	TopicPrefix string `json:"topic_prefix"`
	QoS         byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.TopicPrefix == "" {
		c.TopicPrefix = "farecast/prices"
	}
	if c.ClientID == "" {
		c.ClientID = "farecast-" + uuid.NewString()[:8]
	}
}

// Validate checks mandatory fields when the broadcaster is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("mqtt: broker is required")
	}
	return nil
}

// pahoClient is the slice of the Paho API the publisher needs; tests swap it.
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Publisher broadcasts price updates over MQTT.
type Publisher struct {
	cli    pahoClient
	prefix string
	qos    byte
	log    logger.Logger
}

// NewPublisher connects to the broker and returns a ready Publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true)
	cli := newMQTTClient(opts)
	tok := cli.Connect()
	if !tok.WaitTimeout(10*time.Second) || tok.Error() != nil {
		return nil, fmt.Errorf("mqtt: connect: %w", tok.Error())
	}
	return &Publisher{
		cli:    cli,
		prefix: cfg.TopicPrefix,
		qos:    cfg.QoS,
		log:    logger.New("mqtt-publisher"),
	}, nil
}

// PublishUpdate sends the update as JSON on <prefix>/<flight id>.
func (p *Publisher) PublishUpdate(u model.PriceUpdate) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("mqtt: marshal update: %w", err)
	}
	topic := p.prefix + "/" + u.FlightID
	tok := p.cli.Publish(topic, p.qos, false, payload)
	if !tok.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("mqtt: publish to %s timed out", topic)
	}
	return tok.Error()
}

// Run drains the channel until it closes or the context is canceled.
// Publish failures are logged and do not stop the loop.
func (p *Publisher) Run(ctx context.Context, updates <-chan model.PriceUpdate) {
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return
			}
			if err := p.PublishUpdate(u); err != nil {
				p.log.Errorf("publish update for %s: %v", u.FlightID, err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
