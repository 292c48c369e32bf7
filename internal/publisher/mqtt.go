package publisher

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/jgoulah/utilityview/internal/config"
	"github.com/jgoulah/utilityview/internal/dataset"
)

const publishTimeout = 10 * time.Second

// client is the subset of mqtt.Client the publisher needs
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	IsConnected() bool
	Disconnect(quiesce uint)
}

// Publisher publishes annual series to an MQTT broker as retained messages
type Publisher struct {
	client      client
	topicPrefix string
	now         func() time.Time
}

// New connects to the broker described by cfg
func New(cfg config.MQTTConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("MQTT publishing is not enabled in config")
	}
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID(cfg.GetClientID())
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(false)
	opts.SetConnectTimeout(10 * time.Second)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}

	return newWithClient(c, cfg.GetTopicPrefix()), nil
}

func newWithClient(c client, topicPrefix string) *Publisher {
	return &Publisher{client: c, topicPrefix: topicPrefix, now: time.Now}
}

// SeriesPayload is the JSON document published for a whole series
type SeriesPayload struct {
	View      string              `json:"view"`
	Columns   []string            `json:"columns"`
	Rows      []dataset.SeriesRow `json:"rows"`
	UpdatedAt string              `json:"updated_at"`
}

// YearPayload is the JSON document published for one year of a series
type YearPayload struct {
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

// PublishSeries publishes the series to <prefix>/<view> and each year to
// <prefix>/<view>/<year>. It returns the number of messages sent.
func (p *Publisher) PublishSeries(series dataset.Series) (int, error) {
	base := fmt.Sprintf("%s/%s", p.topicPrefix, series.Name)

	doc := SeriesPayload{
		View:      series.Name,
		Columns:   series.Columns,
		Rows:      series.Rows,
		UpdatedAt: p.now().UTC().Format(time.RFC3339),
	}
	if err := p.publishJSON(base, doc); err != nil {
		return 0, err
	}
	sent := 1

	for _, row := range series.Rows {
		values := make(map[string]float64, len(series.Columns))
		for i, col := range series.Columns {
			if i < len(row.Values) {
				values[col] = row.Values[i]
			}
		}
		topic := base + "/" + strconv.Itoa(row.Year)
		if err := p.publishJSON(topic, YearPayload{Year: row.Year, Values: values}); err != nil {
			return sent, err
		}
		sent++
	}

	return sent, nil
}

func (p *Publisher) publishJSON(topic string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	token := p.client.Publish(topic, 1, true, body)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publishing to %s: timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
