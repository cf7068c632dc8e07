// Package rmq consumes lemmatizer tasks and publishes finished chunks back
// to the sequencer.
package rmq

import (
	"fmt"
	"gdtools.org/lemmatizer/logger"
	"github.com/kelseyhightower/envconfig"
	"github.com/streadway/amqp"
)

type Config struct {
	Host                    string `envconfig:"GDL_RMQ_HOST" required:"true"`
	Port                    int    `envconfig:"GDL_RMQ_PORT" required:"true"`
	Username                string `envconfig:"GDL_RMQ_USERNAME" required:"true"`
	Password                string `envconfig:"GDL_RMQ_PASSWORD" required:"true"`
	Vhost                   string `envconfig:"GDL_RMQ_VHOST" default:"/"`
	Exchange                string `envconfig:"GDL_RMQ_DEFAULT_EXCHANGE" default:"gdtools-default-exchange"`
	MaxParallelRequestCount int    `envconfig:"GDL_MQ_MAX_PARALLEL_REQUESTS" default:"5"`
	LemmatizerTaskQueue     string `envconfig:"GDL_LEMMATIZER_TASK_QUEUE" required:"true"`
	SequencerTaskQueue      string `envconfig:"GDL_SEQUENCER_TASK_QUEUE" required:"true"`
}

// URI is the broker address built from the config.
func (config Config) URI() string {
	return amqp.URI{
		Scheme:   "amqp",
		Host:     config.Host,
		Port:     config.Port,
		Username: config.Username,
		Password: config.Password,
		Vhost:    config.Vhost,
	}.String()
}

// Client holds separate connections for consuming and publishing, so a
// blocked publisher never stalls deliveries.
type Client struct {
	Deliveries     <-chan amqp.Delivery
	ReqChanErrors  <-chan *amqp.Error
	RespChanErrors <-chan *amqp.Error

	config      Config
	reqConn     *amqp.Connection
	respConn    *amqp.Connection
	respChannel *amqp.Channel
}

func NewClient() (*Client, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read rmq config: %w", err)
	}
	rmqLogger := logger.NewLogger("RMQ client").With().
		Str("queue", config.LemmatizerTaskQueue).Logger()

	client := &Client{config: config}
	var reqChannel *amqp.Channel
	var err error
	if client.reqConn, reqChannel, err = dial(config.URI()); err != nil {
		return nil, err
	}
	if client.respConn, client.respChannel, err = dial(config.URI()); err != nil {
		client.Close()
		return nil, err
	}
	if client.Deliveries, err = consume(reqChannel, config); err != nil {
		client.Close()
		return nil, err
	}
	client.ReqChanErrors = reqChannel.NotifyClose(make(chan *amqp.Error))
	client.RespChanErrors = client.respChannel.NotifyClose(make(chan *amqp.Error))

	rmqLogger.Info().Int("prefetch", config.MaxParallelRequestCount).Msg("Consuming lemmatizer tasks")
	return client, nil
}

// consume binds the task queue to the exchange and starts consuming it
// with manual acknowledgement.
func consume(ch *amqp.Channel, config Config) (<-chan amqp.Delivery, error) {
	queue, err := ch.QueueDeclarePassive(config.LemmatizerTaskQueue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", config.LemmatizerTaskQueue, err)
	}
	if err = ch.QueueBind(queue.Name, queue.Name, config.Exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind %s: %w", queue.Name, err)
	}
	if err = ch.Qos(config.MaxParallelRequestCount, 0, false); err != nil {
		return nil, fmt.Errorf("qos: %w", err)
	}
	deliveries, err := ch.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %s: %w", queue.Name, err)
	}
	return deliveries, nil
}

// SendMessageToSequencer hands a processed chunk back to the sequencer queue.
func (c *Client) SendMessageToSequencer(msg amqp.Publishing) error {
	return c.respChannel.Publish(c.config.Exchange, c.config.SequencerTaskQueue, false, false, msg)
}

func (c *Client) Close() {
	for _, conn := range []*amqp.Connection{c.reqConn, c.respConn} {
		if conn != nil {
			_ = conn.Close()
		}
	}
}

func dial(uri string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, nil, fmt.Errorf("failed connection: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return conn, ch, nil
}
