// Package s3client reads CoNLL-U chunks from and writes lemmatizer results
// to the document bucket.
package s3client

import (
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/logger"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"strings"
	"sync"
)

const maxRetries = 4

var errClosed = errors.New("s3 client is closed")

type Config struct {
	BucketName  string `envconfig:"GDL_STORAGE_BUCKET_NAME" required:"true"`
	Env         string `envconfig:"GDL_ENV" default:"prod"`
	Region      string `envconfig:"GDL_AWS_REGION_NAME" required:"true"`
	AwsEndpoint string `envconfig:"GDL_AWS_ENDPOINT_URL" default:""`
	AccessKeyID string `envconfig:"GDL_AWS_ACCESS_ID" default:""`
	AccessKey   string `envconfig:"GDL_AWS_ACCESS_KEY" default:""`
}

// Client keeps one AWS session. An operation that fails is retried once on
// a fresh session.
type Client struct {
	config Config
	logger zerolog.Logger

	mu   sync.Mutex
	sess *session.Session
}

var sdkLogger = logger.NewLogger("S3-SDK")

func New() (*Client, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read s3 config: %w", err)
	}
	client := &Client{
		config: config,
		logger: logger.NewLogger("S3Client").With().Str("bucket", config.BucketName).Logger(),
	}
	if _, err := client.refresh(nil); err != nil {
		return nil, err
	}
	return client, nil
}

// Upload stores data under key with the given content type.
func (client *Client) Upload(data string, key string, contentType string) error {
	keyLogger := client.logger.With().Str("key", key).Logger()
	return client.do(func(sess *session.Session) error {
		keyLogger.Debug().Str("content_type", contentType).Msg("Uploading the file")
		uploader := s3manager.NewUploader(withSDKLogger(sess, key))
		_, err := uploader.Upload(&s3manager.UploadInput{
			Bucket:      aws.String(client.config.BucketName),
			Key:         aws.String(key),
			Body:        strings.NewReader(data),
			ContentType: aws.String(contentType),
		})
		return err
	})
}

func (client *Client) Download(key string) ([]byte, error) {
	keyLogger := client.logger.With().Str("key", key).Logger()
	var buf *aws.WriteAtBuffer
	err := client.do(func(sess *session.Session) error {
		buf = aws.NewWriteAtBuffer([]byte{})
		downloader := s3manager.NewDownloader(withSDKLogger(sess, key))
		size, err := downloader.Download(buf, &s3.GetObjectInput{
			Bucket: aws.String(client.config.BucketName),
			Key:    aws.String(key),
		})
		if err != nil {
			keyLogger.Err(err).Msg("Failed to download file")
			return err
		}
		keyLogger.Debug().Int64("bytes", size).Msg("Downloaded file")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (client *Client) Close() {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.sess = nil
}

func (client *Client) do(op func(sess *session.Session) error) error {
	client.mu.Lock()
	sess := client.sess
	client.mu.Unlock()
	if sess == nil {
		return errClosed
	}
	err := op(sess)
	if err == nil {
		return nil
	}
	client.logger.Err(err).Msg("S3 operation failed, refreshing session")
	if sess, err = client.refresh(sess); err != nil {
		return err
	}
	return op(sess)
}

// refresh replaces stale with a new session. When another caller already
// replaced it, that session is returned instead.
func (client *Client) refresh(stale *session.Session) (*session.Session, error) {
	client.mu.Lock()
	defer client.mu.Unlock()
	if client.sess != stale {
		if client.sess == nil {
			return nil, errClosed
		}
		return client.sess, nil
	}
	sess, err := newSession(client.config, &client.logger)
	if err != nil {
		return nil, err
	}
	client.sess = sess
	return sess, nil
}

// newSession tries the instance credentials first and falls back to the
// keys from the environment.
func newSession(config Config, log *zerolog.Logger) (*session.Session, error) {
	sess, err := session.NewSession(awsConfig(config, nil))
	if err == nil {
		if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err == nil {
			log.Info().Msg("S3 session initialized using instance credentials")
			return sess, nil
		}
	}
	log.Info().Err(err).Msg("Could not use instance credentials, trying env credentials")

	creds := credentials.NewStaticCredentials(config.AccessKeyID, config.AccessKey, "")
	if _, err := creds.Get(); err != nil {
		return nil, fmt.Errorf("invalid env credentials: %w", err)
	}
	sess, err = session.NewSession(awsConfig(config, creds))
	if err != nil {
		return nil, fmt.Errorf("could not initialize s3 session: %w", err)
	}
	if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err != nil {
		return nil, fmt.Errorf("could not initialize s3 session: %w", err)
	}
	log.Info().Msg("S3 session initialized using env credentials")
	return sess, nil
}

// awsConfig builds the SDK config. A custom endpoint, such as a local
// S3 emulator, is only honoured in the dev environment.
func awsConfig(config Config, creds *credentials.Credentials) *aws.Config {
	cfg := aws.NewConfig().
		WithRegion(config.Region).
		WithMaxRetries(maxRetries).
		WithLogLevel(aws.LogDebug)
	if creds != nil {
		cfg = cfg.WithCredentials(creds)
	}
	if config.Env == "dev" && config.AwsEndpoint != "" {
		cfg = cfg.WithEndpoint(config.AwsEndpoint).WithS3ForcePathStyle(true)
	}
	return cfg
}

func withSDKLogger(sess *session.Session, key string) *session.Session {
	log := sdkLogger.With().Str("key", key).Logger()
	return sess.Copy(&aws.Config{Logger: aws.LoggerFunc(func(v ...interface{}) {
		log.Debug().Msg(fmt.Sprint(v...))
	})})
}
