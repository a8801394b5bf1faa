// Package stylestore uploads compiled component stylesheets to S3.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	pub := stylestore.New(s3.NewFromConfig(cfg), "my-assets", "css/")
//	key, err := pub.Publish(ctx, "Card", css)   // css/Card-style.css
package stylestore

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/componentx/internal/errors"
	"github.com/vango-dev/componentx/pkg/style"
)

// ContentType is the content type of every uploaded object.
const ContentType = "text/css; charset=utf-8"

// DefaultCacheControl is sent with every object unless overridden.
const DefaultCacheControl = "public, max-age=300"

// PutObjectAPI is the part of *s3.Client a Publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher stores stylesheets in one bucket under a key prefix.
type Publisher struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
	logger       *slog.Logger
}

// New creates a publisher. prefix is used verbatim, so include a trailing
// slash when keys should live in a "directory".
func New(client PutObjectAPI, bucket, prefix string) *Publisher {
	return &Publisher{
		client:       client,
		bucket:       bucket,
		prefix:       prefix,
		cacheControl: DefaultCacheControl,
		logger:       slog.Default(),
	}
}

// WithCacheControl sets the Cache-Control header of uploaded objects.
func (p *Publisher) WithCacheControl(v string) *Publisher {
	p.cacheControl = v
	return p
}

// WithLogger sets the logger.
func (p *Publisher) WithLogger(l *slog.Logger) *Publisher {
	p.logger = l
	return p
}

// Key returns the object key for name's stylesheet.
func (p *Publisher) Key(name string) string {
	return p.prefix + style.ElementID(name) + ".css"
}

// Publish uploads css as name's stylesheet and returns the object key.
func (p *Publisher) Publish(ctx context.Context, name, css string) (string, error) {
	if name == "" {
		return "", errors.New("E130").WithDetail("component name is empty")
	}

	key := p.Key(name)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(key),
		Body:         strings.NewReader(css),
		ContentType:  aws.String(ContentType),
		CacheControl: aws.String(p.cacheControl),
		Metadata: map[string]string{
			"component": name,
		},
	})
	if err != nil {
		return "", errors.New("E130").WithDetail("s3://" + p.bucket + "/" + key).Wrap(err)
	}

	p.logger.Info("stylesheet published", "component", name, "bucket", p.bucket, "key", key, "bytes", len(css))
	return key, nil
}

// PublishAll uploads every stylesheet in reg in injection order and stops
// at the first failure. It returns the keys uploaded so far.
func (p *Publisher) PublishAll(ctx context.Context, reg *style.Registry) ([]string, error) {
	var keys []string
	for _, name := range reg.Names() {
		if err := ctx.Err(); err != nil {
			return keys, err
		}
		css, ok := reg.Get(name)
		if !ok {
			continue
		}
		key, err := p.Publish(ctx, name, css)
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
