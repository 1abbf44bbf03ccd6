package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/render"
	"github.com/vango-dev/styled/pkg/showcase"
)

// ObjectPutter is the subset of *s3.Client the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures a Publisher.
type Options struct {
	// Bucket is required.
	Bucket string

	// Prefix is prepended to every key ("design/" puts the gallery at
	// design/index.html).
	Prefix string

	// Title is the gallery page title.
	Title string

	// Logger defaults to slog.Default().With("component", "publish").
	Logger *slog.Logger
}

// Object describes one uploaded object.
type Object struct {
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// Publisher exports a registry as a static gallery.
type Publisher struct {
	client ObjectPutter
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

// New creates a publisher writing through client.
func New(client ObjectPutter, opts Options) *Publisher {
	if opts.Logger == nil {
		opts.Logger = slog.Default().With("component", "publish")
	}
	return &Publisher{client: client, opts: opts, logger: opts.Logger, now: time.Now}
}

// Publish uploads index.html, the gallery without the live playground,
// and styles.json, the computed style of every example. Objects are
// returned in upload order.
func (p *Publisher) Publish(ctx context.Context, reg *showcase.Registry) ([]Object, error) {
	if p.opts.Bucket == "" {
		return nil, errors.New("E161")
	}

	files, err := Build(reg, p.opts.Title)
	if err != nil {
		return nil, err
	}

	published := p.now().UTC().Format(time.RFC3339)
	objects := make([]Object, 0, len(files))
	for _, f := range files {
		key := p.key(f.Name)
		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.opts.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(f.Data),
			ContentType: aws.String(f.ContentType),
			Metadata: map[string]string{
				"generator":    "styled",
				"publish-time": published,
			},
		})
		if err != nil {
			return objects, errors.New("E160").
				WithDetail("s3://" + p.opts.Bucket + "/" + key).
				Wrap(err)
		}
		p.logger.Info("uploaded", "bucket", p.opts.Bucket, "key", key, "bytes", len(f.Data))
		objects = append(objects, Object{Key: key, ContentType: f.ContentType, Size: len(f.Data)})
	}
	return objects, nil
}

func (p *Publisher) key(name string) string {
	prefix := strings.Trim(p.opts.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// File is a generated gallery file.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Build renders the gallery files for reg without uploading them.
func Build(reg *showcase.Registry, title string) ([]File, error) {
	var page bytes.Buffer
	renderer := render.NewRenderer(render.RendererConfig{})
	if err := renderer.RenderPage(&page, showcase.Page(reg, showcase.PageOptions{Title: title})); err != nil {
		return nil, errors.New("E140").Wrap(err)
	}

	styles, err := json.MarshalIndent(reg.Styles(), "", "  ")
	if err != nil {
		return nil, errors.New("E140").Wrap(err)
	}

	return []File{
		{Name: "index.html", ContentType: "text/html; charset=utf-8", Data: page.Bytes()},
		{Name: "styles.json", ContentType: "application/json", Data: append(styles, '\n')},
	}, nil
}
