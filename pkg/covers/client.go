package covers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/bookshelf/pkg/cache"
	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/httputil"
)

// DefaultCoverTTL is how long downloaded cover bytes stay cached.
const DefaultCoverTTL = 30 * 24 * time.Hour

// Client downloads cover images, consulting a cache first.
type Client struct {
	HTTP   *httputil.Client
	Cache  cache.Cache
	Keyer  cache.Keyer
	TTL    time.Duration
	Retry  httputil.Policy
	Logger *log.Logger
}

// NewClient returns a Client with the given request timeout backed by c.
// A nil cache disables caching.
func NewClient(c cache.Cache, timeout time.Duration) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		HTTP:  httputil.NewClient("covers", timeout),
		Cache: cache.Instrument(c, "cover"),
		Keyer: cache.NewDefaultKeyer(),
		TTL:   DefaultCoverTTL,
		Retry: httputil.DefaultPolicy,
	}
}

// Fetch returns the raw bytes of the image at url.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := bserr.ValidateURL(url); err != nil {
		return nil, err
	}
	key := c.Keyer.CoverKey(url)
	if data, ok, err := c.Cache.Get(ctx, key); err == nil && ok {
		c.logger().Debug("cover cache hit", "url", url)
		return data, nil
	}

	policy := c.Retry
	policy.OnRetry = func(attempt int, err error, wait time.Duration) {
		c.logger().Debug("retrying cover", "url", url, "attempt", attempt, "wait", wait, "err", err)
	}

	var data []byte
	err := policy.Do(ctx, func() error {
		var err error
		data, err = c.HTTP.Get(ctx, url)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := c.Cache.Set(ctx, key, data, c.TTL); err != nil {
		c.logger().Warn("cover cache write failed", "url", url, "err", err)
	}
	return data, nil
}

// Image fetches and decodes the image at url.
func (c *Client) Image(ctx context.Context, url string) (image.Image, error) {
	data, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, bserr.Wrap(bserr.ErrCodeInvalidFormat, err, "decode %s", url)
	}
	c.logger().Debug("decoded cover", "url", url, "format", format, "size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))
	return img, nil
}

func (c *Client) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discard
}
