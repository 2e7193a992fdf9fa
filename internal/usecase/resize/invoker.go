package resize

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/pixforge/internal/adapter/storage"
	"github.com/marcos-nsantos/pixforge/internal/domain"
)

const DefaultTimeout = 30 * time.Second

// Invoker runs the primary resizer and falls back to the secondary one with the
// same target size when the primary errors, panics or times out.
type Invoker struct {
	primary   storage.ImageResizer
	secondary storage.ImageResizer
	timeout   time.Duration
	logger    *zap.Logger
}

func NewInvoker(primary, secondary storage.ImageResizer, timeout time.Duration, logger *zap.Logger) *Invoker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{
		primary:   primary,
		secondary: secondary,
		timeout:   timeout,
		logger:    logger.With(zap.String("component", "resize_invoker")),
	}
}

func (i *Invoker) Resize(ctx context.Context, data []byte, mediaType string, width, height int) ([]byte, string, error) {
	if width <= 0 || height <= 0 {
		return nil, "", domain.ErrInvalidDimensions
	}

	out, outType, err := i.attempt(ctx, i.primary, data, mediaType, width, height)
	if err == nil {
		return out, outType, nil
	}

	i.logger.Warn("primary resizer failed, trying fallback",
		zap.Error(err),
		zap.String("media_type", mediaType),
		zap.Int("width", width),
		zap.Int("height", height),
	)

	out, outType, err = i.attempt(ctx, i.secondary, data, mediaType, width, height)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrResizeFailed, err)
	}
	return out, outType, nil
}

type attemptResult struct {
	data      []byte
	mediaType string
	err       error
}

func (i *Invoker) attempt(ctx context.Context, r storage.ImageResizer, data []byte, mediaType string, width, height int) ([]byte, string, error) {
	if r == nil {
		return nil, "", fmt.Errorf("resizer not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	done := make(chan attemptResult, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- attemptResult{err: fmt.Errorf("resizer panicked: %v", p)}
			}
		}()
		out, outType, err := r.Resize(ctx, data, mediaType, width, height)
		if err == nil && len(out) == 0 {
			err = fmt.Errorf("resizer returned no data")
		}
		done <- attemptResult{data: out, mediaType: outType, err: err}
	}()

	select {
	case res := <-done:
		return res.data, res.mediaType, res.err
	case <-ctx.Done():
		return nil, "", fmt.Errorf("resize attempt: %w", ctx.Err())
	}
}
