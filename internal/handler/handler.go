package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"

	awss3 "tasnim.dev/bucket-lister/internal/aws/s3"
	"tasnim.dev/bucket-lister/internal/config"
	"tasnim.dev/bucket-lister/internal/utils"
)

type ObjectLister interface {
	ListObjects(ctx context.Context, bucket string) (awss3.ListObjectsResult, error)
}

type Handler struct {
	objects ObjectLister
	lookup  config.LookupFunc
	log     *slog.Logger
}

type Option func(*Handler)

// WithLookup replaces os.LookupEnv as the source of BUCKET_NAME.
func WithLookup(lookup config.LookupFunc) Option {
	return func(h *Handler) { h.lookup = lookup }
}

func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) { h.log = log }
}

func New(objects ObjectLister, opts ...Option) *Handler {
	h := &Handler{
		objects: objects,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle serves one invocation. The event payload is ignored. The returned
// error is always nil: failures are reported in the envelope.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (Response, error) {
	log := h.log
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.With("request_id", lc.AwsRequestID)
	}

	bucket, records, err := h.list(ctx, log)
	if err != nil {
		var f *Failure
		if errors.As(err, &f) {
			attrs := []any{"kind", f.Kind.String(), "error", f.Err}
			if code := f.APICode(); code != "" {
				attrs = append(attrs, "aws_error_code", code)
			}
			if bucket != "" {
				attrs = append(attrs, "bucket", bucket)
			}
			log.Error("listing failed", attrs...)
		}
		return errorResponse(err), nil
	}

	log.Info("listed objects", "bucket", bucket, "count", len(records))
	return okResponse(records), nil
}

func (h *Handler) list(ctx context.Context, log *slog.Logger) (string, []Record, error) {
	bucket, err := config.LookupBucket(h.lookup)
	if err != nil {
		return "", nil, configFailure(err)
	}

	result, err := h.objects.ListObjects(ctx, bucket)
	if err != nil {
		return bucket, nil, upstreamFailure(err)
	}

	if result.Truncated {
		log.Warn("bucket listing truncated to first page", "bucket", bucket, "returned", len(result.Objects))
	}

	records := make([]Record, 0, len(result.Objects))
	for _, obj := range result.Objects {
		records = append(records, Record{
			Key:          obj.Key,
			LastModified: utils.ISO8601(obj.LastModified),
			Size:         obj.Size,
			StorageClass: obj.StorageClass,
		})
	}
	return bucket, records, nil
}
