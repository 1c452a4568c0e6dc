package s3

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3API interface {
	ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
}

type Client struct {
	api S3API
}

func NewClient(api S3API) *Client {
	return &Client{api: api}
}

// ListObjects returns the first page of objects in bucket. It never follows
// continuation tokens; callers can inspect Truncated to see whether more
// keys exist.
func (c *Client) ListObjects(ctx context.Context, bucket string) (ListObjectsResult, error) {
	out, err := c.api.ListObjectsV2(ctx, &awss3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return ListObjectsResult{}, &OpError{Op: "ListObjectsV2", Bucket: bucket, Err: err}
	}

	objects := make([]S3Object, 0, len(out.Contents))
	for _, obj := range out.Contents {
		var lastModified time.Time
		if obj.LastModified != nil {
			lastModified = *obj.LastModified
		}
		objects = append(objects, S3Object{
			Key:          aws.ToString(obj.Key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: lastModified,
			StorageClass: string(obj.StorageClass),
		})
	}

	result := ListObjectsResult{Objects: objects}
	if out.IsTruncated != nil && *out.IsTruncated {
		result.Truncated = true
		result.NextToken = aws.ToString(out.NextContinuationToken)
	}

	return result, nil
}
