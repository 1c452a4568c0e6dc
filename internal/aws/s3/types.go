package s3

import "time"

type S3Object struct {
	Key          string
	Size         int64
	LastModified time.Time
	StorageClass string
}

// ListObjectsResult holds a single page of a bucket listing.
type ListObjectsResult struct {
	Objects   []S3Object
	Truncated bool
	NextToken string
}
