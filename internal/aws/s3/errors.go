package s3

import "fmt"

// OpError records the S3 operation and bucket that failed along with the
// error returned by the SDK.
type OpError struct {
	Op     string
	Bucket string
	Err    error
}

func (e *OpError) Error() string {
	if e.Bucket != "" {
		return fmt.Sprintf("s3.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	return fmt.Sprintf("s3.%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
