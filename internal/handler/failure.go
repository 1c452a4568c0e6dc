package handler

import (
	"errors"

	"github.com/aws/smithy-go"

	awss3 "tasnim.dev/bucket-lister/internal/aws/s3"
)

// Kind classifies why an invocation failed. Every kind maps to status 500.
type Kind int

const (
	KindConfig Kind = iota + 1
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Failure is the error half of an invocation result.
type Failure struct {
	Kind Kind
	Err  error
}

// Error returns the message placed in the response body. For upstream
// failures that is the storage service's own message, without the
// operation prefix the S3 client adds.
func (f *Failure) Error() string {
	var opErr *awss3.OpError
	if errors.As(f.Err, &opErr) && opErr.Err != nil {
		return opErr.Err.Error()
	}
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// APICode returns the AWS error code behind an upstream failure, or "".
func (f *Failure) APICode() string {
	var apiErr smithy.APIError
	if errors.As(f.Err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func configFailure(err error) *Failure {
	return &Failure{Kind: KindConfig, Err: err}
}

func upstreamFailure(err error) *Failure {
	return &Failure{Kind: KindUpstream, Err: err}
}
