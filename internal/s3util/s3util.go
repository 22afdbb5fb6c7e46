// internal/s3util/s3util.go

// Package s3util drives the aws CLI for the public (unsigned) openfold
// bucket. Listing and copying are the only operations the downloader needs;
// both shell out rather than linking an SDK, mirroring how the rest of the
// pipeline invokes tar and gunzip.
package s3util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"msadata/internal/shellutil"
)

// Object is one key in a bucket listing.
type Object struct {
	Key  string
	Size int64
}

type Client struct {
	Run shellutil.Runner
}

// List returns every object under bucket/prefix via
// `aws s3api list-objects-v2 --no-sign-request`.
func (c Client) List(ctx context.Context, bucket, prefix string) ([]Object, error) {
	out, err := c.Run.Output(ctx,
		"aws", "s3api", "list-objects-v2",
		"--no-sign-request",
		"--bucket", bucket,
		"--prefix", prefix,
		"--output", "json",
	)
	if err != nil {
		return nil, err
	}
	// The CLI prints nothing at all for an empty bucket/prefix.
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, nil
	}
	var resp struct {
		Contents []struct {
			Key  string `json:"Key"`
			Size int64  `json:"Size"`
		} `json:"Contents"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("parse listing for s3://%s/%s: %w", bucket, prefix, err)
	}
	objs := make([]Object, 0, len(resp.Contents))
	for _, obj := range resp.Contents {
		objs = append(objs, Object{Key: obj.Key, Size: obj.Size})
	}
	return objs, nil
}

// Copy downloads one object to destination via `aws s3 cp --no-sign-request`.
func (c Client) Copy(ctx context.Context, bucket, key, destination string) error {
	uri := fmt.Sprintf("s3://%s/%s", bucket, key)
	return c.Run.Run(ctx, "aws", "s3", "cp", "--no-sign-request", uri, destination)
}
