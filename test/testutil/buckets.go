package testutil

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// SetupTestBucket creates a fresh bucket and returns a cleanup that empties
// and removes it.
func SetupTestBucket(client *minio.Client, bucket string) (func() error, error) {
	ctx := context.Background()

	// a leftover bucket from an aborted run is fine
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		exists, err2 := client.BucketExists(ctx, bucket)
		if err2 != nil || !exists {
			return nil, fmt.Errorf("could not create bucket %q: %w", bucket, err)
		}
	}

	cleanup := func() error {
		for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				continue
			}
			_ = client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{})
		}
		if err := client.RemoveBucket(ctx, bucket); err != nil {
			return fmt.Errorf("could not remove bucket %q: %w", bucket, err)
		}
		return nil
	}
	return cleanup, nil
}
