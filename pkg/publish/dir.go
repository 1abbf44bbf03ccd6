package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DirPutter writes objects under a local directory instead of a bucket.
// Keys map to paths below Root; the bucket name is ignored.
type DirPutter struct {
	Root string
}

// PutObject implements ObjectPutter.
func (d DirPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dest := filepath.Join(d.Root, filepath.FromSlash(aws.ToString(params.Key)))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, err
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if params.Body != nil {
		if _, err := io.Copy(f, params.Body); err != nil {
			return nil, err
		}
	}
	return &s3.PutObjectOutput{}, f.Close()
}
