package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// S3Source reads a snapshot document from an S3 object.
type S3Source struct {
	Bucket string
	Key    string
	Format Format

	client manager.DownloadAPIClient
}

// NewS3Source builds an S3 client from opts. Static credentials are used when
// both keys are set; otherwise the default AWS credential chain applies.
func NewS3Source(ctx context.Context, bucket, key string, format Format, opts S3Options) (*S3Source, error) {
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Options []func(*s3.Options)
	if opts.Endpoint != "" {
		s3Options = append(s3Options, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = opts.UsePathStyle
		})
	}

	return NewS3SourceWithClient(s3.NewFromConfig(awsCfg, s3Options...), bucket, key, format), nil
}

// NewS3SourceWithClient uses an existing client.
func NewS3SourceWithClient(client manager.DownloadAPIClient, bucket, key string, format Format) *S3Source {
	return &S3Source{Bucket: bucket, Key: key, Format: format, client: client}
}

func (s *S3Source) Load(ctx context.Context) (simpleblog.Snapshot, error) {
	buf := manager.NewWriteAtBuffer(nil)
	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		d.Concurrency = 1
	})

	_, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return simpleblog.Snapshot{}, classifyS3Error(s.Bucket, s.Key, err)
	}

	return Decode(buf.Bytes(), s.Format)
}

func classifyS3Error(bucket, key string, err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%w: s3://%s/%s", ErrSeedNotFound, bucket, key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: s3://%s/%s", ErrSeedNotFound, bucket, key)
		}
		return fmt.Errorf("failed to download seed from S3 (%s): %w", apiErr.ErrorCode(), err)
	}

	return fmt.Errorf("failed to download seed from S3: %w", err)
}
