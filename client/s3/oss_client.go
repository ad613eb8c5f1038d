package s3

import (
	"io"
	"os"
	"planboard/session"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

var (
	AvatarBucket  *oss.Bucket
	GetObjectFunc func(string, *session.Session, ...oss.Option) (io.ReadCloser, error)
	PutObjectFunc func(string, io.Reader, *session.Session, ...oss.Option) error
)

func Bootstrap() error {
	var err error
	AvatarBucket, err = BuildBucketFromEnv()
	if err != nil {
		return err
	}

	GetObjectFunc = GetObject
	PutObjectFunc = PutObject
	return nil
}

func BuildBucketFromEnv() (*oss.Bucket, error) {
	endpoint := os.ExpandEnv(os.Getenv("OSS_ENDPOINT"))
	if endpoint == "" {
		endpoint = "dummy"
	}
	accessKey := os.Getenv("OSS_ACCESS_KEY")
	secretKey := os.Getenv("OSS_SECRET_KEY")
	bucket := os.Getenv("OSS_BUCKET")
	if bucket == "" {
		bucket = "planboard"
	}
	return BuildBucket(endpoint, accessKey, secretKey, bucket)
}

func BuildBucket(endpoint, accessKey, secretKey, bucketName string) (*oss.Bucket, error) {
	cli, err := oss.New(endpoint, accessKey, secretKey, oss.HTTPClient(nil))
	if err != nil {
		return nil, err
	}

	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, err
	}
	return bucket, nil
}

func GetObject(key string, s *session.Session, opts ...oss.Option) (io.ReadCloser, error) {
	span := startChildSpan("get-object", key, s)

	r, err := AvatarBucket.GetObject(key, opts...)
	if span != nil {
		ext.Error.Set(*span, err != nil)
		(*span).Finish()
	}
	return r, err
}

func PutObject(key string, r io.Reader, s *session.Session, opts ...oss.Option) error {
	span := startChildSpan("put-object", key, s)

	err := AvatarBucket.PutObject(key, r, opts...)
	if span != nil {
		ext.Error.Set(*span, err != nil)
		(*span).Finish()
	}
	return err
}

func startChildSpan(operation, key string, s *session.Session) *opentracing.Span {
	if s == nil || s.Context == nil {
		return nil
	}
	parentSpan := opentracing.SpanFromContext(s.Context)
	if parentSpan == nil {
		return nil
	}
	sp := parentSpan.Tracer().StartSpan(operation, opentracing.ChildOf(parentSpan.Context()))
	sp.SetTag("object-key", key)
	return &sp
}
