// Package storage uploads media to an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// SignedURLTTL is how long a pre-signed upload URL stays valid.
const SignedURLTTL = time.Hour

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Store is the object storage used by the media endpoints.
type Store interface {
	Upload(ctx context.Context, in UploadInput) (string, error)
	Delete(ctx context.Context, name, folder string) error
	SignUploadURL(ctx context.Context, name, folder, contentType string) (string, error)
	PublicURL(name, folder string) string
}

// ObjectAPI is the subset of *s3.Client the adapter needs.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Presigner is the subset of *s3.PresignClient the adapter needs.
type Presigner interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Options configures a bucket connection.
type Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
	PathStyle bool
}

// UploadInput is one object to store.
type UploadInput struct {
	Body        io.Reader
	Name        string
	Folder      string
	ContentType string
	Size        int64
}

// Client implements Store on top of the S3 API.
type Client struct {
	api        ObjectAPI
	presigner  Presigner
	bucket     string
	publicBase string
}

// New connects to the bucket described by opts.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.Bucket == "" || opts.PublicURL == "" {
		return nil, errors.New("storage bucket and public url are required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	})
	return NewWithAPI(client, s3.NewPresignClient(client), opts.Bucket, opts.PublicURL), nil
}

// NewWithAPI builds a Client over already constructed S3 clients.
func NewWithAPI(api ObjectAPI, presigner Presigner, bucket, publicURL string) *Client {
	return &Client{
		api:        api,
		presigner:  presigner,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicURL, "/"),
	}
}

func objectKey(name, folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// PublicURL is where a stored object can be fetched.
func (c *Client) PublicURL(name, folder string) string {
	return c.publicBase + "/" + objectKey(name, folder)
}

// Upload stores the object with a public-read ACL and returns its public URL.
func (c *Client) Upload(ctx context.Context, in UploadInput) (string, error) {
	put := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey(in.Name, in.Folder)),
		Body:   in.Body,
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if in.ContentType != "" {
		put.ContentType = aws.String(in.ContentType)
	}
	if in.Size > 0 {
		put.ContentLength = aws.Int64(in.Size)
	}
	if _, err := c.api.PutObject(ctx, put); err != nil {
		return "", fmt.Errorf("put object %s: %w", *put.Key, err)
	}
	return c.PublicURL(in.Name, in.Folder), nil
}

// Delete removes the object.
func (c *Client) Delete(ctx context.Context, name, folder string) error {
	key := objectKey(name, folder)
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// SignUploadURL returns a pre-signed PUT URL valid for SignedURLTTL.
func (c *Client) SignUploadURL(ctx context.Context, name, folder, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey(name, folder)),
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	req, err := c.presigner.PresignPutObject(ctx, in, s3.WithPresignExpires(SignedURLTTL))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", *in.Key, err)
	}
	return req.URL, nil
}

// ObjectName builds a collision-resistant key from an uploaded file name:
// unix milliseconds, a hyphen, then the name stripped to [A-Za-z0-9.-].
func ObjectName(original string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), unsafeNameChars.ReplaceAllString(original, ""))
}
