package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/timex"
)

// ObjectAPI is the part of *s3.Client used by S3Repository.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures the S3-compatible endpoint (MinIO in development).
type S3Options struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

var newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectAPI {
	return s3.NewFromConfig(cfg, optFns...)
}

// NewS3Client builds an S3 client with static credentials and a custom
// endpoint using path-style addressing.
func NewS3Client(ctx context.Context, opts S3Options) (ObjectAPI, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = true
	}), nil
}

type profileDocument struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UpdatedAt string `json:"updatedAt"`
}

// S3Repository keeps one JSON object per user at <collection>/<userID>.json.
type S3Repository struct {
	api    ObjectAPI
	bucket string
}

func NewS3Repository(api ObjectAPI, bucket string) *S3Repository {
	return &S3Repository{api: api, bucket: bucket}
}

func objectKey(userID string) string {
	return path.Join(common.ProfilesCollection, userID+".json")
}

func (r *S3Repository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	doc, _, err := r.read(ctx, userID)
	if err != nil {
		return nil, err
	}
	return doc.toModel(userID)
}

func (r *S3Repository) Create(ctx context.Context, p *models.Profile) error {
	doc := profileDocument{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		UpdatedAt: timex.FormatISO(updatedAtOrNow(p.UpdatedAt)),
	}
	return r.write(ctx, p.UserID, doc, nil)
}

// Merge is a read-merge-write guarded by the ETag of the object that was
// read, so a concurrent writer makes the put fail instead of being lost.
func (r *S3Repository) Merge(ctx context.Context, userID string, patch models.ProfilePatch) error {
	doc, etag, err := r.read(ctx, userID)
	if err != nil {
		return err
	}

	p, err := doc.toModel(userID)
	if err != nil {
		return err
	}
	patch.UpdatedAt = updatedAtOrNow(patch.UpdatedAt)
	patch.Apply(p)

	merged := profileDocument{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		UpdatedAt: timex.FormatISO(p.UpdatedAt),
	}
	return r.write(ctx, userID, merged, etag)
}

func (r *S3Repository) read(ctx context.Context, userID string) (*profileDocument, *string, error) {
	out, err := r.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(objectKey(userID)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, nil, common.ErrorNotFound
		}
		return nil, nil, fmt.Errorf("s3 error: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("s3 read: %w", err)
	}

	doc := &profileDocument{}
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, nil, fmt.Errorf("corrupt profile %s: %w", userID, err)
	}
	return doc, out.ETag, nil
}

func (r *S3Repository) write(ctx context.Context, userID string, doc profileDocument, ifMatch *string) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = r.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(objectKey(userID)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		IfMatch:     ifMatch,
	})
	if err != nil {
		return fmt.Errorf("s3 error: %w", err)
	}
	return nil
}

func (d *profileDocument) toModel(userID string) (*models.Profile, error) {
	p := &models.Profile{UserID: userID, FirstName: d.FirstName, LastName: d.LastName}
	if d.UpdatedAt != "" {
		t, err := timex.ParseISO(d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("corrupt profile %s: %w", userID, err)
		}
		p.UpdatedAt = t
	}
	return p, nil
}
