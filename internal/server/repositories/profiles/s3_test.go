package profiles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObject struct {
	body []byte
	etag string
}

// fakeS3 is an in-memory bucket honoring IfMatch on puts.
type fakeS3 struct {
	objects map[string]fakeObject
	version int
	getErr  error
	putErr  error
	puts    []*s3.PutObjectInput
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]fakeObject{}}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	obj, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{
		Body: io.NopCloser(bytes.NewReader(obj.body)),
		ETag: aws.String(obj.etag),
	}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	if in.IfMatch != nil && f.objects[key].etag != aws.ToString(in.IfMatch) {
		return nil, errors.New("PreconditionFailed")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.version++
	f.objects[key] = fakeObject{body: body, etag: fmt.Sprintf("\"v%d\"", f.version)}
	return &s3.PutObjectOutput{}, nil
}

func TestS3_CreateWritesJSONDocument(t *testing.T) {
	api := newFakeS3()
	repo := NewS3Repository(api, "vault")

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), &models.Profile{UserID: "u1", FirstName: "Ada", LastName: "Lovelace", UpdatedAt: at}))

	obj, ok := api.objects["vault/users/u1.json"]
	require.True(t, ok)
	assert.JSONEq(t, `{"firstName":"Ada","lastName":"Lovelace","updatedAt":"2024-05-01T10:00:00.000Z"}`, string(obj.body))
	assert.Equal(t, "application/json", aws.ToString(api.puts[0].ContentType))
	assert.Nil(t, api.puts[0].IfMatch)
}

func TestS3_GetMissing(t *testing.T) {
	repo := NewS3Repository(newFakeS3(), "vault")

	_, err := repo.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestS3_GetBackendError(t *testing.T) {
	api := newFakeS3()
	api.getErr = errors.New("timeout")
	repo := NewS3Repository(api, "vault")

	_, err := repo.Get(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, err.Error(), "s3 error: timeout")
}

func TestS3_GetCorruptDocument(t *testing.T) {
	api := newFakeS3()
	api.objects["vault/users/u1.json"] = fakeObject{body: []byte("{not json"), etag: "x"}
	repo := NewS3Repository(api, "vault")

	_, err := repo.Get(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt profile u1")
}

func TestS3_MergeReadModifyWrite(t *testing.T) {
	api := newFakeS3()
	repo := NewS3Repository(api, "vault")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Profile{UserID: "u1", FirstName: "Ada", LastName: "Lovelace", UpdatedAt: time.Now()}))

	first := "Grace"
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, repo.Merge(ctx, "u1", models.ProfilePatch{FirstName: &first, UpdatedAt: at}))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.True(t, got.UpdatedAt.Equal(at))
	assert.Equal(t, `"v1"`, aws.ToString(api.puts[1].IfMatch))
}

func TestS3_MergeMissingDoesNotCreate(t *testing.T) {
	api := newFakeS3()
	repo := NewS3Repository(api, "vault")

	first := "Ada"
	err := repo.Merge(context.Background(), "ghost", models.ProfilePatch{FirstName: &first, UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, api.puts)
}

func TestS3_MergePutError(t *testing.T) {
	api := newFakeS3()
	repo := NewS3Repository(api, "vault")
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Profile{UserID: "u1"}))

	api.putErr = errors.New("PreconditionFailed")
	err := repo.Merge(ctx, "u1", models.ProfilePatch{UpdatedAt: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PreconditionFailed")
}

func TestNewS3Client_UsesSeams(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	defer func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew }()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		var lo config.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{Region: lo.Region}, nil
	}

	var gotOpts s3.Options
	fake := newFakeS3()
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectAPI {
		for _, fn := range optFns {
			fn(&gotOpts)
		}
		return fake
	}

	api, err := NewS3Client(context.Background(), S3Options{Region: "us-east-1", AccessKey: "k", SecretKey: "s", BaseEndpoint: "http://localhost:9000"})
	require.NoError(t, err)
	assert.Same(t, fake, api)
	assert.Equal(t, "http://localhost:9000", aws.ToString(gotOpts.BaseEndpoint))
	assert.True(t, gotOpts.UsePathStyle)
}

func TestNewS3Client_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no creds")
	}

	_, err := NewS3Client(context.Background(), S3Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load aws config")
}
