package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"agri-works/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockObjectPutter is a mock implementation of objectPutter.
type MockObjectPutter struct {
	mock.Mock
}

func (m *MockObjectPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestS3Store_Put(t *testing.T) {
	ctx := context.Background()
	body := []byte("image-bytes")

	t.Run("Success", func(t *testing.T) {
		client := new(MockObjectPutter)
		store := newS3Store(client, "products", "product-images/", "https://cdn.example.com/storage/v1/object/public/", zerolog.Nop())

		client.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			data, _ := io.ReadAll(in.Body)
			return aws.ToString(in.Bucket) == "products" &&
				aws.ToString(in.Key) == "product-images/1-abc.png" &&
				aws.ToString(in.ContentType) == "image/png" &&
				aws.ToInt64(in.ContentLength) == int64(len(body)) &&
				string(data) == string(body)
		})).Return(&s3.PutObjectOutput{}, nil)

		url, err := store.Put(ctx, "product-images/1-abc.png", "image/png", body)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/storage/v1/object/public/products/product-images/1-abc.png", url)
		assert.Equal(t, "product-images/", store.Prefix())
		client.AssertExpectations(t)
	})

	t.Run("Storage failure", func(t *testing.T) {
		client := new(MockObjectPutter)
		store := newS3Store(client, "products", "product-images/", "http://localhost:9000", zerolog.Nop())

		client.On("PutObject", ctx, mock.Anything).Return(nil, errors.New("connection reset"))

		url, err := store.Put(ctx, "product-images/1-abc.png", "image/png", body)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		assert.Empty(t, url)
		client.AssertNumberOfCalls(t, "PutObject", 1)
	})
}

func TestNewS3Store(t *testing.T) {
	store, err := NewS3Store(context.Background(), config.StorageConfig{
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "products",
		Prefix:    "product-images/",
		AccessKey: "minio",
		SecretKey: "minio123",
	}, zerolog.Nop())

	require.NoError(t, err)
	s, ok := store.(*s3Store)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:9000/products/x.jpg", s.url("x.jpg"))
	assert.Equal(t, "product-images/", s.Prefix())
}
