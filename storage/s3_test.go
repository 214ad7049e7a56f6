package storage

import (
	"context"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestUploadBase64(t *testing.T) {
	putter := &fakePutter{}
	u := NewUploaderWithClient(putter, "organic-media", "ap-south-1")

	payload := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	url, err := u.UploadBase64(context.Background(), PrefixProductImage, payload, "jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://organic-media.s3.ap-south-1.amazonaws.com/product-image/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)
	require.NotNil(t, putter.input)
	assert.Equal(t, "organic-media", *putter.input.Bucket)
	assert.True(t, strings.HasPrefix(*putter.input.Key, PrefixProductImage))
	assert.Equal(t, []byte("jpeg-bytes"), putter.body)
}

func TestUploadBase64DataURL(t *testing.T) {
	putter := &fakePutter{}
	u := NewUploaderWithClient(putter, "organic-media", "ap-south-1")

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	_, err := u.UploadBase64(context.Background(), PrefixBannerImage, payload, "png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), putter.body)
}

func TestUploadBase64Invalid(t *testing.T) {
	putter := &fakePutter{}
	u := NewUploaderWithClient(putter, "organic-media", "ap-south-1")

	_, err := u.UploadBase64(context.Background(), PrefixUserImage, "not base64 at all!!", "jpg")
	assert.Error(t, err)

	empty := NewUploaderWithClient(putter, "", "ap-south-1")
	_, err = empty.UploadBase64(context.Background(), PrefixUserImage, base64.StdEncoding.EncodeToString([]byte("x")), "jpg")
	assert.Error(t, err, "missing bucket fails before any network call")
}
