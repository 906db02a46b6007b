package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAwsS3WithoutBucketIsDisabled(t *testing.T) {
	s3, err := NewAwsS3(context.Background(), S3Config{Region: "ap-southeast-1"})
	require.NoError(t, err)
	assert.Nil(t, s3)
}

func TestNewAwsS3WithStaticCredentials(t *testing.T) {
	s3, err := NewAwsS3(context.Background(), S3Config{
		Bucket:    "pantry-exports",
		Region:    "ap-southeast-1",
		AccessKey: "AKIAEXAMPLE",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, s3)

	assert.Equal(t,
		"https://pantry-exports.s3.ap-southeast-1.amazonaws.com/exports/a.csv",
		s3.GetPublicLinkKey("exports/a.csv"),
	)
}
