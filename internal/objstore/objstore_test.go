package objstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	bucket, prefix, err := ParseURL("s3://oxd-baselines/snapshots/main")
	require.NoError(t, err)
	assert.Equal(t, "oxd-baselines", bucket)
	assert.Equal(t, "snapshots/main", prefix)

	bucket, prefix, err = ParseURL("s3://only-bucket")
	require.NoError(t, err)
	assert.Equal(t, "only-bucket", bucket)
	assert.Empty(t, prefix)

	_, _, err = ParseURL("/tmp/snapshots")
	assert.Error(t, err)
	_, _, err = ParseURL("s3:///prefix")
	assert.Error(t, err)
}

func TestBucketPutGetList(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	b := NewBucket(mem, "docs", "site")
	assert.Equal(t, "site/", b.Prefix())

	require.NoError(t, b.Put(ctx, "button.snap", []byte("exports"), ""))
	require.NoError(t, b.Put(ctx, "/text.snap", []byte("more"), "text/plain"))

	data, err := b.Get(ctx, "button.snap")
	require.NoError(t, err)
	assert.Equal(t, "exports", string(data))
	assert.Equal(t, "application/octet-stream", mem.ContentTypeOf("docs", "site/button.snap"))

	_, err = b.Get(ctx, "missing.snap")
	assert.ErrorIs(t, err, ErrNotFound)

	objs, err := b.List(ctx)
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "button.snap", objs[0].Key)
	assert.Equal(t, int64(7), objs[0].Size)
	assert.Equal(t, "text.snap", objs[1].Key)

	require.NoError(t, b.Delete(ctx, "text.snap"))
	assert.Equal(t, 1, mem.Len())
}

func TestBucketPrefixIsolation(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, NewBucket(mem, "docs", "a").Put(ctx, "x", []byte("1"), ""))
	require.NoError(t, NewBucket(mem, "docs", "ab").Put(ctx, "y", []byte("2"), ""))

	objs, err := NewBucket(mem, "docs", "a").List(ctx)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "x", objs[0].Key)
}

func TestUploadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "stories"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stories", "button--main.html"), []byte("<button></button>"), 0644))

	mem := NewMemory()
	keys, err := NewBucket(mem, "docs", "v1/").UploadDir(context.Background(), dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1/index.html", "v1/stories/button--main.html"}, keys)
	assert.Equal(t, "text/html; charset=utf-8", mem.ContentTypeOf("docs", "v1/index.html"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/plain; charset=utf-8", ContentType("button.snap"))
	assert.Equal(t, "application/octet-stream", ContentType("LICENSE"))
}

func TestNewClient(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(t.TempDir(), "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	c, err := NewClient(context.Background(), Options{Region: "eu-west-1", Endpoint: "http://localhost:9000", PathStyle: true})
	require.NoError(t, err)
	opts := c.Options()
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.True(t, opts.UsePathStyle)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *opts.BaseEndpoint)

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKID", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}
