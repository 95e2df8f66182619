package storage

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureUploader struct {
	key         string
	contentType string
	body        []byte
}

func (u *captureUploader) Upload(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	u.key = key
	u.contentType = contentType
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	u.body = b
	return "https://cdn.test/" + key, nil
}

func TestRandomKey(t *testing.T) {
	a := RandomKey()
	b := RandomKey()

	assert.True(t, strings.HasPrefix(a, "uploads/"))
	assert.NotEqual(t, a, b)
}

func TestUploadMultipart(t *testing.T) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	fh := req.MultipartForm.File["resume"][0]

	up := &captureUploader{}
	url, err := UploadMultipart(context.Background(), up, fh)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/"+up.key, url)
	assert.Equal(t, []byte("pdf-bytes"), up.body)
	assert.NotEmpty(t, up.contentType)
}
