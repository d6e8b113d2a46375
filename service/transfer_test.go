package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStorage 记录上传调用，failErr 非空时上传失败
type fakeStorage struct {
	mu      sync.Mutex
	uploads map[string][]byte
	failErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) UploadFile(ctx context.Context, localPath, objectName string) error {
	if f.failErr != nil {
		return f.failErr
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads[objectName] = data
	return nil
}

func TestImageObjectName(t *testing.T) {
	assert.Equal(t, "images/storyboard/42/3.jpg", ImageObjectName("42", 3))
	// key 只由 (storyboard_id, order_num) 决定
	assert.Equal(t, ImageObjectName("42", 3), ImageObjectName("42", 3))
}

func TestTransfer_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	storage := newFakeStorage()
	tr := NewTransfer(storage, zap.NewNop())

	ok, err := tr.Transfer(context.Background(), srv.URL, "images/storyboard/42/3.jpg")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("jpeg-bytes"), storage.uploads["images/storyboard/42/3.jpg"])
}

func TestTransfer_FetchFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	tr := NewTransfer(newFakeStorage(), zap.NewNop())

	ok, err := tr.Transfer(context.Background(), srv.URL, "images/storyboard/1/1.jpg")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestTransfer_UploadFailureReturnsFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	storage := newFakeStorage()
	storage.failErr = errors.New("backend unreachable")
	tr := NewTransfer(storage, zap.NewNop())

	// 上传失败按约定返回 false 而不是 error
	ok, err := tr.Transfer(context.Background(), srv.URL, "images/storyboard/1/1.jpg")
	assert.False(t, ok)
	assert.NoError(t, err)
}
