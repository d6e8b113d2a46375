package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"TripToVideo-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeImageGenerator 统计并发度，failOrder 匹配时失败
type fakeImageGenerator struct {
	resultURL string
	failOrder int

	inFlight int32
	maxSeen  int32
	calls    int32
}

func (f *fakeImageGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		max := atomic.LoadInt32(&f.maxSeen)
		if cur <= max || atomic.CompareAndSwapInt32(&f.maxSeen, max, cur) {
			break
		}
	}
	atomic.AddInt32(&f.calls, 1)
	time.Sleep(20 * time.Millisecond)

	if f.failOrder > 0 && atomic.LoadInt32(&f.calls) == int32(f.failOrder) {
		return "", fmt.Errorf("%w: 模拟失败", ErrGenerationFailed)
	}
	return f.resultURL, nil
}

func makeRequests(n int) []models.ImageGenerationRequest {
	reqs := make([]models.ImageGenerationRequest, n)
	for i := range reqs {
		reqs[i] = models.ImageGenerationRequest{
			StoryboardId:     "sb-7",
			OrderNum:         i + 1,
			SceneDescription: fmt.Sprintf("scene %d", i+1),
			Destination:      "Jeju",
			Season:           "spring",
		}
	}
	return reqs
}

func newTestImageService(t *testing.T, gen *fakeImageGenerator, storage *fakeStorage) (*ImageService, *httptest.Server) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(srv.Close)
	gen.resultURL = srv.URL

	transfer := NewTransfer(storage, zap.NewNop())
	return NewImageService(gen, transfer, zap.NewNop()), srv
}

func TestGenerateImages_AllOutcomesCollected(t *testing.T) {
	gen := &fakeImageGenerator{}
	storage := newFakeStorage()
	svc, srv := newTestImageService(t, gen, storage)

	reqs := makeRequests(5)
	results := svc.GenerateImages(context.Background(), reqs, 3)

	require.Len(t, results, 5)
	for i, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, srv.URL, r.ImageURL)
		assert.Equal(t, i+1, r.OrderNum)
	}
	// 每个分镜都落到确定的存储 key
	for i := 1; i <= 5; i++ {
		assert.Contains(t, storage.uploads, fmt.Sprintf("images/storyboard/sb-7/%d.jpg", i))
	}
}

func TestGenerateImages_ConcurrencyBounded(t *testing.T) {
	gen := &fakeImageGenerator{}
	svc, _ := newTestImageService(t, gen, newFakeStorage())

	svc.GenerateImages(context.Background(), makeRequests(8), 2)

	assert.LessOrEqual(t, atomic.LoadInt32(&gen.maxSeen), int32(2),
		"同时运行的流水线数不能超过 max_concurrency")
	assert.Equal(t, int32(8), atomic.LoadInt32(&gen.calls))
}

func TestGenerateImages_FailureIsolated(t *testing.T) {
	gen := &fakeImageGenerator{failOrder: 2}
	svc, _ := newTestImageService(t, gen, newFakeStorage())

	results := svc.GenerateImages(context.Background(), makeRequests(4), 1)

	require.Len(t, results, 4)
	var failed, succeeded int
	for _, r := range results {
		if r.Err != nil {
			failed++
			assert.True(t, errors.Is(r.Err, ErrGenerationFailed))
		} else {
			succeeded++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 3, succeeded, "单条失败不影响其它条")

	urls := SuccessfulURLs(results)
	assert.Len(t, urls, 3)
}

func TestGenerateImages_UploadFailureTurnsIntoError(t *testing.T) {
	gen := &fakeImageGenerator{}
	storage := newFakeStorage()
	storage.failErr = errors.New("credentials not available")
	svc, _ := newTestImageService(t, gen, storage)

	results := svc.GenerateImages(context.Background(), makeRequests(2), 2)

	for _, r := range results {
		require.Error(t, r.Err)
		assert.Contains(t, r.Err.Error(), "上传失败")
	}
	assert.Empty(t, SuccessfulURLs(results))
}

func TestGenerateImages_ZeroConcurrencyClamped(t *testing.T) {
	gen := &fakeImageGenerator{}
	svc, _ := newTestImageService(t, gen, newFakeStorage())

	results := svc.GenerateImages(context.Background(), makeRequests(2), 0)
	require.Len(t, results, 2)
	assert.LessOrEqual(t, atomic.LoadInt32(&gen.maxSeen), int32(1))
}
