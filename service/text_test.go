package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTextGenerator 返回固定应答并记录调用参数
type fakeTextGenerator struct {
	response string
	err      error

	lastSystem      string
	lastUser        string
	lastTemperature float32
	calls           int
}

func (f *fakeTextGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	f.lastTemperature = temperature
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGenerateTitles(t *testing.T) {
	ai := &fakeTextGenerator{
		response: "1. \"제주, 봄의 선물\"\n2. \"가족과 함께 걷는 길\"\n3. 바다가 부르는 계절\n4. 유채꽃 피는 날\n5. 느리게 흐르는 제주",
	}
	svc := NewTextService(ai, zap.NewNop())

	titles, err := svc.GenerateTitles(context.Background(), testTrip)
	require.NoError(t, err)
	require.Len(t, titles, 5)

	for _, title := range titles {
		assert.NotEmpty(t, title)
		assert.NotContains(t, title, `"`)
		assert.False(t, strings.Contains(title, "\n"))
	}
	assert.Equal(t, 1, ai.calls, "模型只调用一次")
	assert.Equal(t, float32(0), ai.lastTemperature, "标题使用服务端默认温度")
	assert.Contains(t, ai.lastUser, "Jeju")
}

func TestGenerateTitles_CapabilityError(t *testing.T) {
	ai := &fakeTextGenerator{err: errors.New("timeout")}
	svc := NewTextService(ai, zap.NewNop())

	titles, err := svc.GenerateTitles(context.Background(), testTrip)
	assert.Error(t, err)
	assert.Nil(t, titles)
	assert.Equal(t, 1, ai.calls, "失败不重试")
}

func TestGenerateIntroOutro(t *testing.T) {
	ai := &fakeTextGenerator{
		response: "인트로:\n1. 시작: 공항 출발.\n2. 설렘: 창밖 풍경.\n\n아웃트로:\n1. 여운: 노을.\n2. 끝: 페이드아웃.",
	}
	svc := NewTextService(ai, zap.NewNop())

	intros, outros, err := svc.GenerateIntroOutro(context.Background(), "제주, 봄의 선물")
	require.NoError(t, err)
	assert.Len(t, intros, 2)
	assert.Len(t, outros, 2)
	assert.Contains(t, ai.lastUser, "제주, 봄의 선물")
}

func TestGenerateStoryboard(t *testing.T) {
	ai := &fakeTextGenerator{response: sampleStoryboard}
	svc := NewTextService(ai, zap.NewNop())

	scenes, err := svc.GenerateStoryboard(context.Background(), testTrip,
		"제목", "인트로", "아웃트로", []string{"http://ref/1.jpg"})
	require.NoError(t, err)
	require.Len(t, scenes, 2)

	assert.Equal(t, float32(storyboardTemperature), ai.lastTemperature)
	assert.Empty(t, ai.lastUser, "分镜提示词整段作为 system 消息")
	assert.Contains(t, ai.lastSystem, "Jeju")
	assert.Contains(t, ai.lastSystem, "http://ref/1.jpg")
}

func TestGenerateStoryboard_ParseFailure(t *testing.T) {
	ai := &fakeTextGenerator{response: "- scene 첫째 \"서수 아님\":\n1. **영상**: x"}
	svc := NewTextService(ai, zap.NewNop())

	scenes, err := svc.GenerateStoryboard(context.Background(), testTrip, "t", "i", "o", nil)
	require.Error(t, err)
	assert.Nil(t, scenes)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}
