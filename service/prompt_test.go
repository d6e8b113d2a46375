package service

import (
	"testing"

	"TripToVideo-server/models"

	"github.com/stretchr/testify/assert"
)

var testTrip = models.TripContext{
	Destination:    "Jeju",
	Description:    "화산섬과 해변",
	Purpose:        "relaxation",
	Companions:     "family",
	CompanionCount: 3,
	Season:         "spring",
}

func TestBuildTitlePrompt_Deterministic(t *testing.T) {
	s1, u1 := BuildTitlePrompt(testTrip)
	s2, u2 := BuildTitlePrompt(testTrip)
	assert.Equal(t, s1, s2)
	assert.Equal(t, u1, u2)
}

func TestBuildTitlePrompt_Interpolation(t *testing.T) {
	_, user := BuildTitlePrompt(testTrip)
	assert.Contains(t, user, "Jeju")
	assert.Contains(t, user, "relaxation")
	assert.Contains(t, user, "family (3명)")
	assert.Contains(t, user, "spring")
}

func TestBuildTitlePrompt_EmptyFields(t *testing.T) {
	// 缺省字段渲染为空段，不报错
	_, user := BuildTitlePrompt(models.TripContext{})
	assert.Contains(t, user, "여행지: ,")
}

func TestBuildIntroOutroPrompt(t *testing.T) {
	_, user := BuildIntroOutroPrompt("제주, 봄의 선물")
	assert.Contains(t, user, "제주, 봄의 선물")
}

func TestBuildStoryboardPrompt(t *testing.T) {
	prompt := BuildStoryboardPrompt(testTrip, "제목", "인트로 텍스트", "아웃트로 텍스트",
		[]string{"http://img/a.jpg", "http://img/b.jpg"})

	assert.Contains(t, prompt, "- scene")
	assert.Contains(t, prompt, "Jeju")
	assert.Contains(t, prompt, "제목: 제목")
	assert.Contains(t, prompt, "인트로 텍스트")
	assert.Contains(t, prompt, "http://img/a.jpg, http://img/b.jpg")

	again := BuildStoryboardPrompt(testTrip, "제목", "인트로 텍스트", "아웃트로 텍스트",
		[]string{"http://img/a.jpg", "http://img/b.jpg"})
	assert.Equal(t, prompt, again)
}

func TestBuildSceneImagePrompt(t *testing.T) {
	req := models.ImageGenerationRequest{
		StoryboardId:     "sb-1",
		OrderNum:         2,
		SceneDescription: "해변을 걷는 가족",
		Destination:      "Jeju",
		Purpose:          "relaxation",
		Companion:        "family",
		CompanionCount:   3,
		Season:           "spring",
		ImageUrls:        []string{"http://ref/1.jpg"},
	}
	prompt := BuildSceneImagePrompt(req)

	assert.Contains(t, prompt, "해변을 걷는 가족")
	assert.Contains(t, prompt, "Jeju")
	assert.Contains(t, prompt, "3 family(s)")
	assert.Contains(t, prompt, "spring season")
	assert.Contains(t, prompt, "http://ref/1.jpg")
}
