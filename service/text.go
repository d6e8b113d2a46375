package service

import (
	"context"

	"TripToVideo-server/models"

	"go.uber.org/zap"
)

// 分镜脚本生成固定低温度，标题/인트로用服务端默认值
const storyboardTemperature = 0.2

// TextService 文本生成编排：构造提示词 -> 调用模型 -> 解析应答
// 每次调用只发一次请求，失败不重试
type TextService struct {
	ai     TextGenerator
	logger *zap.Logger
}

func NewTextService(ai TextGenerator, logger *zap.Logger) *TextService {
	return &TextService{ai: ai, logger: logger}
}

// GenerateTitles 推荐 5 个候选标题（实际数量以模型返回为准）
func (s *TextService) GenerateTitles(ctx context.Context, tc models.TripContext) ([]string, error) {
	system, user := BuildTitlePrompt(tc)
	content, err := s.ai.GenerateText(ctx, system, user, 0)
	if err != nil {
		return nil, err
	}
	titles := SplitNumberedList(content)
	s.logger.Info("标题推荐完成",
		zap.String("destination", tc.Destination),
		zap.Int("count", len(titles)))
	return titles, nil
}

// GenerateIntroOutro 基于标题推荐인트로/아웃트로两个列表
func (s *TextService) GenerateIntroOutro(ctx context.Context, title string) ([]string, []string, error) {
	system, user := BuildIntroOutroPrompt(title)
	content, err := s.ai.GenerateText(ctx, system, user, 0)
	if err != nil {
		return nil, nil, err
	}
	intros, outros := SplitIntroOutro(content)
	s.logger.Info("인트로/아웃트로推荐完成",
		zap.Int("intros", len(intros)),
		zap.Int("outros", len(outros)))
	return intros, outros, nil
}

// GenerateStoryboard 生成并解析分镜脚本
// 解析失败时整个调用失败，不返回部分场景
func (s *TextService) GenerateStoryboard(ctx context.Context, tc models.TripContext, title, intro, outro string, imageUrls []string) ([]models.Scene, error) {
	prompt := BuildStoryboardPrompt(tc, title, intro, outro, imageUrls)
	content, err := s.ai.GenerateText(ctx, prompt, "", storyboardTemperature)
	if err != nil {
		return nil, err
	}
	scenes, err := ParseStoryboard(content)
	if err != nil {
		s.logger.Error("分镜应答解析失败", zap.Error(err))
		return nil, err
	}
	s.logger.Info("分镜脚本生成完成",
		zap.String("title", title),
		zap.Int("scenes", len(scenes)))
	return scenes, nil
}
