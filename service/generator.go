package service

import (
	"context"
	"fmt"
	"sync"

	"TripToVideo-server/models"

	"go.uber.org/zap"
)

// SceneImageResult 单个分镜图片流水线的结果，Err 非空表示该条失败
type SceneImageResult struct {
	StoryboardId string
	OrderNum     int
	ImageURL     string
	Err          error
}

// ImageService 图片生成编排：提示词 -> 生图 -> 搬运到对象存储
type ImageService struct {
	ai       ImageGenerator
	transfer *Transfer
	logger   *zap.Logger
}

func NewImageService(ai ImageGenerator, transfer *Transfer, logger *zap.Logger) *ImageService {
	return &ImageService{ai: ai, transfer: transfer, logger: logger}
}

// GenerateSceneImage 执行单个分镜的完整流水线，返回模型给出的远程图片 URL
func (s *ImageService) GenerateSceneImage(ctx context.Context, req models.ImageGenerationRequest) (string, error) {
	prompt := BuildSceneImagePrompt(req)

	imageURL, err := s.ai.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}

	objectName := ImageObjectName(req.StoryboardId, req.OrderNum)
	ok, err := s.transfer.Transfer(ctx, imageURL, objectName)
	if err != nil {
		return "", fmt.Errorf("图片搬运失败: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("图片上传失败: %s", objectName)
	}
	return imageURL, nil
}

// GenerateImages 按 maxConcurrency 并发执行全部流水线，等待每一条完成后返回。
// 每条请求独立成败：单条失败不影响其它条，调用方拿到全部结果
func (s *ImageService) GenerateImages(ctx context.Context, reqs []models.ImageGenerationRequest, maxConcurrency int) []SceneImageResult {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	results := make([]SceneImageResult, len(reqs))
	sem := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req models.ImageGenerationRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			url, err := s.GenerateSceneImage(ctx, req)
			results[i] = SceneImageResult{
				StoryboardId: req.StoryboardId,
				OrderNum:     req.OrderNum,
				ImageURL:     url,
				Err:          err,
			}
			if err != nil {
				s.logger.Error("分镜图片生成失败",
					zap.String("storyboard_id", req.StoryboardId),
					zap.Int("order_num", req.OrderNum),
					zap.Error(err))
			}
		}(i, req)
	}
	wg.Wait()
	return results
}

// SuccessfulURLs 提取成功条目的图片 URL，顺序与请求一致
func SuccessfulURLs(results []SceneImageResult) []string {
	urls := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			urls = append(urls, r.ImageURL)
		}
	}
	return urls
}
