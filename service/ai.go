package service

import (
	"context"
	"errors"
	"fmt"

	"TripToVideo-server/config"

	openai "github.com/sashabaranov/go-openai"
)

// ErrGenerationFailed 模型调用失败（超时、空应答等），不做内部重试
var ErrGenerationFailed = errors.New("generation failed")

// TextGenerator 文本生成能力接口，便于测试时替换为假实现
type TextGenerator interface {
	// GenerateText 发起一次 chat completion；temperature 为 0 时使用服务端默认值
	GenerateText(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error)
}

// ImageGenerator 图片生成能力接口，返回生成图片的远程 URL
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient 同时实现 TextGenerator 与 ImageGenerator
// 客户端本身无状态，进程启动时创建一次，可被 worker 并发复用
type OpenAIClient struct {
	client     *openai.Client
	chatModel  string
	imageModel string
	imageSize  string
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		client:     openai.NewClient(cfg.OpenAI.APIKey),
		chatModel:  cfg.OpenAI.ChatModel,
		imageModel: cfg.OpenAI.ImageModel,
		imageSize:  cfg.OpenAI.ImageSize,
	}
}

func (c *OpenAIClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
	}
	if userPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: userPrompt,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: 模型返回空应答", ErrGenerationFailed)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:  c.imageModel,
		Prompt: prompt,
		N:      1,
		Size:   c.imageSize,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("%w: 模型未返回图片 URL", ErrGenerationFailed)
	}
	return resp.Data[0].URL, nil
}
