package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageObjectName 生成分镜图片的存储路径，同一 (storyboard_id, order_num) 总是同一对象，
// 重新生成时直接覆盖
func ImageObjectName(storyboardID string, orderNum int) string {
	return fmt.Sprintf("images/storyboard/%s/%d.jpg", storyboardID, orderNum)
}

// Transfer 把远程生成的图片搬运到对象存储
type Transfer struct {
	storage    ObjectStorage
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTransfer(storage ObjectStorage, logger *zap.Logger) *Transfer {
	return &Transfer{
		storage: storage,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
		logger: logger,
	}
}

// Transfer 下载 remoteURL 到唯一命名的临时文件再上传到 objectName。
// 约定：下载失败返回 error；上传失败只记日志并返回 false，调用方必须检查返回值。
// 临时文件在所有退出路径上都会被删除。
func (t *Transfer) Transfer(ctx context.Context, remoteURL, objectName string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return false, fmt.Errorf("创建下载请求失败: %w", err)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("下载图片失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("下载图片状态码: %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", fmt.Sprintf("temp_image_%s_*.jpg", uuid.NewString()))
	if err != nil {
		return false, fmt.Errorf("创建临时文件失败: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return false, fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("关闭临时文件失败: %w", err)
	}

	if err := t.storage.UploadFile(ctx, tmp.Name(), objectName); err != nil {
		t.logger.Error("上传对象存储失败",
			zap.String("object", objectName),
			zap.Error(err))
		return false, nil
	}

	t.logger.Info("图片上传成功", zap.String("object", objectName))
	return true, nil
}
