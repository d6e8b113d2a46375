package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"TripToVideo-server/models"
)

// 分镜应答解析：纯函数，无 I/O

// sceneDelimiter 提示词要求模型在每个场景前输出的固定标记
const sceneDelimiter = "- scene"

// SceneField 场景的四个文本字段
type SceneField int

const (
	FieldDescription SceneField = iota
	FieldCameraAngle
	FieldCameraMovement
	FieldComposition
)

// DefaultSceneLabels 字段标签映射表。模型输出措辞没有契约保证，
// 调用方可以传入自定义表来适配不同提示词
var DefaultSceneLabels = map[string]SceneField{
	"영상":     FieldDescription,
	"화각":     FieldCameraAngle,
	"카메라 무빙": FieldCameraMovement,
	"구도":     FieldComposition,
}

// ParseError 分镜解析错误，记录出错的段落
type ParseError struct {
	Segment string
	Reason  string
}

func (e *ParseError) Error() string {
	seg := e.Segment
	if len(seg) > 120 {
		seg = seg[:120] + "..."
	}
	return fmt.Sprintf("storyboard parse failed: %s (segment: %q)", e.Reason, seg)
}

// ParseStoryboard 将模型的分镜应答解析为场景序列，顺序与文本中出现顺序一致
func ParseStoryboard(raw string) ([]models.Scene, error) {
	return ParseStoryboardWithLabels(raw, DefaultSceneLabels)
}

// ParseStoryboardWithLabels 同 ParseStoryboard，使用自定义字段标签表
// 场景标题行缺少可解析的序号时整个解析失败；其余字段缺失则置空串
func ParseStoryboardWithLabels(raw string, labels map[string]SceneField) ([]models.Scene, error) {
	segments := strings.Split(raw, sceneDelimiter)
	if len(segments) < 2 {
		return nil, nil
	}

	scenes := make([]models.Scene, 0, len(segments)-1)
	// 第一段是标记之前的内容（空白或前言），丢弃
	for _, segment := range segments[1:] {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		lines := strings.Split(segment, "\n")

		// 首行为标题行："序号 "제목":"
		titleLine := strings.TrimSpace(lines[0])
		parts := strings.SplitN(titleLine, " ", 2)
		orderNum, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, &ParseError{Segment: segment, Reason: fmt.Sprintf("场景序号无法解析: %q", parts[0])}
		}
		title := ""
		if len(parts) > 1 {
			title = cleanSceneTitle(parts[1])
		}

		scene := models.Scene{OrderNum: orderNum, SceneTitle: title}
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if line == "" || !strings.Contains(line, ": ") {
				continue
			}
			kv := strings.SplitN(line, ": ", 2)
			field, ok := labels[cleanFieldKey(kv[0])]
			if !ok {
				// 未知标签行静默忽略
				continue
			}
			value := strings.TrimSpace(kv[1])
			switch field {
			case FieldDescription:
				scene.Description = value
			case FieldCameraAngle:
				scene.CameraAngle = value
			case FieldCameraMovement:
				scene.CameraMovement = value
			case FieldComposition:
				scene.Composition = value
			}
		}
		scenes = append(scenes, scene)
	}
	return scenes, nil
}

// cleanSceneTitle 去掉标题外层引号和结尾冒号
func cleanSceneTitle(title string) string {
	title = strings.TrimSpace(title)
	title = strings.TrimSuffix(title, ":")
	title = strings.Trim(title, `"`)
	return strings.TrimSpace(title)
}

// cleanFieldKey 去掉键前的编号（"1. "）和装饰符（"**"）
func cleanFieldKey(key string) string {
	key = strings.TrimSpace(key)
	if idx := strings.Index(key, ". "); idx >= 0 {
		key = key[idx+2:]
	}
	return strings.Trim(key, "* ")
}

var numberedItemRe = regexp.MustCompile(`\d+\.\s`)

// SplitNumberedList 按 "数字." 编号切分列表应答，去掉首段和外层引号
func SplitNumberedList(raw string) []string {
	parts := numberedItemRe.Split(raw, -1)
	items := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		part = strings.ReplaceAll(part, `"`, "")
		items = append(items, part)
	}
	return items
}

// outroMarker 인트로 列表与 아웃트로 列表之间的分隔标记
const outroMarker = "\n\n아웃트로:"

// SplitIntroOutro 将인트로/아웃트로应答切成两个列表
// 行首编号存在则剥掉，不存在按原样保留（防模型漏编号）
func SplitIntroOutro(raw string) (intros, outros []string) {
	sections := strings.SplitN(raw, outroMarker, 2)
	introSection := strings.TrimSpace(strings.Replace(sections[0], "인트로:", "", 1))
	outroSection := ""
	if len(sections) > 1 {
		outroSection = strings.TrimSpace(sections[1])
	}
	return splitListLines(introSection), splitListLines(outroSection)
}

func splitListLines(section string) []string {
	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] >= '0' && line[0] <= '9' {
			if parts := strings.SplitN(line, " ", 2); len(parts) == 2 {
				line = parts[1]
			}
		}
		items = append(items, line)
	}
	return items
}
