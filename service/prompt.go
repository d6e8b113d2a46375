package service

import (
	"fmt"
	"strings"

	"TripToVideo-server/models"
)

// 提示词构造：纯函数，只做字符串拼接，缺省字段渲染为空串

const titleSystemPrompt = "### 지시사항 ###\n" +
	"당신은 여행 관련 제목을 추천하는 전문가입니다. 각 제목은 매력적이고 주제를 잘 반영해야 합니다. 작업을 잘 수행하면 보상이 주어질 것입니다.\n\n" +
	"### 작성 형식 ###\n" +
	"항목순서. 여기에 제목을 기입해주세요.\n\n" +
	"예시:\n" +
	"1. [제목 예시]\n" +
	"2. [제목 예시]\n" +
	"3. [제목 예시]\n" +
	"4. [제목 예시]\n" +
	"5. [제목 예시]\n\n" +
	"### 주의사항 ###\n" +
	"정중한 표현은 피하고, 간결하고 명확하게 작성하세요. 제목은 자연스럽게 사람과 같은 스타일로 작성되어야 하며, 본래의 형식을 유지하세요."

const introOutroSystemPrompt = "당신은 여행 영상 스토리보드를 위한 인트로와 아웃트로를 추천하는 전문가입니다. 각 인트로와 아웃트로는 영상의 분위기를 잘 반영해야 합니다. 올바르게 작성된 경우 보상을 받을 것입니다.\n\n" +
	"예시:\n" +
	"1. 새로운 시작: 첫 장면은 자연의 아름다움을 강조하며 화면이 서서히 밝아집니다.\n\n" +
	"### 주의사항 ###\n" +
	"정중한 표현은 피하고, 간결하고 명확하게 작성하세요.\n" +
	"### 작성 형식 ###\n" +
	"항목순서. [인트로/아웃트로 제목]: [설명]\n" +
	"인트로:\n1. \n2. \n3. \n4. \n5. \n\n" +
	"아웃트로:\n1. \n2. \n3. \n4. \n5. \n\n" +
	"작업을 잘 수행하면 보상을 받을 수 있습니다."

// BuildTitlePrompt 返回标题推荐的 system / user 提示词
func BuildTitlePrompt(tc models.TripContext) (string, string) {
	user := fmt.Sprintf("여행지: %s, 여행지 특성: %s, 여행 목적: %s, 여행지 계절: %s, 동행인: %s (%d명)\n",
		tc.Destination, tc.Description, tc.Purpose, tc.Season, tc.Companions, tc.CompanionCount)
	user += "위 정보에 기반하여 여행 영상의 제목을 5가지 추천해줘."
	return titleSystemPrompt, user
}

// BuildIntroOutroPrompt 返回基于标题的인트로/아웃트로推荐提示词
func BuildIntroOutroPrompt(title string) (string, string) {
	user := fmt.Sprintf("여행 영상 제목: %s\n", title)
	user += "이 제목을 기반으로 인트로와 아웃트로를 5가지 추천해줘."
	return introOutroSystemPrompt, user
}

// BuildStoryboardPrompt 构造分镜脚本生成提示词；整段作为 system 消息发送
func BuildStoryboardPrompt(tc models.TripContext, title, intro, outro string, imageUrls []string) string {
	return fmt.Sprintf(`### 지시사항 ###
당신은 여행 영상 스토리보드 생성 전문가입니다. 주어진 정보를 바탕으로 적당한 개수의 씬으로 나눠서 스토리보드를 작성해주세요. 스토리보드 작성 시, 각 항목의 지침을 철저히 따르고 정확하게 작성해주세요. 다음의 지시사항을 따르면 팁을 제공할 것입니다.
씬을 제외하고는 어떠한 추가적인 내용을 포함하지 말아주세요.

스토리보드 양식:
- scene (여기에 씬 순서를 넣어주세요.) "여기에 씬 제목을 넣어주세요.":
    1. **영상**: 이 씬에서 어떤 장면이 나오는지 자세히 설명해주세요. (중요: 자연스럽고 사람과 같은 스타일로 서술)
    2. **화각**: 카메라가 어떤 각도에서 장면을 촬영하는지 설명해주세요.
    3. **카메라 무빙**: 카메라가 어떻게 움직이는지, 특별한 촬영 기법이 있다면 설명해주세요. (특정 장비나 기법 언급 없이, 단순히 카메라 움직임에만 집중)
    4. **구도**: 화면에서 대상이 어떻게 배치되고, 어떤 느낌을 주는지 설명해주세요.

### 예시 ###
- scene 1 "별과 역사의 시작":
1. **영상**: 소백산 천문대의 전경과 주변 자연경관을 보여주는 장면으로 시작. 푸른 하늘 아래 우뚝 서 있는 천문대의 모습과 숲으로 둘러싸인 아름다운 경치를 보여줍니다.
2. **화각**: 드론 카메라로 공중에서 천문대와 주변 풍경을 넓게 담습니다.
3. **카메라 무빙**: 천문대를 중심으로 둥글게 빙글빙글 돌며 점점 하강해 천문대의 근접 샷으로 이어집니다.
4. **구도**: 천문대를 중심으로 하늘과 숲이 좌우 대칭으로 배치되어 있고, 천문대가 하늘을 향해 솟아오른 느낌을 줍니다.

당신의 작업은 여행지와 인간의 움직임이 조화롭게 어우러지는 영상을 기반으로, 스토리보드 내용의 자연스러운 흐름을 만들어주세요.
여행지의 매력을 돋보이게 하고, 여행자들의 감정을 담아낼 수 있는 구성으로 작성해주세요.

여행지: %s
여행지 특성: %s
여행 목적: %s
여행지 계절: %s
동행인: %s (%d명)
제목: %s
인트로: %s
아웃트로: %s
이미지 URL: %s`,
		tc.Destination, tc.Description, tc.Purpose, tc.Season, tc.Companions, tc.CompanionCount,
		title, intro, outro, strings.Join(imageUrls, ", "))
}

// BuildSceneImagePrompt 构造单个分镜的图片生成提示词
func BuildSceneImagePrompt(req models.ImageGenerationRequest) string {
	return fmt.Sprintf(`You are an expert in generating images for storyboards.
Create a dynamic, cinematic image based on a video storyboard scene description: %s.
This scene is set in %s, where the purpose of the trip is %s.
The traveler is accompanied by %d %s(s).
The scene takes place during the %s season, which should influence the atmosphere, colors, and overall mood of the image.
Reference the following images of the destination for accuracy in visual elements: %s.
Under no circumstances should the image include overlays, user interface elements, camera equipment, or any signs of filming processes.
The image must solely focus on the scene itself, providing a natural, immersive view that resembles the final, edited shot of a travel video.`,
		req.SceneDescription, req.Destination, req.Purpose,
		req.CompanionCount, req.Companion, req.Season,
		strings.Join(req.ImageUrls, ", "))
}
