package system

// HealthResponse 백엔드 헬스체크 응답
//
// 프론트엔드 상태 페이지는 이 두 필드를 그대로 표시합니다.
type HealthResponse struct {
	// 서버 상태
	Status string `json:"status" example:"healthy"`
	// 애플리케이션 버전
	Version string `json:"version" example:"0.1.0"`
}
