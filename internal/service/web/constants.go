package web

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService = "web.service"
	ComponentHandler = "web.handler"
)

const (
	// ServiceName 생명주기 로그 메시지에 표시되는 서비스 이름
	ServiceName = "Web"

	// Product User-Agent 헤더에 표시되는 제품 이름
	Product = "trends-frontend"
)

const (
	logMsgViewResolved = "상태 페이지 뷰 상태 결정"
	logMsgViewPending  = "대기 시간 안에 백엔드 상태가 결정되지 않아 로딩 상태로 응답합니다"
)
