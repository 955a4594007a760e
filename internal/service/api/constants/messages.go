package constants

// 기사 수집 작업 예약 성공 응답 메시지입니다.
const (
	MsgIngestionJobScheduled = "Article fetching job has been scheduled successfully."
)

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 400 Bad Request
	ErrMsgBadRequest = "잘못된 요청입니다"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 409 Conflict
	ErrMsgIngestionJobAlreadyRunning = "기사 수집 작업이 이미 실행 중입니다. 잠시 후 다시 시도해주세요"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	ErrMsgIngestionScheduleFailed = "기사 수집 작업을 예약하지 못했습니다"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "서비스가 점검 중이거나 종료되었습니다. 관리자에게 문의해 주세요"
)

// 시스템 시작 시 발생할 수 있는 패닉 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	PanicMsgSetupRequired = "HTTP 서버 구성 함수는 필수입니다"

	PanicMsgJobTriggerRequired = "JobTrigger는 필수입니다"

	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: %d)"

	PanicMsgRateLimitBurstInvalid = "RateLimiting: burst는 양수여야 합니다 (현재값: %d)"
)
