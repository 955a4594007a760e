package constants

// 내부 로깅을 위한 메시지 상수입니다.
// 서비스 생명주기 메시지의 %s 에는 서비스 이름(API, Web 등)이 들어갑니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "%s 서비스 시작중..."
	LogMsgServiceStarted        = "%s 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "%s 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "%s 서비스 중지중..."
	LogMsgServiceStopped        = "%s 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "%s 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "%s 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "%s 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "%s 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "%s 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	LogMsgApplicationStartup  = "애플리케이션 시작"
	LogMsgApplicationShutdown = "애플리케이션 종료"

	// ------------------------------------------------------------------------------------------------
	// 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgHealthCheck  = "헬스체크 요청"
	LogMsgVersionInfo  = "버전 정보 요청"
	LogMsgTriggerFetch = "기사 수집 작업 실행 요청"

	// ------------------------------------------------------------------------------------------------
	// 미들웨어 / 에러 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTPRequest        = "HTTP 요청"
	LogMsgPanicRecovered     = "패닉 복구: 예기치 못한 오류가 발생하여 안전하게 복구했습니다"
	LogMsgRateLimitExceeded  = "Rate limit 초과"
	LogMsgHTTP4xxClientError = "클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "서버 내부 오류"
)
