package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 400 Bad Request
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgBadRequestInvalidTop  = "limit은 1 이상 100 이하의 정수여야 합니다"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 409 Conflict
	ErrMsgConflict = "요청이 현재 상태와 충돌합니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 415 Unsupported Media Type
	ErrMsgUnsupportedMediaType = "지원하지 않는 Content-Type 형식입니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 502 Bad Gateway
	ErrMsgBadGateway = "알림 채널로 발송하지 못했습니다. 잠시 후 다시 시도해주세요"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "서비스를 일시적으로 사용할 수 없습니다"

	// 504 Gateway Timeout
	ErrMsgGatewayTimeout = "외부 서비스 응답 시간이 초과되었습니다"
)
