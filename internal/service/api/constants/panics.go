package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired     = "AppConfig는 필수입니다"
	PanicMsgCatalogReaderRequired = "CatalogReader는 필수입니다"
	PanicMsgAlertTrackerRequired  = "AlertTracker는 필수입니다"
	PanicMsgHealthCheckerRequired = "HealthChecker는 필수입니다"

	// PanicMsgRateLimitRequestsPerSecondInvalid 패닉 메시지: requestsPerSecond 설정 오류
	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimit: requestsPerSecond는 양수여야 합니다 (현재값: %d)"

	// PanicMsgRateLimitBurstInvalid 패닉 메시지: burst 설정 오류
	PanicMsgRateLimitBurstInvalid = "RateLimit: burst는 양수여야 합니다 (현재값: %d)"
)
