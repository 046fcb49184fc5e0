package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (30초)
	// 알림 발송 요청은 외부 채널 응답을 기다리므로 조회 API보다 여유 있게 잡습니다.
	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 45 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기
	// 알림 요청 본문은 상품 ID 하나뿐이므로 작게 제한합니다.
	DefaultMaxBodySize = "16K"

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량
	DefaultRateLimitBurst = 40
)
