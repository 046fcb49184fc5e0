package response

// ErrorResponse API 오류 응답
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드 (예: 400, 409, 502)
	ResultCode int `json:"result_code" example:"409"`

	// Message 에러 메시지
	Message string `json:"message" example:"최근에 알림이 발송된 상품입니다. 잠시 후 다시 시도해 주세요"`
}
