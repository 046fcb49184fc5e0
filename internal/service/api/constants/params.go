package constants

// URL 쿼리 파라미터 키 상수입니다.
const (
	QueryParamRange    = "range"
	QueryParamCategory = "category"
	QueryParamSearch   = "search"
	QueryParamSort     = "sort"
	QueryParamLimit    = "limit"
)

// URL 경로 파라미터 키 상수입니다.
const (
	PathParamProductID = "product_id"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
