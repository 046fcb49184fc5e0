// Package v1 /api/v1 경로 하위의 카탈로그 분석 및 프로모션 알림 API 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET  /api/v1/products                        - 상품 목록 (필터, 검색, 정렬)
//   - GET  /api/v1/categories                      - 분류 목록
//   - GET  /api/v1/analytics/price-ranges          - 가격 구간별 점유율
//   - GET  /api/v1/analytics/recommendations       - 가격 조정 추천
//   - GET  /api/v1/analytics/summary               - 요약 지표
//   - GET  /api/v1/analytics/top-sales             - 판매량 분포
//   - POST /api/v1/alerts                          - 프로모션 알림 발송
//   - GET  /api/v1/alerts                          - 쿨다운 중인 상품 목록
//   - GET  /api/v1/alerts/:product_id              - 상품별 알림 발송 상태
package v1

import (
	"github.com/darkkaiser/catalog-insight/internal/service/api/middleware"
	"github.com/darkkaiser/catalog-insight/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.GET("/products", h.ListProductsHandler)
	v1Group.GET("/categories", h.ListCategoriesHandler)

	analyticsGroup := v1Group.Group("/analytics")
	analyticsGroup.GET("/price-ranges", h.PriceRangesHandler)
	analyticsGroup.GET("/recommendations", h.RecommendationsHandler)
	analyticsGroup.GET("/summary", h.SummaryHandler)
	analyticsGroup.GET("/top-sales", h.TopSalesHandler)

	v1Group.POST("/alerts", h.DispatchAlertHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON),
	)
	v1Group.GET("/alerts", h.ActiveAlertsHandler)
	v1Group.GET("/alerts/:product_id", h.AlertStatusHandler)
}
