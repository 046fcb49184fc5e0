package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/catalog-insight/internal/analytics"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// maxTopSalesLimit top-sales의 limit 상한
const maxTopSalesLimit = 100

// PriceRangesHandler godoc
// @Summary 가격 구간별 점유율
// @Description 기본 가격 구간마다 상품 수, 점유율(%), 총 판매량, 평균 판매량을 반환합니다.
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.PriceRangeResponse "가격 구간 통계"
// @Router /api/v1/analytics/price-ranges [get]
func (h *Handler) PriceRangesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.PriceRangeResponse{
		Ranges: analytics.Aggregate(h.catalog.Snapshot().Products(), h.ranges),
	})
}

// RecommendationsHandler godoc
// @Summary 가격 조정 추천
// @Description 가격 인상 후보, 적정 가격 상품, 가격 인하 후보를 각각 최대 3개씩 카탈로그 순서로 반환합니다.
// @Tags Analytics
// @Produce json
// @Success 200 {object} analytics.Recommendations "가격 조정 추천"
// @Router /api/v1/analytics/recommendations [get]
func (h *Handler) RecommendationsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, analytics.Recommend(h.catalog.Snapshot().Products()))
}

// SummaryHandler godoc
// @Summary 카탈로그 요약 지표
// @Description 총 상품 수, 판매량, 클릭 수, 조회 수, 추정 순방문자 수, 평균/최고/최저 가격, 총 매출, 인기 상품 수를 반환합니다.
// @Tags Analytics
// @Produce json
// @Success 200 {object} analytics.Summary "요약 지표"
// @Router /api/v1/analytics/summary [get]
func (h *Handler) SummaryHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, analytics.Summarize(h.catalog.Snapshot().Products()))
}

// TopSalesHandler godoc
// @Summary 판매량 분포
// @Description 카탈로그 순서 기준 앞쪽 limit개 상품의 이름과 판매량을 반환합니다 (대시보드 파이 차트용).
// @Description limit이 정수가 아니거나 범위를 벗어나면 400을 반환합니다.
// @Tags Analytics
// @Produce json
// @Param limit query int false "상품 수 (1~100, 기본값 6)" example(6)
// @Success 200 {object} response.TopSalesResponse "판매량 분포"
// @Router /api/v1/analytics/top-sales [get]
func (h *Handler) TopSalesHandler(c echo.Context) error {
	limit := analytics.DefaultTopSalesLimit
	if raw := c.QueryParam(constants.QueryParamLimit); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTopSalesLimit {
			return NewErrInvalidLimit()
		}
		limit = n
	}

	return c.JSON(http.StatusOK, response.TopSalesResponse{
		Limit: limit,
		Items: analytics.TopSales(h.catalog.Snapshot().Products(), limit),
	})
}
