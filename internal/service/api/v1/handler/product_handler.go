package handler

import (
	"net/http"

	"github.com/darkkaiser/catalog-insight/internal/analytics"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// ListProductsHandler godoc
// @Summary 상품 목록 조회
// @Description 현재 카탈로그 스냅샷의 상품을 필터링하고 정렬하여 반환합니다.
// @Description
// @Description - range: 가격 구간 라벨 ("Under $50", "$50 - $100" ...). "All" 또는 생략 시 전체
// @Description - category: 분류 라벨. "All" 또는 생략 시 전체
// @Description - search: 상품명 부분 일치 (대소문자 무시)
// @Description - sort: price, sales, clicks, views, value 중 하나 (내림차순). 알 수 없는 값은 카탈로그 순서
// @Tags Catalog
// @Produce json
// @Param range query string false "가격 구간 라벨" example($50 - $100)
// @Param category query string false "분류" example(Audio)
// @Param search query string false "상품명 검색어" example(mouse)
// @Param sort query string false "정렬 기준" Enums(price, sales, clicks, views, value)
// @Success 200 {object} response.ProductListResponse "상품 목록"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	snapshot := h.catalog.Snapshot()

	products := analytics.Apply(snapshot.Products(), analytics.Query{
		Range:    c.QueryParam(constants.QueryParamRange),
		Category: c.QueryParam(constants.QueryParamCategory),
		Search:   c.QueryParam(constants.QueryParamSearch),
		SortBy:   analytics.ParseSortKey(c.QueryParam(constants.QueryParamSort)),
	})

	views := make([]response.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, response.NewProductView(p))
	}

	return c.JSON(http.StatusOK, response.ProductListResponse{
		Total:     len(views),
		FetchedAt: snapshot.FetchedAt(),
		Products:  views,
	})
}

// ListCategoriesHandler godoc
// @Summary 분류 목록 조회
// @Description 카탈로그 서비스의 분류 목록을 반환합니다. 분류 목록 주소가 설정되지 않았으면 현재 상품들의 분류로 구성합니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.CategoryListResponse "분류 목록"
// @Router /api/v1/categories [get]
func (h *Handler) ListCategoriesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.CategoryListResponse{
		Categories: h.catalog.Categories(),
	})
}
