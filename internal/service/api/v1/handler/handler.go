// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 카탈로그 조회/분석 핸들러는 요청마다 현재 스냅샷을 한 번만 읽어 계산하므로,
// 처리 도중 카탈로그가 갱신되어도 하나의 응답은 항상 같은 스냅샷을 기준으로 합니다.
package handler

import (
	"context"
	"time"

	"github.com/darkkaiser/catalog-insight/internal/alert"
	"github.com/darkkaiser/catalog-insight/internal/catalog"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
)

// CatalogReader 현재 카탈로그 스냅샷과 분류 목록을 제공합니다.
type CatalogReader interface {
	Snapshot() *catalog.Snapshot
	Categories() []catalog.CategoryEntry
}

// AlertTracker 상품별 프로모션 알림 발송 상태를 관리합니다.
type AlertTracker interface {
	Dispatch(ctx context.Context, id catalog.ProductID) error
	ExpiresAt(id catalog.ProductID) (time.Time, bool)
	Active() []alert.Cooldown
	Cooldown() time.Duration
}

// Handler v1 API 요청을 처리합니다.
type Handler struct {
	catalog CatalogReader
	alerts  AlertTracker

	ranges []catalog.PriceRange

	now func() time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(catalogReader CatalogReader, alerts AlertTracker) *Handler {
	if catalogReader == nil {
		panic(constants.PanicMsgCatalogReaderRequired)
	}
	if alerts == nil {
		panic(constants.PanicMsgAlertTrackerRequired)
	}

	return &Handler{
		catalog: catalogReader,
		alerts:  alerts,

		ranges: catalog.DefaultPriceRanges(),

		now: time.Now,
	}
}
