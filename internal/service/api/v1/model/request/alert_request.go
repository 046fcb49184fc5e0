package request

import "github.com/darkkaiser/catalog-insight/internal/catalog"

// AlertRequest 프로모션 알림 발송 요청
type AlertRequest struct {
	// 알림을 발송할 상품 ID (숫자도 허용)
	ProductID catalog.ProductID `json:"product_id" validate:"required,max=64" korean:"상품 ID" example:"101"`
}
