package response

import (
	"time"

	"github.com/darkkaiser/catalog-insight/internal/alert"
	"github.com/darkkaiser/catalog-insight/internal/catalog"
)

// AlertStatusResponse 상품 하나의 알림 발송 상태
type AlertStatusResponse struct {
	ProductID catalog.ProductID `json:"product_id" example:"101"`
	// 발송 상태: Idle, Cooldown
	State string `json:"state" example:"Cooldown"`
	// 쿨다운 만료 시각 (Idle이면 생략)
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// 쿨다운 남은 시간(ms)
	RemainingMs int64 `json:"remaining_ms" example:"2500"`
}

// NewAlertStatusResponse 쿨다운 여부와 만료 시각으로 응답을 구성합니다. 만료 시각이 지났으면 남은 시간은 0입니다.
func NewAlertStatusResponse(id catalog.ProductID, expiresAt time.Time, inCooldown bool, now time.Time) AlertStatusResponse {
	resp := AlertStatusResponse{
		ProductID: id,
		State:     alert.StateIdle.String(),
	}
	if inCooldown {
		resp.State = alert.StateCooldown.String()
		resp.ExpiresAt = &expiresAt
		resp.RemainingMs = max(expiresAt.Sub(now).Milliseconds(), 0)
	}
	return resp
}

// ActiveAlertsResponse 현재 쿨다운 중인 상품 목록
type ActiveAlertsResponse struct {
	// 설정된 쿨다운 시간(ms)
	CooldownMs int64            `json:"cooldown_ms" example:"3000"`
	Cooldowns  []alert.Cooldown `json:"cooldowns"`
}
