// Package catalog 상품 카탈로그의 레코드 형식과 불변 스냅샷을 정의합니다.
//
// 이 패키지의 타입은 분석(analytics), 알림(alert), API 계층이 공통으로 사용하며,
// 한 번 생성된 Snapshot은 변경되지 않으므로 여러 고루틴에서 동기화 없이 읽을 수 있습니다.
package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

// clickSurgeThreshold 클릭 증가율이 이 값(%)을 넘으면 급상승으로 표시합니다.
const clickSurgeThreshold = 80

// ProductID 스냅샷 내에서 유일한 상품 식별자입니다.
// 카탈로그 서비스는 숫자 또는 문자열로 내려줄 수 있으며, 두 경우 모두 문자열로 보관합니다.
type ProductID string

func (id ProductID) String() string {
	return string(id)
}

// UnmarshalJSON 숫자(42)와 문자열("42") 형태를 모두 허용합니다.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return apperrors.Wrap(err, apperrors.ParsingFailed, "상품 ID는 문자열 또는 숫자여야 합니다")
	}
	*id = ProductID(n.String())

	return nil
}

// Product 카탈로그의 상품 한 건입니다. 조회 주기 동안 변경되지 않습니다.
type Product struct {
	ID                   ProductID `json:"product_id"`
	Name                 string    `json:"product_name"`
	Category             Category  `json:"category"`
	Price                float64   `json:"price"`
	Sales                int       `json:"sales"`
	Clicks               int       `json:"clicks"`
	Views                int       `json:"views"`
	ClickIncreasePercent float64   `json:"click_increase_percent"`
	Status               Status    `json:"status"`
}

// Validate 가격과 판매/클릭/조회 수가 음수가 아니고 ID가 비어 있지 않은지 검사합니다.
// 가격 0은 유효합니다.
func (p Product) Validate() error {
	if p.ID == "" {
		return apperrors.New(apperrors.InvalidInput, "상품 ID가 비어 있습니다")
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price < 0 {
		return apperrors.Newf(apperrors.InvalidInput, "상품(%s)의 가격이 올바르지 않습니다: %v", p.ID, p.Price)
	}
	if p.Sales < 0 || p.Clicks < 0 || p.Views < 0 {
		return apperrors.Newf(apperrors.InvalidInput, "상품(%s)의 판매/클릭/조회 수는 음수일 수 없습니다 (sales=%d, clicks=%d, views=%d)", p.ID, p.Sales, p.Clicks, p.Views)
	}
	return nil
}

// ClickSurging 클릭 증가율이 급상승 기준(80%)을 넘는지 여부입니다.
func (p Product) ClickSurging() bool {
	return p.ClickIncreasePercent > clickSurgeThreshold
}
