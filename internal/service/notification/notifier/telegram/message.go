package telegram

import (
	"html"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/darkkaiser/catalog-insight/internal/service/notification/notifier"
)

// printer 가격과 수량에 천 단위 구분 기호를 넣습니다. 카탈로그 가격은 달러 표기입니다.
var printer = message.NewPrinter(language.English)

// buildMessage 프로모션 알림 메시지(HTML)를 생성합니다.
// 현재 스냅샷에 없는 상품이면 상품 ID만 안내합니다.
func buildMessage(alert notifier.Alert) string {
	var sb strings.Builder

	p := alert.Product
	if p == nil {
		sb.WriteString("📣 <b>프로모션 알림</b>\n")
		sb.WriteString(printer.Sprintf("상품 ID: <code>%s</code>", html.EscapeString(alert.ProductID.String())))
		return sb.String()
	}

	sb.WriteString(printer.Sprintf("%s <b>프로모션 알림</b>\n\n", p.Status.Icon()))
	sb.WriteString(printer.Sprintf("<b>%s</b>\n", html.EscapeString(p.Name)))
	if label := p.Category.Label(); label != "" {
		sb.WriteString(printer.Sprintf("%s %s\n", p.Category.Icon(), html.EscapeString(label)))
	}
	sb.WriteString(printer.Sprintf("💰 가격: $%.2f\n", p.Price))
	sb.WriteString(printer.Sprintf("🛒 판매: %d · 👆 클릭: %d · 👀 조회: %d\n", p.Sales, p.Clicks, p.Views))
	if p.ClickSurging() {
		sb.WriteString(printer.Sprintf("📈 클릭 증가율: +%.1f%%\n", p.ClickIncreasePercent))
	}
	sb.WriteString(printer.Sprintf("\n상품 ID: <code>%s</code>", html.EscapeString(p.ID.String())))

	return sb.String()
}
