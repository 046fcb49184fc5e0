package handler

import (
	"net/http"
	"strings"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	apihandler "github.com/darkkaiser/catalog-insight/internal/service/api/handler"
	"github.com/darkkaiser/catalog-insight/internal/service/api/v1/model/request"
	"github.com/darkkaiser/catalog-insight/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/labstack/echo/v4"
)

// DispatchAlertHandler godoc
// @Summary 프로모션 알림 발송
// @Description 상품 ID로 설정된 모든 알림 채널(Webhook, 텔레그램)에 프로모션 알림을 발송합니다.
// @Description 발송에 성공하면 해당 상품은 쿨다운 상태가 되며, 쿨다운 동안의 재요청은 외부 호출 없이 거부됩니다.
// @Description
// @Description - 200: 발송 성공 (쿨다운 시작)
// @Description - 400: 요청 형식 오류 또는 상품 ID 누락
// @Description - 409: 쿨다운 중
// @Description - 502: 알림 채널 발송 실패 (상태는 Idle 유지)
// @Description - 503: 서비스 종료 중
// @Tags Alert
// @Accept json
// @Produce json
// @Param alert body request.AlertRequest true "알림 대상 상품"
// @Success 200 {object} response.AlertStatusResponse "발송 성공"
// @Router /api/v1/alerts [post]
func (h *Handler) DispatchAlertHandler(c echo.Context) error {
	var req request.AlertRequest
	if err := c.Bind(&req); err != nil {
		return NewErrInvalidBody()
	}
	req.ProductID = catalog.ProductID(strings.TrimSpace(string(req.ProductID)))

	if err := apihandler.ValidateRequest(&req); err != nil {
		return NewErrValidationFailed(apihandler.FormatValidationError(err))
	}

	fields := applog.Fields{
		"product_id": req.ProductID,
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if err := h.alerts.Dispatch(c.Request().Context(), req.ProductID); err != nil {
		fields["error"] = err
		applog.WithComponentAndFields(constants.ComponentHandler, fields).Warn(constants.LogMsgAlertRejected)

		return err
	}

	expiresAt, inCooldown := h.alerts.ExpiresAt(req.ProductID)
	applog.WithComponentAndFields(constants.ComponentHandler, fields).Info(constants.LogMsgAlertDispatched)

	return c.JSON(http.StatusOK, response.NewAlertStatusResponse(req.ProductID, expiresAt, inCooldown, h.now()))
}

// AlertStatusHandler godoc
// @Summary 알림 발송 상태 조회
// @Description 상품의 알림 발송 상태(Idle/Cooldown)와 쿨다운 만료 시각을 반환합니다. 추적된 적 없는 상품은 Idle입니다.
// @Tags Alert
// @Produce json
// @Param product_id path string true "상품 ID" example(101)
// @Success 200 {object} response.AlertStatusResponse "발송 상태"
// @Router /api/v1/alerts/{product_id} [get]
func (h *Handler) AlertStatusHandler(c echo.Context) error {
	id := catalog.ProductID(strings.TrimSpace(c.Param(constants.PathParamProductID)))
	if id == "" {
		return NewErrValidationFailed("상품 ID는 필수입니다")
	}

	expiresAt, inCooldown := h.alerts.ExpiresAt(id)

	return c.JSON(http.StatusOK, response.NewAlertStatusResponse(id, expiresAt, inCooldown, h.now()))
}

// ActiveAlertsHandler godoc
// @Summary 쿨다운 중인 상품 목록
// @Description 현재 쿨다운 중인 모든 상품과 만료 시각을 상품 ID 순으로 반환합니다.
// @Tags Alert
// @Produce json
// @Success 200 {object} response.ActiveAlertsResponse "쿨다운 목록"
// @Router /api/v1/alerts [get]
func (h *Handler) ActiveAlertsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.ActiveAlertsResponse{
		CooldownMs: h.alerts.Cooldown().Milliseconds(),
		Cooldowns:  h.alerts.Active(),
	})
}
