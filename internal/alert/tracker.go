// Package alert 상품별 프로모션 알림 발송 상태(Idle/Cooldown)를 추적합니다.
//
// 알림 발송이 성공하면 해당 상품은 정해진 시간 동안 Cooldown 상태가 되어 재발송이 거부되고,
// 시간이 지나면 자동으로 Idle로 돌아갑니다. 발송이 실패하면 상태는 변하지 않습니다.
package alert

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/pkg/concurrency"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
)

const component = "alert.tracker"

// DefaultCooldown 발송 성공 후 재발송을 막는 기본 시간
const DefaultCooldown = 3 * time.Second

var (
	// ErrInCooldown 쿨다운 중인 상품에 대한 발송 요청입니다. 외부 호출 없이 거부됩니다.
	ErrInCooldown = apperrors.New(apperrors.Conflict, "최근에 알림이 발송된 상품입니다. 잠시 후 다시 시도해 주세요")

	// ErrTrackerClosed Close 이후의 발송 요청입니다.
	ErrTrackerClosed = apperrors.New(apperrors.Unavailable, "알림 추적기가 종료되었습니다")
)

// Dispatcher 상품 ID로 알림을 실제로 발송하는 외부 협력자입니다.
// nil 에러는 발송이 확인되었음(2xx 응답 등)을 의미합니다.
type Dispatcher interface {
	Dispatch(ctx context.Context, id catalog.ProductID) error
}

// State 상품 하나의 발송 상태입니다.
type State int

const (
	StateIdle State = iota
	StateCooldown
)

func (s State) String() string {
	if s == StateCooldown {
		return "Cooldown"
	}
	return "Idle"
}

// Cooldown 쿨다운 중인 상품과 만료 시각입니다.
type Cooldown struct {
	ProductID catalog.ProductID `json:"product_id"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type entry struct {
	expiresAt time.Time
	timer     *time.Timer
}

// Tracker 상품별 발송 상태를 관리합니다. 여러 고루틴에서 동시에 사용할 수 있습니다.
//
// 같은 상품에 대한 발송은 직렬화되어 동시에 들어온 요청도 외부 호출은 최대 한 번만 일어나며,
// 서로 다른 상품의 발송은 독립적으로 진행됩니다.
type Tracker struct {
	dispatcher Dispatcher
	cooldown   time.Duration

	// 상품별 발송 직렬화. mu보다 먼저 획득한다.
	dispatchLocks *concurrency.KeyedMutex[catalog.ProductID]

	mu      sync.Mutex
	entries map[catalog.ProductID]*entry
	closed  bool

	now func() time.Time
}

// NewTracker cooldown이 0 이하이면 DefaultCooldown을 사용합니다.
func NewTracker(dispatcher Dispatcher, cooldown time.Duration) *Tracker {
	if dispatcher == nil {
		panic("alert: Dispatcher는 nil일 수 없습니다")
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	return &Tracker{
		dispatcher:    dispatcher,
		cooldown:      cooldown,
		dispatchLocks: concurrency.NewKeyedMutex[catalog.ProductID](),
		entries:       make(map[catalog.ProductID]*entry),
		now:           time.Now,
	}
}

// Cooldown 설정된 쿨다운 시간입니다.
func (t *Tracker) Cooldown() time.Duration {
	return t.cooldown
}

// Dispatch 상품 id로 알림을 발송하고, 성공하면 쿨다운을 시작합니다.
//
//   - 쿨다운 중이면 외부 호출 없이 ErrInCooldown을 반환하며 만료 시각도 바뀌지 않습니다.
//   - Dispatcher가 실패하면 상태는 Idle로 유지되고 ExecutionFailed로 감싼 에러를 반환합니다.
//   - Close 이후에는 ErrTrackerClosed를 반환합니다.
func (t *Tracker) Dispatch(ctx context.Context, id catalog.ProductID) error {
	id = normalizeID(id)
	if id == "" {
		return apperrors.New(apperrors.InvalidInput, "상품 ID가 비어 있습니다")
	}

	t.dispatchLocks.Lock(id)
	defer t.dispatchLocks.Unlock(id)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrTrackerClosed
	}
	_, cooling := t.entries[id]
	t.mu.Unlock()

	if cooling {
		applog.WithComponentAndFields(component, applog.Fields{"product_id": id}).Debug("쿨다운 중인 상품의 알림 발송 요청을 거부했습니다")
		return ErrInCooldown
	}

	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Timeout, "알림 발송 요청이 취소되었습니다")
	}

	if err := t.dispatcher.Dispatch(ctx, id); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"product_id": id,
			"error":      err,
		}).Warn("알림 발송에 실패했습니다. 상품 상태는 Idle로 유지됩니다")

		return apperrors.Wrapf(err, apperrors.ExecutionFailed, "상품(%s) 알림 발송에 실패했습니다", id)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// 발송 도중 Close된 경우 타이머를 등록하지 않는다.
	if t.closed {
		return nil
	}

	e := &entry{expiresAt: t.now().Add(t.cooldown)}
	e.timer = time.AfterFunc(t.cooldown, func() { t.expire(id, e) })
	t.entries[id] = e

	applog.WithComponentAndFields(component, applog.Fields{
		"product_id": id,
		"expires_at": e.expiresAt,
	}).Info("알림 발송에 성공하여 쿨다운을 시작합니다")

	return nil
}

// expire 타이머 콜백. Close 이후이거나 이미 다른 엔트리로 교체되었다면 아무 일도 하지 않는다.
func (t *Tracker) expire(id catalog.ProductID, e *entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.entries[id] != e {
		return
	}
	delete(t.entries, id)

	applog.WithComponentAndFields(component, applog.Fields{"product_id": id}).Debug("쿨다운이 만료되었습니다")
}

// normalizeID 발송과 조회가 같은 키를 쓰도록 앞뒤 공백을 제거합니다.
func normalizeID(id catalog.ProductID) catalog.ProductID {
	return catalog.ProductID(strings.TrimSpace(string(id)))
}

// IsInCooldown 상품 id가 쿨다운 중인지 확인합니다.
func (t *Tracker) IsInCooldown(id catalog.ProductID) bool {
	return t.State(id) == StateCooldown
}

// State 상품 id의 현재 상태입니다. 추적된 적 없는 상품은 Idle입니다.
func (t *Tracker) State(id catalog.ProductID) State {
	id = normalizeID(id)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.entries[id]; ok {
		return StateCooldown
	}
	return StateIdle
}

// ExpiresAt 쿨다운 만료 예정 시각입니다. 쿨다운 중이 아니면 false를 반환합니다.
func (t *Tracker) ExpiresAt(id catalog.ProductID) (time.Time, bool) {
	id = normalizeID(id)

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok {
		return time.Time{}, false
	}
	return e.expiresAt, true
}

// Active 쿨다운 중인 모든 상품을 ID 순으로 반환합니다.
func (t *Tracker) Active() []Cooldown {
	t.mu.Lock()
	active := make([]Cooldown, 0, len(t.entries))
	for id, e := range t.entries {
		active = append(active, Cooldown{ProductID: id, ExpiresAt: e.expiresAt})
	}
	t.mu.Unlock()

	slices.SortFunc(active, func(a, b Cooldown) int {
		return strings.Compare(string(a.ProductID), string(b.ProductID))
	})

	return active
}

// Close 대기 중인 모든 만료 타이머를 취소하고 상태를 비웁니다.
// 이미 실행이 시작된 타이머 콜백은 아무 일도 하지 않습니다. 여러 번 호출해도 안전합니다.
func (t *Tracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	for id, e := range t.entries {
		e.timer.Stop()
		delete(t.entries, id)
	}

	applog.WithComponent(component).Debug("알림 추적기를 종료했습니다")

	return nil
}
