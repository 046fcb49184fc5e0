// Package notification 프로모션 알림을 설정된 모든 알림 채널로 발송합니다.
package notification

import (
	"context"
	"errors"
	"sync"

	"github.com/darkkaiser/catalog-insight/internal/alert"
	"github.com/darkkaiser/catalog-insight/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/internal/service/notification/notifier"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
)

const component = "notification.service"

// ErrNoNotifiers 설정된 알림 채널이 하나도 없을 때 반환됩니다.
var ErrNoNotifiers = apperrors.New(apperrors.Unavailable, "설정된 알림 채널이 없습니다")

// SnapshotProvider 알림 메시지에 넣을 상품 정보를 조회할 현재 스냅샷을 제공합니다.
type SnapshotProvider interface {
	Snapshot() *catalog.Snapshot
}

// Service 상품 ID 하나를 모든 Notifier로 동시에 발송합니다.
// 모든 채널이 성공해야 발송 성공으로 간주합니다.
type Service struct {
	notifiers []notifier.Notifier
	snapshots SnapshotProvider
}

var _ alert.Dispatcher = (*Service)(nil)

// NewService snapshots가 nil이면 상품 정보 없이 상품 ID만 발송합니다.
func NewService(notifiers []notifier.Notifier, snapshots SnapshotProvider) *Service {
	return &Service{
		notifiers: notifiers,
		snapshots: snapshots,
	}
}

// NotifierIDs 등록된 알림 채널 목록입니다.
func (s *Service) NotifierIDs() []notifier.NotifierID {
	ids := make([]notifier.NotifierID, 0, len(s.notifiers))
	for _, n := range s.notifiers {
		ids = append(ids, n.ID())
	}
	return ids
}

// Dispatch alert.Dispatcher를 구현합니다.
func (s *Service) Dispatch(ctx context.Context, id catalog.ProductID) error {
	if len(s.notifiers) == 0 {
		return ErrNoNotifiers
	}

	a := notifier.Alert{ProductID: id}
	if s.snapshots != nil {
		if p, ok := s.snapshots.Snapshot().Find(id); ok {
			a.Product = &p
		}
	}

	errs := make([]error, len(s.notifiers))

	var wg sync.WaitGroup
	for i, n := range s.notifiers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = apperrors.Newf(apperrors.Internal, "Notifier(%s) 실행 중 패닉이 발생했습니다: %v", n.ID(), r)
				}
			}()

			errs[i] = n.Notify(ctx, a)
		}()
	}
	wg.Wait()

	var failed []error
	for i, err := range errs {
		if err == nil {
			continue
		}
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": s.notifiers[i].ID(),
			"product_id":  id,
			"error":       err,
		}).Error("알림 채널 발송 실패")
		failed = append(failed, err)
	}

	if len(failed) > 0 {
		return apperrors.Wrapf(errors.Join(failed...), apperrors.ExecutionFailed, "알림 발송에 실패했습니다 (실패 %d/%d)", len(failed), len(s.notifiers))
	}

	return nil
}
