// Package catalog 외부 카탈로그 서비스에서 상품과 분류 목록을 조회하여 마지막으로 성공한 스냅샷을 보관합니다.
package catalog

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tidwall/gjson"

	domain "github.com/darkkaiser/catalog-insight/internal/catalog"
	"github.com/darkkaiser/catalog-insight/internal/config"
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/internal/service/fetcher"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
)

const component = "catalog.service"

// Status 마지막 갱신 결과입니다.
type Status struct {
	ProductCount  int       `json:"product_count"`
	RejectedCount int       `json:"rejected_count"`
	FetchedAt     time.Time `json:"fetched_at"`
	LastError     string    `json:"last_error,omitempty"`
	LastErrorAt   time.Time `json:"last_error_at,omitzero"`
}

// Service 카탈로그 스냅샷 저장소입니다.
//
// 조회에 실패하면 이전 스냅샷을 그대로 유지하므로 Snapshot()은 항상 nil이 아닌 값을 반환합니다.
// 빈 응답은 유효한 빈 스냅샷입니다.
type Service struct {
	productsURL   string
	categoriesURL string

	fetcher fetcher.Fetcher

	snapshot   atomic.Pointer[domain.Snapshot]
	categories atomic.Pointer[[]domain.CategoryEntry]

	// refreshMu 동시에 여러 갱신이 실행되지 않도록 직렬화합니다.
	refreshMu sync.Mutex

	statusMu sync.RWMutex
	status   Status

	now func() time.Time

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 카탈로그 서비스를 생성합니다. 첫 갱신 전까지는 빈 스냅샷을 제공합니다.
func NewService(cfg config.CatalogConfig, f fetcher.Fetcher) *Service {
	if f == nil {
		panic("Fetcher는 필수입니다")
	}

	s := &Service{
		productsURL:   cfg.ProductsURL,
		categoriesURL: cfg.CategoriesURL,
		fetcher:       f,
		now:           time.Now,
	}
	s.snapshot.Store(domain.EmptySnapshot())
	s.categories.Store(&[]domain.CategoryEntry{})

	return s
}

// Start 최초 갱신을 수행하고 종료 신호를 기다립니다. 최초 갱신이 실패해도 서비스는 시작됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Catalog 서비스 시작중...")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Catalog 서비스가 이미 시작됨!!!")
		return nil
	}

	if err := s.Refresh(serviceStopCtx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("최초 카탈로그 조회에 실패했습니다. 다음 갱신 주기에 다시 시도합니다")
	}

	s.running = true

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.runningMu.Lock()
		s.running = false
		s.runningMu.Unlock()

		applog.WithComponent(component).Info("Catalog 서비스 중지됨")
	}()

	applog.WithComponent(component).Info("Catalog 서비스 시작됨")

	return nil
}

// Snapshot 마지막으로 성공한 조회 결과를 반환합니다.
func (s *Service) Snapshot() *domain.Snapshot {
	return s.snapshot.Load()
}

// Categories 마지막으로 조회된 분류 목록의 복사본을 반환합니다.
func (s *Service) Categories() []domain.CategoryEntry {
	entries := *s.categories.Load()
	out := make([]domain.CategoryEntry, len(entries))
	copy(out, entries)
	return out
}

// Status 마지막 갱신 결과를 반환합니다.
func (s *Service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// ErrNotFetched 카탈로그를 아직 한 번도 조회하지 못했습니다.
var ErrNotFetched = apperrors.New(apperrors.Unavailable, "카탈로그를 아직 조회하지 못했습니다")

// Health 카탈로그를 한 번도 조회하지 못했거나 마지막 갱신이 실패했으면 에러를 반환합니다.
// 마지막 갱신이 실패해도 이전 스냅샷으로 계속 응답하지만, 데이터가 오래되었음을 알리기 위해 비정상으로 보고합니다.
func (s *Service) Health() error {
	st := s.Status()
	if st.LastError != "" {
		return apperrors.Newf(apperrors.Unavailable, "마지막 카탈로그 갱신에 실패했습니다: %s", st.LastError)
	}
	if st.FetchedAt.IsZero() {
		return ErrNotFetched
	}
	return nil
}

// Refresh 상품과 분류 목록을 조회하여 스냅샷을 교체합니다.
// 상품 조회에 실패하면 기존 스냅샷을 유지하고 에러를 반환합니다.
// 분류 목록 조회 실패는 경고만 남기고 기존 목록을 유지합니다.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	products, err := s.fetchProducts(ctx)
	if err != nil {
		s.recordFailure(err)
		return err
	}

	snapshot, rejected := domain.NewSnapshot(products, s.now())
	for _, r := range rejected {
		applog.WithComponentAndFields(component, applog.Fields{
			"product_id": r.Product.ID,
			"error":      r.Err,
		}).Warn("유효하지 않은 상품 레코드를 제외했습니다")
	}
	s.snapshot.Store(snapshot)

	categories, err := s.fetchCategories(ctx, snapshot)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"url":   s.categoriesURL,
			"error": err,
		}).Warn("분류 목록 조회에 실패하여 이전 목록을 유지합니다")
	} else {
		s.categories.Store(&categories)
	}

	s.statusMu.Lock()
	s.status = Status{
		ProductCount:  snapshot.Len(),
		RejectedCount: len(rejected),
		FetchedAt:     snapshot.FetchedAt(),
	}
	s.statusMu.Unlock()

	applog.WithComponentAndFields(component, applog.Fields{
		"products":   snapshot.Len(),
		"rejected":   len(rejected),
		"categories": len(*s.categories.Load()),
	}).Info("카탈로그 스냅샷을 갱신했습니다")

	return nil
}

func (s *Service) recordFailure(err error) {
	s.statusMu.Lock()
	s.status.LastError = err.Error()
	s.status.LastErrorAt = s.now()
	s.statusMu.Unlock()

	applog.WithComponentAndFields(component, applog.Fields{
		"url":   s.productsURL,
		"error": err,
	}).Error("카탈로그 조회에 실패하여 이전 스냅샷을 유지합니다")
}

// fetchProducts 상품 배열을 레코드 단위로 디코딩합니다.
// 형식이 잘못된 레코드 하나 때문에 전체 조회가 실패하지 않도록 개별 레코드의 디코딩 실패는 경고 후 건너뜁니다.
func (s *Service) fetchProducts(ctx context.Context) ([]domain.Product, error) {
	body, err := fetcher.FetchBody(ctx, s.fetcher, s.productsURL)
	if err != nil {
		return nil, err
	}

	result, err := parseArray(body, s.productsURL)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(result))
	for i, r := range result {
		var p domain.Product
		if err := json.Unmarshal([]byte(r.Raw), &p); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"index": i,
				"error": err,
			}).Warn("상품 레코드를 해석할 수 없어 건너뜁니다")
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

// fetchCategories 분류 목록을 조회합니다. 분류 목록 URL이 없으면 스냅샷에 등장하는 분류를 순서대로 사용합니다.
// 응답 항목은 {"category": "..."} 객체 또는 문자열 모두 허용됩니다.
func (s *Service) fetchCategories(ctx context.Context, snapshot *domain.Snapshot) ([]domain.CategoryEntry, error) {
	if s.categoriesURL == "" {
		return categoriesOf(snapshot), nil
	}

	body, err := fetcher.FetchBody(ctx, s.fetcher, s.categoriesURL)
	if err != nil {
		return nil, err
	}

	result, err := parseArray(body, s.categoriesURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(result))
	entries := make([]domain.CategoryEntry, 0, len(result))
	for _, r := range result {
		name := r.String()
		if r.IsObject() {
			name = r.Get("category").String()
		}
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		entries = append(entries, domain.CategoryEntry{Category: name})
	}

	return entries, nil
}

func categoriesOf(snapshot *domain.Snapshot) []domain.CategoryEntry {
	seen := make(map[string]struct{})
	entries := make([]domain.CategoryEntry, 0)
	for _, p := range snapshot.Products() {
		label := p.Category.Label()
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		entries = append(entries, domain.CategoryEntry{Category: label})
	}
	return entries
}

// parseArray 응답 본문이 JSON 배열인지 확인하고 항목을 반환합니다. 빈 본문과 null은 빈 배열로 취급합니다.
func parseArray(body []byte, url string) ([]gjson.Result, error) {
	if len(body) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, apperrors.Newf(apperrors.ParsingFailed, "응답(%s)이 올바른 JSON 형식이 아닙니다", url)
	}

	root := gjson.ParseBytes(body)
	switch {
	case root.Type == gjson.Null:
		return nil, nil
	case !root.IsArray():
		return nil, apperrors.Newf(apperrors.ParsingFailed, "응답(%s)이 JSON 배열이 아닙니다", url)
	}

	return root.Array(), nil
}
