package catalog

import (
	"encoding/json"
	"strings"

	"github.com/iancoleman/strcase"
)

// CategoryTag 알려진 상품 분류입니다. 목록에 없는 분류는 CategoryUnknown입니다.
type CategoryTag int

const (
	CategoryUnknown CategoryTag = iota
	CategoryElectronics
	CategoryAudio
	CategoryComputers
	CategoryWearables
	CategoryPhotography
	CategoryAccessories
	CategoryGaming
	CategoryNetworking
	CategoryStorage
	CategorySmartHome
	CategoryDisplays
	CategoryAppliances
)

type categoryInfo struct {
	label string
	icon  string
}

const defaultCategoryIcon = "📦"

var categories = map[CategoryTag]categoryInfo{
	CategoryElectronics: {"Electronics", "📱"},
	CategoryAudio:       {"Audio", "🎵"},
	CategoryComputers:   {"Computers", "💻"},
	CategoryWearables:   {"Wearables", "⌚"},
	CategoryPhotography: {"Photography", "📸"},
	CategoryAccessories: {"Accessories", "🔧"},
	CategoryGaming:      {"Gaming", "🎮"},
	CategoryNetworking:  {"Networking", "🌐"},
	CategoryStorage:     {"Storage", "💾"},
	CategorySmartHome:   {"Smart Home", "🏠"},
	CategoryDisplays:    {"Displays", "🖥️"},
	CategoryAppliances:  {"Appliances", "🏠"},
}

// categoryKeys snake_case 키 → 태그. "Smart Home", "smart-home", "SmartHome"이 모두 같은 키가 된다.
var categoryKeys = func() map[string]CategoryTag {
	m := make(map[string]CategoryTag, len(categories))
	for tag, info := range categories {
		m[strcase.ToSnake(info.label)] = tag
	}
	return m
}()

func (t CategoryTag) String() string {
	if info, ok := categories[t]; ok {
		return info.label
	}
	return "Unknown"
}

// Category 상품 분류입니다. 원본 라벨을 보존하면서 알려진 태그로 분류합니다.
// 알 수 없는 분류도 거부하지 않으며, 라벨은 그대로 표시/필터에 쓰이고 태그만 CategoryUnknown이 됩니다.
type Category struct {
	tag   CategoryTag
	label string
}

// NewCategory 라벨로 Category를 생성합니다.
func NewCategory(label string) Category {
	label = strings.TrimSpace(label)
	tag, ok := categoryKeys[strcase.ToSnake(label)]
	if !ok {
		tag = CategoryUnknown
	}
	return Category{tag: tag, label: label}
}

func (c Category) Tag() CategoryTag { return c.tag }

// Label 카탈로그 서비스가 보낸 원본 라벨입니다.
func (c Category) Label() string { return c.label }

func (c Category) String() string { return c.label }

// Icon 분류 아이콘입니다. 알 수 없는 분류는 기본 아이콘을 사용합니다.
func (c Category) Icon() string {
	if info, ok := categories[c.tag]; ok {
		return info.icon
	}
	return defaultCategoryIcon
}

// Matches 필터 문자열과 같은 분류인지 검사합니다.
// 알려진 분류는 표기 차이("smart-home", "Smart Home")를 무시하고, 알 수 없는 분류는 라벨을 대소문자 구분 없이 비교합니다.
func (c Category) Matches(filter string) bool {
	other := NewCategory(filter)
	if c.tag != CategoryUnknown || other.tag != CategoryUnknown {
		return c.tag == other.tag
	}
	return strings.EqualFold(c.label, other.label)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.label)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = Category{}
		return nil
	}
	*c = NewCategory(raw)
	return nil
}

// CategoryEntry 분류 목록 조회 응답의 한 항목입니다.
type CategoryEntry struct {
	Category string `json:"category"`
}
