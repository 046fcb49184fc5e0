package catalog

import (
	"encoding/json"
	"strings"

	"github.com/iancoleman/strcase"
)

// Status 상품의 인기 상태입니다.
// 알 수 없는 값은 에러 없이 StatusUnknown으로 해석되고, 화면에는 Regular와 같은 기본 형태로 표시됩니다.
type Status int

const (
	StatusUnknown Status = iota
	StatusHot
	StatusTrending
	StatusRegular
)

var statusNames = map[Status]string{
	StatusHot:      "Hot",
	StatusTrending: "Trending",
	StatusRegular:  "Regular",
}

var statusByName = map[string]Status{
	"Hot":      StatusHot,
	"Trending": StatusTrending,
	"Regular":  StatusRegular,
}

// ParseStatus "hot", "HOT", " Trending " 등 대소문자와 공백에 관계없이 상태를 해석합니다.
// 실패하지 않으며, 알 수 없는 값은 StatusUnknown입니다.
func ParseStatus(s string) Status {
	key := strcase.ToCamel(strings.ToLower(strings.TrimSpace(s)))
	if st, ok := statusByName[key]; ok {
		return st
	}
	return StatusUnknown
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTrending Hot과 Trending을 "현재 인기 있는" 상품으로 집계합니다.
func (s Status) IsTrending() bool {
	return s == StatusHot || s == StatusTrending
}

// DisplayClass 화면 표시용 상태 클래스입니다. Unknown은 Regular로 표시합니다.
func (s Status) DisplayClass() string {
	if s == StatusUnknown {
		return statusNames[StatusRegular]
	}
	return s.String()
}

// Icon 상태 아이콘입니다. 알 수 없는 상태는 Regular 아이콘을 사용합니다.
func (s Status) Icon() string {
	switch s {
	case StatusHot:
		return "🔥"
	case StatusTrending:
		return "📈"
	default:
		return "📊"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// 문자열이 아닌 값도 거부하지 않고 Unknown으로 취급한다.
		*s = StatusUnknown
		return nil
	}
	*s = ParseStatus(raw)
	return nil
}
