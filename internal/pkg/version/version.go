// Package version 빌드 시점에 링커 플래그(-ldflags -X)로 주입된 메타데이터와
// 실행 환경 정보를 하나의 Info로 제공합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/catalog-insight/internal/pkg/version.appVersion=v1.2.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

// ldflags 주입 대상. 직접 참조하지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

var current atomic.Pointer[Info]

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둔다.
var readBuildInfo = debug.ReadBuildInfo

func init() {
	info := resolve(Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	})
	current.Store(&info)
}

// Info 애플리케이션 빌드 정보입니다. GET /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 프로세스의 빌드 정보를 반환합니다.
func Get() Info {
	if p := current.Load(); p != nil {
		return *p
	}
	return Info{Version: unknown, Commit: unknown, BuildDate: unknown}
}

// resolve 비어 있는 필드를 런타임 정보와 VCS 메타데이터(debug.ReadBuildInfo)로 채웁니다.
// ldflags로 주입된 값이 항상 우선합니다.
func resolve(info Info) Info {
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}
	if info.OS == "" {
		info.OS = runtime.GOOS
	}
	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}

	if bi, ok := readBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					info.DirtyBuild = true
				}
			}
		}
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = unknown
	}
	if info.Commit == "" {
		info.Commit = unknown
	}

	return info
}

// ToMap 구조적 로깅용 필드 맵을 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String "v1.2.0+dirty (commit: f25b8bf, build: 42, go: go1.24.0)" 형태의 요약 문자열입니다.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.DirtyBuild {
		v += "+dirty"
	}

	var parts []string
	if i.Commit != "" && i.Commit != unknown {
		c := i.Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit: "+c)
	}
	if i.BuildNumber != "" {
		parts = append(parts, "build: "+i.BuildNumber)
	}
	if i.BuildDate != "" && i.BuildDate != unknown {
		parts = append(parts, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		parts = append(parts, "go: "+i.GoVersion)
	}
	if i.OS != "" || i.Arch != "" {
		parts = append(parts, fmt.Sprintf("platform: %s/%s", i.OS, i.Arch))
	}

	if len(parts) == 0 {
		return v
	}
	return v + " (" + strings.Join(parts, ", ") + ")"
}
