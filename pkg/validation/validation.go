// Package validation 설정 값 검증에 쓰이는 형식 검사 함수를 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin origin이 "Scheme://Host[:Port]" 형식이거나 와일드카드('*')인지 검증합니다.
// 경로, 쿼리, Fragment, 사용자 정보를 포함하면 유효하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return nil
	}
	if origin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패 (input=%q): %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin은 'http' 또는 'https' 스키마만 허용됩니다 (input=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("CORS Origin은 경로, 쿼리, Fragment, 사용자 정보를 포함할 수 없습니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트가 숫자가 아닙니다 (input=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류 (input=%q): %w", origin, err)
		}
	}

	if u.Hostname() == "" {
		return fmt.Errorf("CORS Origin에 호스트가 없습니다 (input=%q)", origin)
	}

	return ValidateHostname(u.Hostname())
}

// ValidatePort 1-65535 범위를 검사합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소, RFC 1123 호스트명을 허용합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("호스트명은 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return fmt.Errorf("호스트명 레이블 길이가 올바르지 않습니다 (host=%q)", host)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') && r != '-' {
				return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (host=%q)", host)
			}
		}
	}

	// TLD는 숫자로만 구성될 수 없다.
	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}

// ValidateHTTPURL 절대 경로의 http/https URL인지 검증합니다.
func ValidateHTTPURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("URL 파싱 실패 (input=%q): %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL은 'http' 또는 'https' 스키마여야 합니다 (input=%q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL에 호스트가 없습니다 (input=%q)", raw)
	}
	return nil
}
