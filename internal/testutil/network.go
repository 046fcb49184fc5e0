// Package testutil 여러 패키지의 테스트가 공유하는 네트워크/TLS 보조 함수입니다.
package testutil

import (
	"crypto/tls"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FreePort 테스트용으로 비어 있는 로컬 TCP 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "사용 가능한 포트를 가져오는데 실패했습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForServer 서버가 port에서 연결을 받을 때까지 대기합니다. timeout 안에 준비되지 않으면 테스트를 실패시킵니다.
func WaitForServer(t testing.TB, port int, timeout time.Duration) {
	t.Helper()

	address := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", address, 50*time.Millisecond)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, timeout, 10*time.Millisecond, "서버가 %s에서 시작되지 않았습니다", address)
}

// URL 로컬 테스트 서버의 주소를 만듭니다.
func URL(scheme string, port int, path string) string {
	return scheme + "://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(port)) + path
}

// InsecureClient 자체 서명 인증서를 허용하는 테스트용 HTTP 클라이언트입니다.
func InsecureClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	return &http.Client{Transport: transport, Timeout: 2 * time.Second}
}
