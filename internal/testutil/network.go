// Package testutil 서비스 생명주기 테스트에서 쓰는 네트워크 헬퍼입니다.
package testutil

import (
	"net"
	"strconv"
	"testing"
	"time"
)

// ServerStartTimeout 서버가 리스닝을 시작할 때까지 기다리는 기본 시간
const ServerStartTimeout = 5 * time.Second

// FreePort 지금 비어 있는 루프백 포트를 하나 반환합니다. 찾지 못하면 테스트를 중단합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("빈 포트를 찾지 못했습니다: %v", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForServer port에 TCP 연결이 될 때까지 ServerStartTimeout 동안 기다립니다.
func WaitForServer(t testing.TB, port int) {
	t.Helper()

	if !waitForListen(addr(port), ServerStartTimeout) {
		t.Fatalf("%s 안에 %d 포트에서 서버가 시작되지 않았습니다", ServerStartTimeout, port)
	}
}

func addr(port int) string {
	return net.JoinHostPort("localhost", strconv.Itoa(port))
}

func waitForListen(address string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", address, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}
