// Package validation 설정 값 검증에 쓰이는 주소, 포트, 호스트명 검사 함수를 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidatePort 1-65535 범위인지 확인합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소, 또는 RFC 1123 호스트명인지 확인합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("호스트명 전체 길이는 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("호스트명에 빈 레이블이 포함되어 있습니다 (host=%q)", host)
		}
		if len(label) > 63 {
			return fmt.Errorf("각 레이블은 63자를 초과할 수 없습니다 (label=%q)", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}
		for _, r := range label {
			if !isHostnameRune(r) {
				return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (invalid_char=%q, host=%q)", r, host)
			}
		}
	}

	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}
	return nil
}

func isHostnameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

// ValidateCORSOrigin "*" 또는 "scheme://host[:port]" 형식의 Origin인지 확인합니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return nil
	}
	if origin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := parseHTTPURL(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 검증 실패: %w", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로, 쿼리, Fragment를 포함할 수 없습니다 (input=%q)", origin)
	}
	return nil
}

// ValidateBackendURL 백엔드 기준 주소로 사용할 수 있는 URL인지 확인합니다.
// 경로는 허용하지만(예: 게이트웨이 하위 경로) 쿼리와 Fragment는 허용하지 않습니다.
func ValidateBackendURL(raw string) error {
	u, err := parseHTTPURL(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("백엔드 API URL 검증 실패: %w", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("백엔드 API URL에는 쿼리나 Fragment를 포함할 수 없습니다 (input=%q)", raw)
	}
	return nil
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("유효한 URL 형식이 아닙니다 (input=%q): %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("'http' 또는 'https' 스키마만 허용됩니다 (input=%q)", raw)
	}
	if u.User != nil {
		return nil, fmt.Errorf("사용자 자격 증명(UserInfo)을 포함할 수 없습니다 (input=%q)", raw)
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("포트 번호가 유효하지 않습니다 (input=%q, port=%s)", raw, p)
		}
		if err := ValidatePort(n); err != nil {
			return nil, err
		}
	}
	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("호스트(Host) 정보가 누락되었습니다 (input=%q)", raw)
	}
	if err := ValidateHostname(host); err != nil {
		return nil, err
	}
	return u, nil
}
