package fetcher

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/darkkaiser/trends-engine/pkg/strutil"
)

var (
	sensitiveQueryKeys = []string{
		"token", "auth", "key", "secret", "password", "passwd", "signature",
		"access_token", "api_key", "client_secret", "refresh_token", "id_token",
	}

	sensitiveQuerySuffixes = []string{"_token", "_secret", "_key", "_password"}

	sensitiveHeaders = []string{"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie"}
)

// redactURL 로그에 남길 수 있도록 사용자 정보와 민감한 쿼리 값을 가린 주소를 반환합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			ru.User = url.UserPassword(u.User.Username(), "xxxxx")
		} else {
			ru.User = url.User("xxxxx")
		}
	}

	if u.RawQuery != "" {
		q := ru.Query()
		for key, values := range q {
			if !isSensitiveKey(key) {
				continue
			}
			for i := range values {
				values[i] = strutil.MaskSensitiveData(values[i])
			}
		}
		ru.RawQuery = q.Encode()
	}

	return ru.String()
}

func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return nil
	}

	masked := h.Clone()
	for _, key := range sensitiveHeaders {
		if masked.Get(key) != "" {
			masked.Set(key, "***")
		}
	}
	return masked
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	if slices.Contains(sensitiveQueryKeys, key) {
		return true
	}
	for _, suffix := range sensitiveQuerySuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}
