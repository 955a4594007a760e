package api

import (
	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
)

var (
	// ErrInvalidListenPort 서버가 바인딩할 포트가 올바른 범위를 벗어났을 때 반환하는 에러입니다.
	ErrInvalidListenPort = apperrors.New(apperrors.InvalidInput, "HTTP 서버 포트가 올바르지 않습니다")
)
