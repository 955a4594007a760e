package fetcher

import (
	"io"
	"sync"
)

// maxDrainBytes 연결 재사용을 위해 버리는 본문의 최대 크기입니다. 이보다 크면 그냥 닫습니다.
const maxDrainBytes = 64 * 1024

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	buf := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(buf)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *buf)
}
