// Package service 애플리케이션을 구성하는 서비스의 공통 생명주기를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 백그라운드에서 실행되는 서비스입니다.
//
// 호출자는 Start 전에 serviceStopWG.Add(1)을 호출하고, 서비스는 완전히 종료된 뒤 Done을 호출합니다.
// serviceStopCtx가 취소되면 서비스는 종료 절차를 시작합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
