// Package view 백엔드 상태 조회 한 번의 결과를 화면 상태로 결정합니다.
//
// View 하나는 화면 하나의 생명주기(마운트 ~ 언마운트)에 대응합니다.
// 마운트 시 백엔드 주소가 없으면 곧바로 ConfigError가 되고, 있으면 단 한 번의 상태 조회를
// 별도 고루틴에서 수행한 뒤 그 결과로 상태가 한 번만 바뀝니다. 재시도나 재조회는 없습니다.
package view

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/darkkaiser/trends-engine/internal/health"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
)

const component = "health.view"

// View 마운트된 화면 하나의 상태를 보관합니다.
type View struct {
	baseURL string

	// ctx 상태 조회 고루틴에 전달되는 컨텍스트입니다.
	// Unmount()가 호출되면 취소되며, 이후 도착한 결과는 반영되지 않습니다.
	ctx    context.Context
	cancel context.CancelFunc

	// mu state, settled, unmounted 접근을 보호합니다.
	mu sync.Mutex

	state State

	// settled 상태가 결정되었는지 여부입니다. 한 번 true가 되면 다시 바뀌지 않습니다.
	settled bool

	unmounted bool

	// done 상태 조회 고루틴이 종료되면 닫힙니다. 조회가 필요 없는 경우(ConfigError)에는 마운트 시점에 닫힙니다.
	done chan struct{}
}

// Mount 화면을 마운트하고 필요하면 상태 조회를 시작합니다.
//
// baseURL이 비어 있거나 공백뿐이면 checker를 호출하지 않고 ConfigError 상태로 즉시 결정됩니다.
// 그렇지 않으면 checker.Check가 정확히 한 번 호출됩니다.
//
// 반환된 View는 사용이 끝나면 Unmount() 해야 합니다.
func Mount(ctx context.Context, baseURL string, checker health.Checker) *View {
	if ctx == nil {
		ctx = context.Background()
	}

	v := &View{
		baseURL: baseURL,
		state:   LoadingState(),
		done:    make(chan struct{}),
	}
	v.ctx, v.cancel = context.WithCancel(ctx)

	if strings.TrimSpace(baseURL) == "" {
		v.state = ConfigErrorState()
		v.settled = true
		close(v.done)

		applog.WithComponent(component).Debug("백엔드 주소가 설정되지 않아 상태 조회를 생략합니다")

		return v
	}

	go v.run(checker)

	return v
}

// run 상태 조회를 한 번 수행하고 그 결과를 반영합니다.
func (v *View) run(checker health.Checker) {
	defer close(v.done)

	v.commit(check(v.ctx, checker, v.baseURL))
}

// check checker에서 발생한 패닉을 FetchError로 변환합니다.
// 패닉 값이 error가 아니면(문자열 등) 설명이 없는 실패로 간주합니다.
func check(ctx context.Context, checker health.Checker, baseURL string) (s State) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"panic": fmt.Sprint(r),
			}).Error("상태 조회 중 패닉이 발생하였습니다")

			if err, ok := r.(error); ok {
				s = Resolve(health.Result{}, err)
			} else {
				s = FetchErrorState(UnknownErrorMessage)
			}
		}
	}()

	return Resolve(checker.Check(ctx, baseURL))
}

// commit 결정된 상태를 반영합니다. 언마운트 이후이거나 이미 결정된 경우 false를 반환합니다.
func (v *View) commit(s State) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unmounted {
		applog.WithComponentAndFields(component, applog.Fields{
			"discarded": s.String(),
		}).Debug("언마운트 이후 도착한 상태 조회 결과를 무시합니다")

		return false
	}
	if v.settled {
		return false
	}

	v.state = s
	v.settled = true

	applog.WithComponentAndFields(component, applog.Fields{
		"state": s.kind.Name(),
	}).Debug("뷰 상태 결정")

	return true
}

// State 현재 상태를 반환합니다.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// Settled 상태가 Loading에서 벗어났는지 여부
func (v *View) Settled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.settled
}

// Done 상태 조회 작업이 끝나면 닫히는 채널을 반환합니다.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Wait 상태 조회 작업이 끝나거나 ctx가 종료될 때까지 기다린 뒤 그 시점의 상태를 반환합니다.
// ctx가 먼저 종료되면 ctx.Err()를 함께 반환합니다.
func (v *View) Wait(ctx context.Context) (State, error) {
	select {
	case <-v.done:
		return v.State(), nil
	case <-ctx.Done():
		return v.State(), ctx.Err()
	}
}

// Unmount 화면을 내립니다. 진행 중인 상태 조회는 취소되며 이후의 결과는 반영되지 않습니다.
// 여러 번 호출해도 안전합니다.
func (v *View) Unmount() {
	v.mu.Lock()
	v.unmounted = true
	v.mu.Unlock()

	v.cancel()
}
