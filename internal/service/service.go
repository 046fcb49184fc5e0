// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 생명주기를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작 후 serviceStopCtx가 취소되면 스스로 정리하고 serviceStopWG.Done()을 호출하는 서비스입니다.
// 호출자는 Start 전에 serviceStopWG.Add(1)을 호출해야 하며, Start가 에러를 반환해도 Done()은 호출됩니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
