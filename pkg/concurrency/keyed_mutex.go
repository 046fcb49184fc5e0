// Package concurrency 동시성 제어 유틸리티를 제공합니다.
package concurrency

import "sync"

// KeyedMutex 키마다 독립적인 Mutex를 제공합니다.
// 같은 키의 작업은 직렬화되고, 서로 다른 키의 작업은 병렬로 진행됩니다.
// 대기자가 없어진 키의 Mutex는 참조 카운트가 0이 되는 즉시 정리됩니다.
type KeyedMutex[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex 빈 KeyedMutex를 생성합니다.
func NewKeyedMutex[K comparable]() *KeyedMutex[K] {
	return &KeyedMutex[K]{locks: make(map[K]*keyedEntry)}
}

// Lock key에 대한 락을 획득할 때까지 대기합니다.
func (km *KeyedMutex[K]) Lock(key K) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		e = &keyedEntry{}
		km.locks[key] = e
	}
	e.refs++
	km.mu.Unlock()

	e.mu.Lock()
}

// Unlock key에 대한 락을 해제합니다.
// 잠기지 않은 키를 해제하면 패닉이 발생합니다.
func (km *KeyedMutex[K]) Unlock(key K) {
	km.mu.Lock()
	defer km.mu.Unlock()

	e, ok := km.locks[key]
	if !ok {
		panic("concurrency: 잠기지 않은 키의 잠금 해제 시도")
	}

	e.mu.Unlock()

	e.refs--
	if e.refs <= 0 {
		delete(km.locks, key)
	}
}
