// Package analytics 카탈로그 스냅샷에 대한 순수 파생 계산을 제공합니다.
//
// 가격 구간 분류, 가치 등급 산정, 구간별 점유율 집계, 가격 조정 추천, 요약 통계, 조회 필터/정렬을 포함하며
// 모든 함수는 입력을 변경하지 않고 공유 상태가 없으므로 동기화 없이 반복 호출할 수 있습니다.
package analytics
