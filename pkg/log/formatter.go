package log

// silentFormatter 아무것도 출력하지 않는 포맷터입니다.
// logrus는 출력 대상이 io.Discard여도 포맷팅을 수행하므로, 실제 포맷팅은 hook에 맡기고 기본 경로는 비워둡니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, nil
}
