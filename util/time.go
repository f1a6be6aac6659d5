package util

import (
	"sync/atomic"
	"time"
)

var mockTime int64

// GetTime returns the mock time when set, otherwise the wall clock.
func GetTime() int64 {
	mt := atomic.LoadInt64(&mockTime)
	if mt > 0 {
		return mt
	}
	return time.Now().Unix()
}

func SetMockTime(time int64) {
	atomic.StoreInt64(&mockTime, time)
}

var timeOffset int64

// GetAdjustedTime returns the local clock corrected by the median
// offset observed from peers.
func GetAdjustedTime() int64 {
	return GetTime() + atomic.LoadInt64(&timeOffset)
}

func SetTimeOffset(offset int64) {
	atomic.StoreInt64(&timeOffset, offset)
}

func GetMicrosTime() int64 {
	return time.Now().UnixNano() / 1000
}
