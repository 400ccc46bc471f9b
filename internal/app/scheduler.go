package app

import "time"

// Task is a scheduled callback that can be called off before it fires.
type Task interface {
	// Cancel reports whether the call stopped the task from firing.
	Cancel() bool
}

// Scheduler runs fn once after delay.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Task
}

// TimerScheduler schedules on the runtime timer heap.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(delay time.Duration, fn func()) Task {
	return timerTask{timer: time.AfterFunc(delay, fn)}
}

type timerTask struct {
	timer *time.Timer
}

func (t timerTask) Cancel() bool {
	return t.timer.Stop()
}
