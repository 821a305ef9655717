package app

import (
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	snapshot := NewMetrics().Snapshot()
	if snapshot.FrameCount != 0 {
		t.Errorf("expected 0 frame count, got %d", snapshot.FrameCount)
	}
	if snapshot.MinFrameTimeNs != 0 {
		t.Errorf("expected 0 min frame time (sentinel handled), got %d", snapshot.MinFrameTimeNs)
	}
	if snapshot.DropRate() != 0 {
		t.Errorf("expected 0 drop rate, got %f", snapshot.DropRate())
	}
}

func TestMetrics_RecordFrame(t *testing.T) {
	m := NewMetrics()

	m.RecordFrame(10 * time.Millisecond)
	m.RecordFrame(20 * time.Millisecond)
	m.RecordFrame(3 * time.Millisecond)

	snapshot := m.Snapshot()
	if snapshot.FrameCount != 3 {
		t.Errorf("expected 3 frames, got %d", snapshot.FrameCount)
	}
	if snapshot.MinFrameTimeNs != int64(3*time.Millisecond) {
		t.Errorf("expected min 3ms, got %d ns", snapshot.MinFrameTimeNs)
	}
	if snapshot.MaxFrameTimeNs != int64(20*time.Millisecond) {
		t.Errorf("expected max 20ms, got %d ns", snapshot.MaxFrameTimeNs)
	}
	if snapshot.LastFrameNs != int64(3*time.Millisecond) {
		t.Errorf("expected last 3ms, got %d ns", snapshot.LastFrameNs)
	}
	if snapshot.AvgFrameTimeNs != int64(11*time.Millisecond) {
		t.Errorf("expected avg 11ms, got %d ns", snapshot.AvgFrameTimeNs)
	}
}

func TestMetrics_DroppedAndReloads(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 3; i++ {
		m.RecordFrame(time.Millisecond)
	}
	m.RecordDroppedFrame()
	m.RecordReload()

	snapshot := m.Snapshot()
	if snapshot.DroppedFrames != 1 {
		t.Errorf("expected 1 dropped frame, got %d", snapshot.DroppedFrames)
	}
	if got := snapshot.DropRate(); got != 25 {
		t.Errorf("expected 25%% drop rate, got %f", got)
	}
	if snapshot.Reloads != 1 {
		t.Errorf("expected 1 reload, got %d", snapshot.Reloads)
	}
}

func TestMetricsSnapshot_FramesPerSecond(t *testing.T) {
	s := MetricsSnapshot{FrameCount: 120, Uptime: 2 * time.Second}
	if got := s.FramesPerSecond(); got != 60 {
		t.Errorf("FramesPerSecond() = %f, want 60", got)
	}
	if got := (MetricsSnapshot{}).FramesPerSecond(); got != 0 {
		t.Errorf("zero uptime FramesPerSecond() = %f, want 0", got)
	}
}
