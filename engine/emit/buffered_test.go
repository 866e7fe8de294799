package emit

import (
	"context"
	"testing"
)

func TestBufferedEmitterStoresByCanalName(t *testing.T) {
	b := NewBufferedEmitter()
	b.Emit(Event{CanalName: "CH1", Step: 0, Msg: "run_start"})
	b.Emit(Event{CanalName: "CH1", Step: 0, Msg: "step", Handler: "motion"})
	b.Emit(Event{CanalName: "CH2", Step: 0, Msg: "run_start"})

	got := b.GetHistory("CH1")
	if len(got) != 2 {
		t.Fatalf("expected 2 events for CH1, got %d", len(got))
	}
	if len(b.GetHistory("CH2")) != 1 {
		t.Errorf("expected 1 event for CH2, got %d", len(b.GetHistory("CH2")))
	}
	if len(b.GetHistory("CH3")) != 0 {
		t.Errorf("expected an empty slice for an unknown canal, got %v", b.GetHistory("CH3"))
	}
}

func TestBufferedEmitterFilterByMsgAndHandler(t *testing.T) {
	b := NewBufferedEmitter()
	b.Emit(Event{CanalName: "CH1", Step: 0, Msg: "step", Handler: "motion"})
	b.Emit(Event{CanalName: "CH1", Step: 1, Msg: "jump"})
	b.Emit(Event{CanalName: "CH1", Step: 2, Msg: "step", Handler: "cycle"})

	steps := b.GetHistoryWithFilter("CH1", HistoryFilter{Msg: "step"})
	if len(steps) != 2 {
		t.Fatalf("expected 2 step events, got %d", len(steps))
	}

	motionOnly := b.GetHistoryWithFilter("CH1", HistoryFilter{Handler: "motion"})
	if len(motionOnly) != 1 || motionOnly[0].Step != 0 {
		t.Errorf("expected exactly the motion-handler event at step 0, got %v", motionOnly)
	}
}

func TestBufferedEmitterFilterByStepRange(t *testing.T) {
	b := NewBufferedEmitter()
	for step := 0; step < 5; step++ {
		b.Emit(Event{CanalName: "CH1", Step: step, Msg: "step"})
	}
	min, max := 1, 3
	got := b.GetHistoryWithFilter("CH1", HistoryFilter{MinStep: &min, MaxStep: &max})
	if len(got) != 3 {
		t.Fatalf("expected steps 1-3 (3 events), got %d: %v", len(got), got)
	}
}

func TestBufferedEmitterClear(t *testing.T) {
	b := NewBufferedEmitter()
	b.Emit(Event{CanalName: "CH1", Msg: "a"})
	b.Emit(Event{CanalName: "CH2", Msg: "a"})

	b.Clear("CH1")
	if len(b.GetHistory("CH1")) != 0 {
		t.Error("expected CH1 history cleared")
	}
	if len(b.GetHistory("CH2")) != 1 {
		t.Error("expected CH2 history untouched")
	}

	b.Clear("")
	if len(b.GetHistory("CH2")) != 0 {
		t.Error("expected Clear(\"\") to wipe every canal")
	}
}

func TestBufferedEmitterEmitBatch(t *testing.T) {
	b := NewBufferedEmitter()
	events := []Event{{CanalName: "CH1", Msg: "a"}, {CanalName: "CH1", Msg: "b"}}
	if err := b.EmitBatch(context.Background(), events); err != nil {
		t.Fatalf("EmitBatch: %v", err)
	}
	if len(b.GetHistory("CH1")) != 2 {
		t.Errorf("expected both batched events stored, got %d", len(b.GetHistory("CH1")))
	}
	if err := b.Flush(context.Background()); err != nil {
		t.Errorf("expected Flush to be a no-op, got %v", err)
	}
}

var _ Emitter = (*BufferedEmitter)(nil)
