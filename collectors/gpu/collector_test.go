package gpu

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"gitlab.com/tinyland/lab/sysdeck/collectors"
)

func gpuStats(t *testing.T, res *collectors.Result) *collectors.GPUStats {
	t.Helper()
	data, ok := res.Data.(*collectors.GPUStats)
	if !ok {
		t.Fatalf("result data is %T, want *collectors.GPUStats", res.Data)
	}
	return data
}

func TestCollect_ParsesQueryOutput(t *testing.T) {
	c := NewCollector(nil)
	c.runQuery = func(ctx context.Context) (string, error) {
		return "NVIDIA GeForce RTX 3060, 47, 3201, 12288, 58\n", nil
	}

	res, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	data := gpuStats(t, res)
	if !data.Present {
		t.Fatal("GPU should be present")
	}
	if data.Name != "NVIDIA GeForce RTX 3060" {
		t.Errorf("name = %q", data.Name)
	}
	if data.UtilPercent != 47 || data.MemUsedMB != 3201 || data.MemTotalMB != 12288 || data.TempC != 58 {
		t.Errorf("parsed stats = %+v", data)
	}
}

func TestCollect_FirstGPUOnly(t *testing.T) {
	c := NewCollector(nil)
	c.runQuery = func(ctx context.Context) (string, error) {
		return "GPU A, 10, 100, 1000, 40\nGPU B, 90, 900, 1000, 80\n", nil
	}

	res, err := c.Collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := gpuStats(t, res); got.Name != "GPU A" {
		t.Errorf("expected first GPU, got %q", got.Name)
	}
}

func TestCollect_MissingToolLatchesAbsent(t *testing.T) {
	calls := 0
	c := NewCollector(nil)
	c.runQuery = func(ctx context.Context) (string, error) {
		calls++
		return "", &exec.Error{Name: "nvidia-smi", Err: exec.ErrNotFound}
	}

	for i := 0; i < 3; i++ {
		res, err := c.Collect(context.Background())
		if err != nil {
			t.Fatalf("missing nvidia-smi must not error: %v", err)
		}
		if gpuStats(t, res).Present {
			t.Fatal("GPU should be absent")
		}
		if len(res.Warnings) != 0 {
			t.Errorf("missing tool should not warn: %v", res.Warnings)
		}
	}

	if calls != 1 {
		t.Errorf("query ran %d times, want 1 (absent state should latch)", calls)
	}
}

func TestCollect_QueryFailureWarns(t *testing.T) {
	c := NewCollector(nil)
	c.runQuery = func(ctx context.Context) (string, error) {
		return "", errors.New("driver not loaded")
	}

	res, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("query failure must not error: %v", err)
	}
	if gpuStats(t, res).Present {
		t.Error("GPU should be absent after a failed query")
	}
	if len(res.Warnings) != 1 {
		t.Errorf("warnings = %v, want 1 entry", res.Warnings)
	}

	// A transient failure must not latch; the next call queries again.
	c.runQuery = func(ctx context.Context) (string, error) {
		return "RTX, 1, 1, 2, 30\n", nil
	}
	res, err = c.Collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !gpuStats(t, res).Present {
		t.Error("GPU should recover after a transient failure")
	}
}

func TestCollect_EmptyOutput(t *testing.T) {
	c := NewCollector(nil)
	c.runQuery = func(ctx context.Context) (string, error) { return "", nil }

	res, err := c.Collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if gpuStats(t, res).Present {
		t.Error("empty output should mean no GPU")
	}
}

func TestCollect_MalformedLinesSkipped(t *testing.T) {
	c := NewCollector(nil)
	c.runQuery = func(ctx context.Context) (string, error) {
		return "garbage line\nRTX, 5, 10, 100, 45\n", nil
	}

	res, err := c.Collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := gpuStats(t, res); !got.Present || got.Name != "RTX" {
		t.Errorf("expected the well-formed line to win, got %+v", got)
	}
}

func TestCollect_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewCollector(nil).Collect(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}
