package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.StagingSize != 128 || c.ThreadingThreshold != 131072 || c.NumThreads != 4 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.PoolDisabled() {
		t.Error("default NumThreads=4 must not disable the pool")
	}
}

func TestPoolDisabled(t *testing.T) {
	for _, n := range []int{0, 1} {
		c := &Config{StagingSize: 1, NumThreads: n}
		if !c.PoolDisabled() {
			t.Errorf("NumThreads=%d must disable the pool", n)
		}
	}
	c := &Config{StagingSize: 1, NumThreads: 2}
	if c.PoolDisabled() {
		t.Error("NumThreads=2 must not disable the pool")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOCUBE_STAGING_SIZE", "256")
	t.Setenv("GOCUBE_NUM_THREADS", "8")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.StagingSize != 256 {
		t.Errorf("StagingSize = %d, want 256", c.StagingSize)
	}
	if c.NumThreads != 8 {
		t.Errorf("NumThreads = %d, want 8", c.NumThreads)
	}
	if c.ThreadingThreshold != 131072 {
		t.Errorf("ThreadingThreshold = %d, want default 131072", c.ThreadingThreshold)
	}
}

func TestLoadRejectsInvalidStagingSize(t *testing.T) {
	t.Setenv("GOCUBE_STAGING_SIZE", "0")
	if _, err := Load(); err == nil {
		t.Error("expected ErrBadConfig for staging_size=0")
	}
	os.Unsetenv("GOCUBE_STAGING_SIZE")
}
