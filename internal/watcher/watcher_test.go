package watcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ryan-winkler/transitwatch/internal/clockface"
)

var defaultTarget = clockface.Clock{Hour: 13, Minute: 30}

func writeObserver(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observer.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeObserver(t, `{"latitude": 19.82, "longitude": -155.47, "target": "05:34:32"}`)
	obs, err := LoadFile(path, defaultTarget)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if obs.Latitude != 19.82 || obs.Longitude != -155.47 {
		t.Errorf("coordinates = %v,%v", obs.Latitude, obs.Longitude)
	}
	if obs.Target.Hour != 5 || obs.Target.Minute != 34 || obs.Target.Second != 32 {
		t.Errorf("Target = %+v, want 05:34:32", obs.Target)
	}
}

func TestLoadFileDefaultsTarget(t *testing.T) {
	path := writeObserver(t, `{"latitude": 36.717, "longitude": 127.837}`)
	obs, err := LoadFile(path, defaultTarget)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if obs.Target != defaultTarget {
		t.Errorf("Target = %+v, want fallback %+v", obs.Target, defaultTarget)
	}
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	cases := []struct {
		name, content string
	}{
		{"malformed json", `{"latitude": `},
		{"latitude out of range", `{"latitude": 91, "longitude": 0}`},
		{"longitude out of range", `{"latitude": 0, "longitude": -180}`},
		{"bad target", `{"latitude": 0, "longitude": 0, "target": "25:00:00"}`},
	}
	for _, c := range cases {
		path := writeObserver(t, c.content)
		if _, err := LoadFile(path, defaultTarget); err == nil {
			t.Errorf("%s: LoadFile should fail", c.name)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"), defaultTarget); err == nil {
		t.Error("LoadFile on missing file should fail")
	}
}
