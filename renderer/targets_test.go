package renderer

import (
	"reflect"
	"testing"
)

func TestNewTargetSetCreationOrder(t *testing.T) {
	dev := newFakeDevice()
	ts, err := NewTargetSet(dev, 640, 480)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"create-tex 640x480 rgba8", "create-target t1", "create-view t1",
		"create-tex 640x480 rgba8", "create-target t2", "create-view t2",
		"create-tex 640x480 r32f", "create-target t3", "create-view t3",
	}
	if !reflect.DeepEqual(dev.trace, expected) {
		t.Errorf("expected trace %v, got %v", expected, dev.trace)
	}

	if ts.Height.Target != 3 || ts.Height.View != 3 {
		t.Errorf("expected height target/view 3/3, got %d/%d",
			ts.Height.Target, ts.Height.View)
	}
}

func TestNewTargetSetUnwindsOnFailure(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(d *fakeDevice)
		releases []string
	}{
		{
			name:     "first texture fails",
			setup:    func(d *fakeDevice) { d.failTextureAt = 1 },
			releases: nil,
		},
		{
			name:  "first render target fails",
			setup: func(d *fakeDevice) { d.failTargetAt = 1 },
			releases: []string{
				"release-tex 1",
			},
		},
		{
			name:  "last shader view fails",
			setup: func(d *fakeDevice) { d.failViewAt = 3 },
			releases: []string{
				"release-target 3", "release-tex 3",
				"release-view 2", "release-target 2", "release-tex 2",
				"release-view 1", "release-target 1", "release-tex 1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice()
			tt.setup(dev)

			ts, err := NewTargetSet(dev, 640, 480)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if ts != nil {
				t.Errorf("expected nil set on failure, got %v", ts)
			}

			var releases []string
			for _, op := range dev.trace {
				if len(op) >= 7 && op[:7] == "release" {
					releases = append(releases, op)
				}
			}
			if !reflect.DeepEqual(releases, tt.releases) {
				t.Errorf("expected releases %v, got %v", tt.releases, releases)
			}
		})
	}
}

func TestTargetSetReleaseReverseOrder(t *testing.T) {
	dev := newFakeDevice()
	ts, err := NewTargetSet(dev, 640, 480)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dev.reset()
	ts.Release()

	expected := []string{
		"release-view 3", "release-target 3", "release-tex 3",
		"release-view 2", "release-target 2", "release-tex 2",
		"release-view 1", "release-target 1", "release-tex 1",
	}
	if !reflect.DeepEqual(dev.trace, expected) {
		t.Errorf("expected trace %v, got %v", expected, dev.trace)
	}
}

func TestTargetSetReleaseIdempotent(t *testing.T) {
	dev := newFakeDevice()
	ts, err := NewTargetSet(dev, 640, 480)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ts.Release()
	dev.reset()
	ts.Release()

	if len(dev.trace) != 0 {
		t.Errorf("expected no ops on second release, got %v", dev.trace)
	}
}
