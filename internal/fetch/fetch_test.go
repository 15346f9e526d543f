package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
)

type fakeSource struct {
	refs []string
	err  error
}

func (s *fakeSource) ListRefs(remote string) ([]string, error) {
	return s.refs, s.err
}

// fakeSink records pulls and can be told to fail on a specific ref.
type fakeSink struct {
	pulled []string
	failOn string
}

func (s *fakeSink) Pull(remote, ref string) error {
	if ref == s.failOn {
		return fmt.Errorf("pull of %s failed", ref)
	}
	s.pulled = append(s.pulled, ref)
	return nil
}

func newTestFetcher(source RefSource, sink FetchSink) (*Fetcher, *bytes.Buffer) {
	var out bytes.Buffer
	return &Fetcher{Source: source, Sink: sink, Out: &out}, &out
}

func TestRunPullsMatchedRefs(t *testing.T) {
	source := &fakeSource{refs: []string{
		"fedora/36/aarch64/silverblue",
		"fedora/36/aarch64/testing/silverblue",
		"fedora/36/x86_64/silverblue",
	}}
	sink := &fakeSink{}
	f, _ := newTestFetcher(source, sink)

	if err := f.Run("fedora", "fedora/36/*/silverblue"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"fedora/36/aarch64/silverblue", "fedora/36/x86_64/silverblue"}
	if !reflect.DeepEqual(sink.pulled, want) {
		t.Errorf("expected pulls %v, got %v", want, sink.pulled)
	}
}

func TestRunReportsBeforePulling(t *testing.T) {
	color.NoColor = true

	source := &fakeSource{refs: []string{"a/b", "c/d", "a/e"}}
	sink := &fakeSink{}
	f, out := newTestFetcher(source, sink)

	if err := f.Run("origin", "a/*"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	report := out.String()
	if !strings.Contains(report, "Matched 2 of 3 refs") {
		t.Errorf("report missing match count: %q", report)
	}
	for _, ref := range []string{"a/b", "a/e"} {
		if !strings.Contains(report, ref) {
			t.Errorf("report missing matched ref %s: %q", ref, report)
		}
	}
}

func TestRunFailsFast(t *testing.T) {
	source := &fakeSource{refs: []string{"r1", "r2", "r3"}}
	sink := &fakeSink{failOn: "r2"}
	f, _ := newTestFetcher(source, sink)

	err := f.Run("origin", "*")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var pullErr *PullError
	if !errors.As(err, &pullErr) {
		t.Fatalf("expected PullError, got %v", err)
	}
	if pullErr.Ref != "r2" || pullErr.Remote != "origin" {
		t.Errorf("error identifies %s from %s, want r2 from origin", pullErr.Ref, pullErr.Remote)
	}

	// r1 succeeded, r3 was never attempted
	if !reflect.DeepEqual(sink.pulled, []string{"r1"}) {
		t.Errorf("expected only r1 pulled, got %v", sink.pulled)
	}
}

func TestRunEmptyMatchSucceeds(t *testing.T) {
	color.NoColor = true

	source := &fakeSource{refs: []string{"a/b/c"}}
	sink := &fakeSink{}
	f, out := newTestFetcher(source, sink)

	if err := f.Run("origin", "x/*"); err != nil {
		t.Fatalf("empty match should succeed: %v", err)
	}
	if len(sink.pulled) != 0 {
		t.Errorf("expected zero pulls, got %v", sink.pulled)
	}
	if !strings.Contains(out.String(), "Matched 0 of 1 refs") {
		t.Errorf("expected zero-match report, got %q", out.String())
	}
}

func TestRunEmptyListingSucceeds(t *testing.T) {
	source := &fakeSource{}
	sink := &fakeSink{}
	f, _ := newTestFetcher(source, sink)

	if err := f.Run("origin", "*/*"); err != nil {
		t.Fatalf("empty listing should succeed: %v", err)
	}
	if len(sink.pulled) != 0 {
		t.Errorf("expected zero pulls, got %v", sink.pulled)
	}
}

func TestRunPropagatesListError(t *testing.T) {
	listErr := errors.New("remote refused")
	source := &fakeSource{err: listErr}
	sink := &fakeSink{}
	f, _ := newTestFetcher(source, sink)

	err := f.Run("origin", "*")
	if !errors.Is(err, listErr) {
		t.Fatalf("expected wrapped list error, got %v", err)
	}
	if len(sink.pulled) != 0 {
		t.Errorf("no pull may be attempted after a listing failure, got %v", sink.pulled)
	}
}

func TestRunPullsDuplicatesOncePerOccurrence(t *testing.T) {
	source := &fakeSource{refs: []string{"a/b", "a/b"}}
	sink := &fakeSink{}
	f, _ := newTestFetcher(source, sink)

	if err := f.Run("origin", "a/b"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(sink.pulled, []string{"a/b", "a/b"}) {
		t.Errorf("expected both occurrences pulled, got %v", sink.pulled)
	}
}
