package version

import (
	"runtime/debug"
	"testing"

	"bizquery/internal/platform/testkit"
)

func TestInfo_Defaults(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) { return nil, false })

	got := Info(ServiceAPI)
	want := BuildInfo{Service: "bizquery-api", Version: "dev", Commit: "none", Date: "unknown"}
	if got != want {
		t.Fatalf("Info() = %+v, want %+v", got, want)
	}
	if s := got.String(); s != "bizquery-api dev (none)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestInfo_FallsBackToVCS(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2025-09-02T10:00:00Z"},
		}}, true
	})

	got := Info(ServiceCLI)
	if got.Commit != "0123456789ab" {
		t.Fatalf("Commit = %q", got.Commit)
	}
	if got.Date != "2025-09-02T10:00:00Z" {
		t.Fatalf("Date = %q", got.Date)
	}
	if got.Service != "bizquery" {
		t.Fatalf("Service = %q", got.Service)
	}
}
