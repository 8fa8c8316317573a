// cmd/qstats/args_test.go
package qstats

import (
	"reflect"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	in := []string{"-f8", "-b", "-mb12", "-f=3", "--bars=2", "-ml", "-fm", "data.txt", "-", "--", "-f9"}
	want := []string{"-f=8", "-b", "-mb=12", "-f=3", "--bars=2", "-ml", "-f=m", "data.txt", "-", "--", "-f9"}
	if got := normalizeArgs(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeArgs:\n got %q\nwant %q", got, want)
	}
}
