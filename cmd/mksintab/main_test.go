//go:build !tinygo

package main

import (
	"bytes"
	"os"
	"testing"
)

func TestGeneratedTableIsCheckedIn(t *testing.T) {
	got, err := generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want, err := os.ReadFile("../../gfx/fixed/sintab.go")
	if err != nil {
		t.Fatalf("read sintab.go: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("sintab.go is stale; run go generate ./gfx/fixed")
	}
}

func TestTableEndpoints(t *testing.T) {
	tab := table()
	if len(tab) != 91 {
		t.Fatalf("len = %d, want 91", len(tab))
	}
	if tab[0] != 0 || tab[30] != 2048 || tab[90] != 4096 {
		t.Fatalf("tab[0,30,90] = %d,%d,%d", tab[0], tab[30], tab[90])
	}
}
