package meshio

import (
	"strings"
	"testing"
)

func TestLoadMesh3MFRejectsGarbage(t *testing.T) {
	if _, err := LoadMesh3MF(strings.NewReader("not a 3mf package")); err == nil {
		t.Error("expected an error decoding a non-3MF stream")
	}
}

func TestLoadMesh3MFRejectsEmptyInput(t *testing.T) {
	if _, err := LoadMesh3MF(strings.NewReader("")); err == nil {
		t.Error("expected an error decoding an empty stream")
	}
}
