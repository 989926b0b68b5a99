package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/candy-maze/internal/maze"
)

func openRow(seed uint64) maze.Generator {
	return maze.GeneratorFunc(func(rows, cols int) *maze.Maze {
		m := maze.New(cols, rows)
		for x := 0; x < cols-1; x++ {
			m.Carve(maze.C(x, 0), maze.Right)
		}
		return m
	})
}

func TestRegisterCreateList(t *testing.T) {
	Register("test-open-row", "Open row", openRow)

	if !Exists("test-open-row") {
		t.Fatal("registered generator should exist")
	}
	if Exists("missing") {
		t.Error("unregistered generator should not exist")
	}

	g, err := Create("test-open-row", 1)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if m := g.Generate(1, 4); m.PathLen() != 3 {
		t.Errorf("PathLen() = %d, expected 3", m.PathLen())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope", 0)
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("Create(unknown) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", openRow)
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup", openRow)
}
