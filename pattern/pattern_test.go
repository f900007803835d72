package pattern

import "testing"

func TestCatalog_Size(t *testing.T) {
	if LevelCount() != 25 {
		t.Fatalf("Expected 25 levels, got %d", LevelCount())
	}
	for i := 0; i < LevelCount(); i++ {
		if len(Aliens(i).Cells) == 0 {
			t.Errorf("Level %d has no aliens", i)
		}
	}
}

func TestCatalog_OutOfRange(t *testing.T) {
	if Level(-1) != nil || Level(LevelCount()) != nil {
		t.Error("Expected nil rows for out-of-range levels")
	}
	if got := len(Aliens(LevelCount()).Cells); got != 0 {
		t.Errorf("Expected no cells past the catalog, got %d", got)
	}
}

func TestCatalog_LevelIsCopy(t *testing.T) {
	rows := Level(0)
	rows[0] = "3333333333"
	if Level(0)[0] != "  111111  " {
		t.Error("Mutating a returned level changed the catalog")
	}
}

func TestParse_FirstLevel(t *testing.T) {
	res := Aliens(0)
	// 6 + 6 + 10
	if len(res.Cells) != 22 {
		t.Fatalf("Expected 22 aliens in level 0, got %d", len(res.Cells))
	}
	if res.Width != 10 || res.Height != 3 {
		t.Errorf("Expected 10x3 bounds, got %dx%d", res.Width, res.Height)
	}

	first := res.Cells[0]
	if first.OffsetX != 2 || first.OffsetY != 0 || first.Kind != '1' {
		t.Errorf("Unexpected first cell %+v", first)
	}
	last := res.Cells[len(res.Cells)-1]
	if last.OffsetX != 9 || last.OffsetY != 2 || last.Kind != '3' {
		t.Errorf("Unexpected last cell %+v", last)
	}
}

func TestParse_RaggedRows(t *testing.T) {
	res := Parse([]string{"1", "  2", ""}, IsAlienKind)
	if res.Width != 3 || res.Height != 3 {
		t.Errorf("Expected 3x3 bounds, got %dx%d", res.Width, res.Height)
	}
	if len(res.Cells) != 2 {
		t.Fatalf("Expected 2 cells, got %d", len(res.Cells))
	}
	if res.Cells[1].OffsetX != 2 || res.Cells[1].OffsetY != 1 {
		t.Errorf("Unexpected ragged cell %+v", res.Cells[1])
	}
}

func TestBarrier(t *testing.T) {
	res := Barrier()
	// 1+3+7+9+11*3+6+4
	if len(res.Cells) != 63 {
		t.Errorf("Expected 63 barrier blocks, got %d", len(res.Cells))
	}
	if res.Width != 11 || res.Height != 9 {
		t.Errorf("Expected 11x9 barrier, got %dx%d", res.Width, res.Height)
	}
}
