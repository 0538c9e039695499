package ballz

import (
	"testing"

	"github.com/vovakirdan/tui-ballz/internal/config"
	"github.com/vovakirdan/tui-ballz/internal/core"
)

func testPlanner(seed uint32) *SpawnPlanner {
	return NewSpawnPlanner(NewXorShift(seed), config.DefaultBallzConfig())
}

func TestPlanRowDistinctColumns(t *testing.T) {
	for seed := uint32(1); seed <= 50; seed++ {
		p := testPlanner(seed)
		for turn := 1; turn <= 10; turn++ {
			blocks := p.PlanRow(turn, 1.0)
			seen := make(map[int]bool)
			for _, blk := range blocks {
				if seen[blk.Col] {
					t.Fatalf("Seed %d turn %d: duplicate column %d", seed, turn, blk.Col)
				}
				seen[blk.Col] = true
			}
		}
	}
}

func TestPlanRowCountBounds(t *testing.T) {
	cfg := config.DefaultBallzConfig()
	lo := core.Min(3, cfg.Board.Columns)
	hi := core.Max(3, int(float64(cfg.Board.Columns)*0.85))

	for seed := uint32(1); seed <= 100; seed++ {
		p := testPlanner(seed)
		blocks := p.PlanRow(1, 1.0)

		standard := 0
		pickups := 0
		for _, blk := range blocks {
			switch blk.Kind {
			case BlockStandard:
				standard++
			case BlockPickup:
				pickups++
			}
		}

		if standard < lo || standard > hi {
			t.Errorf("Seed %d: standard count %d outside [%d, %d]", seed, standard, lo, hi)
		}
		if pickups > 1 {
			t.Errorf("Seed %d: %d pickups in one row, want at most 1", seed, pickups)
		}
	}
}

func TestPlanRowBlockProperties(t *testing.T) {
	for seed := uint32(1); seed <= 50; seed++ {
		p := testPlanner(seed)
		for turn := 1; turn <= 20; turn++ {
			for _, blk := range p.PlanRow(turn, 1.0) {
				if blk.Row != 0 {
					t.Fatalf("Seed %d turn %d: spawned at row %d, want 0", seed, turn, blk.Row)
				}
				if blk.Strength < 1 {
					t.Fatalf("Seed %d turn %d: strength %d < 1", seed, turn, blk.Strength)
				}
				if blk.Kind == BlockPickup && blk.Strength != 1 {
					t.Fatalf("Seed %d turn %d: pickup strength %d, want 1", seed, turn, blk.Strength)
				}
				if blk.Destroyed {
					t.Fatalf("Seed %d turn %d: spawned destroyed", seed, turn)
				}
			}
		}
	}
}

func TestPlanRowStrengthGrowsWithTurn(t *testing.T) {
	// Strength is max(1, round(turn*(0.5+draw))); at a late turn it must
	// exceed the floor for every draw.
	p := testPlanner(9)
	for _, blk := range p.PlanRow(30, 1.0) {
		if blk.Kind == BlockPickup {
			continue
		}
		if blk.Strength < 15 {
			t.Errorf("Turn 30 strength %d, want >= 15", blk.Strength)
		}
	}
}

func TestPlanRowDifficultyScale(t *testing.T) {
	// The same seed with a doubled scale never yields weaker blocks.
	base := testPlanner(77).PlanRow(10, 1.0)
	scaled := testPlanner(77).PlanRow(10, 2.0)

	if len(base) != len(scaled) {
		t.Fatalf("Scale changed row shape: %d vs %d blocks", len(base), len(scaled))
	}
	for i := range base {
		if base[i].Kind == BlockPickup {
			continue
		}
		if scaled[i].Strength < base[i].Strength {
			t.Errorf("Block %d: scaled strength %d below base %d", i, scaled[i].Strength, base[i].Strength)
		}
	}
}

func TestPlanBarrierWithinBounds(t *testing.T) {
	cfg := config.DefaultBallzConfig()
	bc := cfg.Barriers
	pad := bc.Size/2 + bc.Margin

	for seed := uint32(1); seed <= 100; seed++ {
		p := testPlanner(seed)
		bar := p.PlanBarrier(1, nil, 1.0)

		if bar.Pos.X < pad || bar.Pos.X > cfg.Board.PlayWidth-pad {
			t.Errorf("Seed %d: x %.1f outside padded span", seed, bar.Pos.X)
		}
		if bar.Pos.Y < bc.TopOffset+pad {
			t.Errorf("Seed %d: y %.1f above top offset", seed, bar.Pos.Y)
		}
		if bar.Pos.Y > bc.TopOffset+pad+(cfg.Board.PlayHeight*bc.HeightFraction-2*pad) {
			t.Errorf("Seed %d: y %.1f below upper region", seed, bar.Pos.Y)
		}
		if bar.Strength < 2 {
			t.Errorf("Seed %d: strength %d < 2", seed, bar.Strength)
		}
	}
}

func TestPlanBarrierAvoidsOverlap(t *testing.T) {
	cfg := config.DefaultBallzConfig()
	minDist := cfg.Barriers.Size + cfg.Barriers.Margin

	for seed := uint32(1); seed <= 50; seed++ {
		p := testPlanner(seed)
		var existing []*Barrier
		// With a sparse field the retry budget comfortably finds free spots.
		for i := 0; i < 3; i++ {
			bar := p.PlanBarrier(1, existing, 1.0)
			if overlapsAny(bar.Pos, existing, minDist) {
				t.Errorf("Seed %d: barrier %d overlaps existing", seed, i)
			}
			existing = append(existing, bar)
		}
	}
}

func TestPlanBarrierAcceptsLastCandidate(t *testing.T) {
	// Saturate the upper region so every candidate overlaps; the planner
	// must still return a barrier rather than fail.
	cfg := config.DefaultBallzConfig()
	var crowd []*Barrier
	for x := 0.0; x <= cfg.Board.PlayWidth; x += 20 {
		for y := 0.0; y <= cfg.Board.PlayHeight; y += 20 {
			crowd = append(crowd, &Barrier{Pos: core.Vec2{X: x, Y: y}, Size: cfg.Barriers.Size})
		}
	}

	p := testPlanner(3)
	bar := p.PlanBarrier(1, crowd, 1.0)
	if bar == nil {
		t.Fatal("Planner returned nil on a crowded field")
	}
	if bar.Strength < 2 {
		t.Errorf("Crowded-field barrier strength %d < 2", bar.Strength)
	}
}

func TestPlanDeterminism(t *testing.T) {
	a := testPlanner(2026)
	b := testPlanner(2026)

	for turn := 1; turn <= 10; turn++ {
		rowA := a.PlanRow(turn, 1.0)
		rowB := b.PlanRow(turn, 1.0)
		if len(rowA) != len(rowB) {
			t.Fatalf("Turn %d: row lengths differ", turn)
		}
		for i := range rowA {
			if *rowA[i] != *rowB[i] {
				t.Fatalf("Turn %d block %d: %+v vs %+v", turn, i, *rowA[i], *rowB[i])
			}
		}

		barA := a.PlanBarrier(turn, nil, 1.0)
		barB := b.PlanBarrier(turn, nil, 1.0)
		if *barA != *barB {
			t.Fatalf("Turn %d: barriers differ: %+v vs %+v", turn, *barA, *barB)
		}
	}
}
