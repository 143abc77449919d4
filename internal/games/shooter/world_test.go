package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

const frame = time.Second / 60

func TestWorldScenarioShootBasicHostile(t *testing.T) {
	w := NewWorld(quietConfig(), fixedRand{})
	// Directly above the player's centre line.
	w.AddHostile(NewHostile(VariantBasic, 380, 300, 2, w.Config()))

	now := time.Duration(0)
	killedAt := -1
	for i := range 60 {
		now += frame
		report := w.Tick(now, DirNone, i == 0)
		if i == 0 && report.Shots != 1 {
			t.Fatalf("first tick fired %d shots, want 1", report.Shots)
		}
		if report.Kills > 0 {
			killedAt = i
			break
		}
	}

	if killedAt < 0 {
		t.Fatal("hostile was never destroyed")
	}
	if len(w.Hostiles) != 0 {
		t.Errorf("hostiles=%d, want 0", len(w.Hostiles))
	}
	if w.Score != 10 {
		t.Errorf("score=%d, want 10", w.Score)
	}
	if len(w.Effects) != 1 {
		t.Errorf("effects=%d, want 1", len(w.Effects))
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("projectile should be consumed, %d left", len(w.Projectiles))
	}
}

func TestWorldScenarioSameTickRams(t *testing.T) {
	w := NewWorld(quietConfig(), fixedRand{})
	cfg := w.Config()
	w.AddHostile(NewHostile(VariantBasic, 380, 530, 0, cfg))
	w.AddHostile(NewHostile(VariantBasic, 385, 530, 0, cfg))

	now := time.Second
	report := w.Tick(now, DirNone, false)

	if report.Hits != 2 {
		t.Errorf("hits=%d, want 2", report.Hits)
	}
	if w.Player.Health != 60 {
		t.Errorf("health=%d, want 60 (both same-tick hits land)", w.Player.Health)
	}
	if len(w.Hostiles) != 0 {
		t.Errorf("rammed hostiles should be removed, %d left", len(w.Hostiles))
	}
	if len(w.Effects) != 2 {
		t.Errorf("effects=%d, want 2", len(w.Effects))
	}

	// A later ram inside the window is absorbed but still destroys the hostile.
	w.AddHostile(NewHostile(VariantBasic, 380, 530, 0, cfg))
	report = w.Tick(now+frame, DirNone, false)
	if report.Hits != 1 || w.Player.Health != 60 {
		t.Errorf("shielded ram: hits=%d health=%d, want 1/60", report.Hits, w.Player.Health)
	}
	if len(w.Hostiles) != 0 {
		t.Error("shielded ram should still destroy the hostile")
	}
}

func TestWorldFatalReportedOnce(t *testing.T) {
	w := NewWorld(quietConfig(), fixedRand{})
	cfg := w.Config()
	w.Player.Health = 20
	w.AddHostile(NewHostile(VariantBasic, 380, 530, 0, cfg))
	w.AddHostile(NewHostile(VariantFast, 390, 530, 0, cfg))

	report := w.Tick(time.Second, DirNone, false)
	if !report.Fatal {
		t.Fatal("expected fatal report")
	}
	if w.Player.Health != 0 {
		t.Errorf("health=%d, want 0", w.Player.Health)
	}

	w.Player.Invulnerable = false
	w.AddHostile(NewHostile(VariantBasic, 380, 530, 0, cfg))
	if w.Tick(5*time.Second, DirNone, false).Fatal {
		t.Error("fatal reported twice")
	}
}

func TestWorldScenarioDifficultyThreshold(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), fixedRand{f: 0.5})

	w.Score = 500
	if w.Tick(frame, DirNone, false).LevelUp {
		t.Error("score 500 should not level up")
	}
	if w.Difficulty.Level != 1 {
		t.Errorf("level=%d, want 1", w.Difficulty.Level)
	}

	w.Score = 501
	if !w.Tick(2*frame, DirNone, false).LevelUp {
		t.Error("score 501 should level up")
	}
	d := w.Difficulty
	if d.Level != 2 {
		t.Errorf("level=%d, want 2", d.Level)
	}
	if !almostEqual(d.Factor, 1.2) {
		t.Errorf("factor=%v, want 1.2", d.Factor)
	}
	if d.SpawnInterval != 50 {
		t.Errorf("spawn interval=%d, want 50", d.SpawnInterval)
	}
}

func TestWorldAdvancesOneLevelPerTick(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), fixedRand{f: 0.5})
	w.Score = 2000

	w.Tick(frame, DirNone, false)
	if w.Difficulty.Level != 2 {
		t.Errorf("after one tick level=%d, want 2", w.Difficulty.Level)
	}
	w.Tick(2*frame, DirNone, false)
	w.Tick(3*frame, DirNone, false)
	if w.Difficulty.Level != 4 {
		t.Errorf("after three ticks level=%d, want 4", w.Difficulty.Level)
	}
	w.Tick(4*frame, DirNone, false)
	if w.Difficulty.Level != 4 {
		t.Errorf("score 2000 should stop at level 4, got %d", w.Difficulty.Level)
	}
}

func TestWorldSingleHitPerHostile(t *testing.T) {
	w := NewWorld(quietConfig(), fixedRand{})
	cfg := w.Config()
	w.AddHostile(NewHostile(VariantBasic, 100, 100, 0, cfg))
	w.Projectiles = append(w.Projectiles,
		NewPlayerProjectile(115, 130, cfg.Projectiles, cfg.World.Height),
		NewPlayerProjectile(125, 130, cfg.Projectiles, cfg.World.Height),
	)

	report := w.Tick(frame, DirNone, false)
	if report.Kills != 1 || w.Kills != 1 {
		t.Errorf("kills report=%d world=%d, want 1", report.Kills, w.Kills)
	}
	if w.Score != 10 {
		t.Errorf("score=%d, want 10", w.Score)
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("both overlapping projectiles should be consumed, %d left", len(w.Projectiles))
	}
	if len(w.Effects) != 1 {
		t.Errorf("effects=%d, want 1", len(w.Effects))
	}
}

func TestWorldTankTakesThreeHits(t *testing.T) {
	w := NewWorld(quietConfig(), fixedRand{})
	cfg := w.Config()
	tank := NewHostile(VariantTank, 100, 100, 0, cfg)
	w.AddHostile(tank)
	w.Projectiles = append(w.Projectiles,
		NewPlayerProjectile(115, 140, cfg.Projectiles, cfg.World.Height),
		NewPlayerProjectile(125, 140, cfg.Projectiles, cfg.World.Height),
	)

	w.Tick(frame, DirNone, false)
	if tank.Dead || tank.HitPoints != 1 {
		t.Fatalf("tank dead=%v hp=%d, want alive with 1", tank.Dead, tank.HitPoints)
	}
	if w.Score != 0 {
		t.Errorf("score=%d before kill", w.Score)
	}

	w.Projectiles = append(w.Projectiles, NewPlayerProjectile(120, 140, cfg.Projectiles, cfg.World.Height))
	w.Tick(2*frame, DirNone, false)
	if !tank.Dead || w.Score != 25 {
		t.Errorf("tank dead=%v score=%d, want dead/25", tank.Dead, w.Score)
	}
}

func TestWorldHostileProjectilesDoNotHurt(t *testing.T) {
	w := NewWorld(quietConfig(), fixedRand{})
	h := NewHostile(VariantBasic, 380, 400, 0, w.Config())
	w.AddHostile(h)
	shot := w.FireFromHostile(h)
	if shot.Owner != OwnerHostile {
		t.Fatalf("owner=%v, want hostile", shot.Owner)
	}

	now := time.Duration(0)
	for range 60 {
		now += frame
		w.Tick(now, DirNone, false)
	}
	if w.Player.Health != w.Player.MaxHealth {
		t.Errorf("health=%d after hostile fire", w.Player.Health)
	}
	if h.Dead {
		t.Error("hostile projectiles must not hit hostiles")
	}
}

func TestWorldCollectibles(t *testing.T) {
	tests := []struct {
		kind  Kind
		check func(*World) bool
	}{
		{KindHealth, func(w *World) bool { return w.Player.Health == 80 }},
		{KindPowerUp, func(w *World) bool { return w.Player.WeaponTier == 2 }},
		{KindScore, func(w *World) bool { return w.Score == 50 }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w := NewWorld(quietConfig(), fixedRand{})
			w.Player.Health = 60
			w.AddCollectible(NewCollectible(tt.kind, 400, 560, w.Config()))

			report := w.Tick(frame, DirNone, false)
			if report.Pickups != 1 {
				t.Errorf("pickups=%d, want 1", report.Pickups)
			}
			if len(w.Collectibles) != 0 {
				t.Error("picked collectible should be removed")
			}
			if !tt.check(w) {
				t.Errorf("%v had no effect", tt.kind)
			}
		})
	}
}

func TestWorldKillDropsCollectible(t *testing.T) {
	cfg := quietConfig()
	cfg.Collectibles.DropChance = 1
	w := NewWorld(cfg, fixedRand{f: 0.5, n: int(KindPowerUp)})
	w.AddHostile(NewHostile(VariantBasic, 100, 100, 0, cfg))
	w.Projectiles = append(w.Projectiles, NewPlayerProjectile(120, 130, cfg.Projectiles, cfg.World.Height))

	w.Tick(frame, DirNone, false)
	if len(w.Collectibles) != 1 {
		t.Fatalf("collectibles=%d, want 1", len(w.Collectibles))
	}
	c := w.Collectibles[0]
	if c.Kind != KindPowerUp {
		t.Errorf("kind=%v, want power", c.Kind)
	}
	if !almostEqual(c.Box.CenterX(), 120) || !almostEqual(c.Box.CenterY(), 117.5) {
		t.Errorf("collectible at (%v,%v), want hostile centre", c.Box.CenterX(), c.Box.CenterY())
	}
}

func TestWorldHostileEscapingIsNotAKill(t *testing.T) {
	cfg := quietConfig()
	cfg.Collectibles.DropChance = 1
	w := NewWorld(cfg, fixedRand{f: 0.5})
	// Far left of the player, one unit above the floor.
	w.AddHostile(NewHostile(VariantBasic, 0, cfg.World.Height-1, 3, cfg))

	report := w.Tick(frame, DirNone, false)

	if len(w.Hostiles) != 0 {
		t.Fatalf("hostiles=%d, want 0 after leaving the bottom", len(w.Hostiles))
	}
	if w.Score != 0 || w.Kills != 0 || report.Kills != 0 {
		t.Errorf("score=%d kills=%d report.Kills=%d, want all 0", w.Score, w.Kills, report.Kills)
	}
	if len(w.Collectibles) != 0 {
		t.Errorf("collectibles=%d, want 0 (escapes never drop)", len(w.Collectibles))
	}
	if len(w.Effects) != 0 {
		t.Errorf("effects=%d, want 0", len(w.Effects))
	}
}

func TestWorldSpawnsOnInterval(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), fixedRand{f: 0.5})

	spawned := 0
	now := time.Duration(0)
	for range 120 {
		now += frame
		if w.Tick(now, DirNone, false).Spawned {
			spawned++
		}
	}
	if spawned != 2 {
		t.Errorf("spawned=%d in 120 ticks, want 2", spawned)
	}
}

func TestFilterAlive(t *testing.T) {
	got := filterAlive([]int{1, 2, 3, 4, 5}, func(v int) bool { return v%2 == 1 })
	if len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 5 {
		t.Errorf("filterAlive = %v", got)
	}
}
