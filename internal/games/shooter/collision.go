package shooter

import "time"

// resolveCollisions applies every overlap outcome for the tick, in order:
// player projectiles against hostiles, hostiles against the player, then
// collectibles against the player. Entities already dead are skipped.
func (w *World) resolveCollisions(now time.Duration, report *TickReport) {
	w.projectilesVsHostiles(report)
	w.playerVsHostiles(now, report)
	w.playerVsCollectibles(report)
}

func (w *World) projectilesVsHostiles(report *TickReport) {
	for _, h := range w.Hostiles {
		if h.Dead {
			continue
		}
		for _, p := range w.Projectiles {
			if p.Dead || p.Owner != OwnerPlayer || !p.Box.Intersects(h.Box) {
				continue
			}
			p.Dead = true
			if h.Dead {
				// Further bullets overlapping a hostile destroyed this tick are still consumed.
				continue
			}
			if h.RegisterHit() {
				w.destroyHostile(h)
				report.Kills++
			}
		}
	}
}

func (w *World) destroyHostile(h *Hostile) {
	h.Dead = true
	cx, cy := h.Box.CenterX(), h.Box.CenterY()
	w.Effects = append(w.Effects, NewEffect(cx, cy, w.cfg.Effects.KillSize, w.cfg.Effects.Frames))
	w.Score += h.ScoreValue()
	w.Kills++

	if w.spawner.RollDrop(w.rng) {
		w.Collectibles = append(w.Collectibles, SpawnCollectible(w.rng, cx, cy, w.cfg))
	}
}

// playerVsHostiles lets every overlapping hostile deal damage. Two hostiles
// ramming at the same timestamp both land; see Player.ApplyDamage.
func (w *World) playerVsHostiles(now time.Duration, report *TickReport) {
	for _, h := range w.Hostiles {
		if h.Dead || !h.Box.Intersects(w.Player.Box) {
			continue
		}
		h.Dead = true
		w.Effects = append(w.Effects, NewEffect(h.Box.CenterX(), h.Box.CenterY(), w.cfg.Effects.RamSize, w.cfg.Effects.Frames))
		report.Hits++

		if w.Player.ApplyDamage(w.cfg.Player.ContactDamage, now) && !w.dead {
			w.dead = true
			report.Fatal = true
		}
	}
}

func (w *World) playerVsCollectibles(report *TickReport) {
	for _, c := range w.Collectibles {
		if c.Dead || !c.Box.Intersects(w.Player.Box) {
			continue
		}
		c.Dead = true
		report.Pickups++
		w.applyCollectible(c.Kind)
	}
}

func (w *World) applyCollectible(k Kind) {
	switch k {
	case KindHealth:
		w.Player.Heal(w.cfg.Collectibles.HealAmount)
	case KindPowerUp:
		w.Player.UpgradeWeapon()
	case KindScore:
		w.Score += w.cfg.Collectibles.ScoreBonus
	}
}
