package jumper

// resolveLanding detects and resolves a landing of the player on a platform.
// It returns the updated player and whether a landing happened.
//
// Landings only occur while descending (VY > 0); an ascending player passes
// through platforms from below. A platform catches the player when all of:
//
//  1. the player's bottom edge before this tick's vertical displacement
//     (bottom − VY) was at or above the platform's top, so a player already
//     embedded below the surface is never caught;
//  2. the bottom edge now lies within [top, top+height+tolerance] — the band
//     is wider than the platform itself so large per-tick falls don't skip it;
//  3. the horizontal extents strictly overlap (touching edges don't count).
//
// The first platform in field order satisfying all three wins and no further
// platforms are checked; on a match the player is snapped onto the platform
// top and bounced.
func resolveLanding(p Player, platforms []Platform, tolerance, jumpSpeed float64) (Player, bool) {
	if p.VY <= 0 {
		return p, false
	}

	prevBottom := p.bottom() - p.VY
	for _, pl := range platforms {
		if prevBottom > pl.Y {
			continue // started the tick below the surface
		}
		if p.bottom() < pl.Y || p.bottom() > pl.Y+pl.H+tolerance {
			continue
		}
		if p.right() <= pl.X || pl.right() <= p.left() {
			continue
		}

		p.Y = pl.Y - p.H
		return bounce(p, jumpSpeed), true
	}
	return p, false
}
