package ghost

// Disguise is the faction the player currently impersonates. The zero value
// is "no disguise". It is written by successful symbol matches and read by
// every ghost decision and trigger check within a session.
type Disguise struct {
	faction Faction
	set     bool
}

// Set puts on the disguise of faction f.
func (d *Disguise) Set(f Faction) {
	d.faction = f
	d.set = true
}

// Clear removes any disguise.
func (d *Disguise) Clear() {
	*d = Disguise{}
}

// Current returns the disguise faction and whether one is worn.
func (d *Disguise) Current() (Faction, bool) {
	return d.faction, d.set
}

// Is reports whether the player is disguised as f. A nil Disguise is never set.
func (d *Disguise) Is(f Faction) bool {
	return d != nil && d.set && d.faction == f
}
