package activity

// Overrides holds the fields of a selected activity that differ from its
// catalog entry. Empty strings mean "use the catalog value".
type Overrides struct {
	Name     string
	Location string
	LinkURL  string
}

// IsZero reports whether no field is overridden.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// Apply lays the overrides over base.
func (o Overrides) Apply(base Activity) Activity {
	out := base
	if o.Name != "" {
		out.Name = o.Name
	}
	if o.Location != "" {
		out.Location = o.Location
	}
	if o.LinkURL != "" {
		out.LinkURL = o.LinkURL
	}
	return out
}

// Diff returns the overrides that turn base into a. Only name, location and
// link are tracked; other divergence is not representable as an override.
func Diff(base, a Activity) Overrides {
	var o Overrides
	if a.Name != base.Name {
		o.Name = a.Name
	}
	if a.Location != base.Location {
		o.Location = a.Location
	}
	if a.LinkURL != base.LinkURL {
		o.LinkURL = a.LinkURL
	}
	return o
}

// Ref is a compact reference to an activity: a catalog id plus the fields
// that diverge from the catalog entry. Custom activities that are not in the
// catalog carry their full record in Standalone.
type Ref struct {
	ID         int
	Overrides  Overrides
	Standalone *Activity
	// Record is set when the reference was stored as an object rather than
	// a bare id.
	Record bool
}

// RefFor builds the most compact reference for a against the catalog.
func RefFor(c *Catalog, a Activity) Ref {
	base, ok := c.Lookup(a.ID)
	if !ok {
		cp := a
		return Ref{ID: a.ID, Standalone: &cp}
	}
	return Ref{ID: a.ID, Overrides: Diff(base, a)}
}

// IsBare reports whether the reference carries nothing but the id.
func (r Ref) IsBare() bool {
	return r.Standalone == nil && r.Overrides.IsZero()
}

// Resolve turns the reference back into an Activity. A catalog hit gets the
// overrides applied. A miss falls back to a stand-in built from the stored
// fields; degraded is true when that stand-in lacks a category, i.e. it is a
// partial record rather than a complete custom activity. An unknown id stored
// as a record with no other fields becomes a stand-in holding just the id.
// ok is false for a zero id, or for an unknown bare id.
func (r Ref) Resolve(c *Catalog) (a Activity, degraded bool, ok bool) {
	if r.ID == 0 {
		return Activity{}, false, false
	}
	if base, found := c.Lookup(r.ID); found {
		return r.Overrides.Apply(base), false, true
	}
	if r.Standalone != nil {
		out := *r.Standalone
		out.ID = r.ID
		return r.Overrides.Apply(out), out.Category == "", true
	}
	if r.Overrides.IsZero() && !r.Record {
		return Activity{}, false, false
	}
	return r.Overrides.Apply(Activity{ID: r.ID}), true, true
}
