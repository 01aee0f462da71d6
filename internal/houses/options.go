package houses

// Option configures optional inputs of Calculate.
type Option func(*Params)

// WithObliquity overrides DefaultObliquity.
func WithObliquity(deg float64) Option {
	return func(p *Params) {
		p.Obliquity = deg
	}
}

// WithAltitude sets the observer's height above sea level in metres. Only
// the topocentric system uses it.
func WithAltitude(metres float64) Option {
	return func(p *Params) {
		p.Altitude = metres
	}
}

func applyOptions(lst, latitude float64, opts []Option) Params {
	p := Params{
		LocalSiderealTime: lst,
		Latitude:          latitude,
		Obliquity:         DefaultObliquity,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
