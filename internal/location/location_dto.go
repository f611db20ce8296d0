package location

// Option is the value/label pair the frontend renders in dropdowns.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func toOption(loc Location) Option {
	label := loc.Name
	if !loc.IsCounty && loc.FullName != "" {
		label = loc.FullName
	}
	return Option{Value: loc.Code, Label: label}
}

func toOptions(locs []Location) []Option {
	opts := make([]Option, 0, len(locs))
	for _, loc := range locs {
		opts = append(opts, toOption(loc))
	}
	return opts
}
