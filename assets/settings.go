package assets

// Settings are the resolved image locations handed to a client-side emoji
// detection script. Encoding them (e.g. as JSON) and emitting the script is
// up to the host environment.
type Settings struct {
	BaseURL string `json:"baseUrl"`
	Ext     string `json:"ext"`
	SVGURL  string `json:"svgUrl"`
	SVGExt  string `json:"svgExt"`
}

// Settings resolves the raster and vector base URLs for emoji data
// version v.
func (r *Resolver) Settings(v string) Settings {
	return Settings{
		BaseURL: r.Resolve(Raster, DefaultURL(Raster, v)),
		Ext:     "." + Raster.Ext(),
		SVGURL:  r.Resolve(Vector, DefaultURL(Vector, v)),
		SVGExt:  "." + Vector.Ext(),
	}
}
