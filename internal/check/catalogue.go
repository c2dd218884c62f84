package check

import "github.com/five82/ffcheck/internal/capability"

// TokenGroup names a set of tokens checked against one capability listing.
// A missing token is a failure: the capability was expected but absent.
type TokenGroup struct {
	Label    string
	Category capability.Category
	Tokens   []string
}

// tokenGroups returns the grouped substring checks, in catalogue order.
func tokenGroups() []TokenGroup {
	return []TokenGroup{
		{Label: "codec", Category: capability.CategoryCodecs, Tokens: []string{"h264", "hevc", "av1", "vp9"}},
		{Label: "codec", Category: capability.CategoryCodecs, Tokens: []string{"aac", "opus", "flac", "mp3"}},
		{Label: "hwaccel", Category: capability.CategoryHWAccels, Tokens: []string{"cuda", "cuvid", "nvdec"}},
		{Label: "encoder", Category: capability.CategoryEncoders, Tokens: []string{"nvenc", "h264_nvenc", "hevc_nvenc"}},
		{Label: "decoder", Category: capability.CategoryDecoders, Tokens: []string{"h264_cuvid", "hevc_cuvid"}},
		{Label: "filter", Category: capability.CategoryFilters, Tokens: []string{"scale_cuda", "overlay_cuda"}},
	}
}

// Catalogue returns the fixed, ordered list of checks for one run. The
// single-invocation liveness probes come first so that grouped listing
// checks always run against a listing whose basic capture already succeeded
// or failed deterministically.
func Catalogue() []Check {
	checks := []Check{
		{Name: "version", Kind: KindCapability, Category: capability.CategoryVersion},
		{Name: "codec listing", Kind: KindCapability, Category: capability.CategoryCodecs},
		{Name: "encoder listing", Kind: KindCapability, Category: capability.CategoryEncoders},
		{Name: "decoder listing", Kind: KindCapability, Category: capability.CategoryDecoders},
		{Name: "hwaccel listing", Kind: KindCapability, Category: capability.CategoryHWAccels},
		{Name: "filter listing", Kind: KindCapability, Category: capability.CategoryFilters},
	}

	for _, g := range tokenGroups() {
		for _, token := range g.Tokens {
			checks = append(checks, Check{
				Name:     g.Label + " " + token,
				Kind:     KindCapability,
				Category: g.Category,
				Token:    token,
			})
		}
	}

	checks = append(checks,
		Check{Name: "cpu transcode", Kind: KindBehavioral, Encoder: "libx264"},
		Check{Name: "nvenc transcode", Kind: KindBehavioral, Encoder: "h264_nvenc", GateToken: "nvenc"},
		Check{Name: "linked acceleration libraries", Kind: KindLinkage},
	)

	return checks
}
