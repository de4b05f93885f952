package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher

	// Validation
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning

	// Deck
	IconChart    = "" // bar chart
	IconDatabase = "" // database
	IconFolder   = "" // folder
)

// Plain glyphs for the viewer controls; these render without a Nerd Font.
const (
	GlyphPrev = "‹"
	GlyphNext = "›"
)
