package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the theme's icon font.
const (
	Book         = "\U000F00BA" // Closed book icon, used on the cover
	BookOpen     = "\U000F05DA" // Open book with page, used by the indicator
	ChevronLeft  = "\U000F0141" // Previous-page button glyph
	ChevronRight = "\U000F0142" // Next-page button glyph

	Start  = "\U000F040A" // Play/start button icon
	Select = "\uEACC"     // Select/menu button icon
)
