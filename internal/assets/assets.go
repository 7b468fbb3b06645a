package assets

// Content asset names.
const (
	ContentDiagram    = "diagram"
	ContentTechStack  = "techstack"
	ContentReferences = "references"
)

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "default"

// Kind is an asset category. Its value names the directory holding the files.
type Kind string

// Asset kinds.
const (
	KindTheme   Kind = "themes"
	KindContent Kind = "content"
)

const assetExt = ".yaml"

// notFound returns the sentinel reported when an asset of kind k is missing.
func (k Kind) notFound() error {
	if k == KindTheme {
		return ErrThemeNotFound
	}
	return ErrContentNotFound
}

var defaultLoader = NewEmbeddedLoader()

// LoadTheme loads an embedded theme by name (no extension, no path).
func LoadTheme(name string) ([]byte, error) {
	return defaultLoader.LoadTheme(name)
}

// LoadContent loads an embedded content file by name.
func LoadContent(name string) ([]byte, error) {
	return defaultLoader.LoadContent(name)
}

// ThemeNames lists the embedded theme names in lexical order.
func ThemeNames() []string {
	return defaultLoader.ThemeNames()
}
