// Package assets provides the themes and fixed replacement content used to
// build documents. Assets can be loaded from embedded files or custom
// filesystem paths.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - ordered chain, custom first, embedded last
//
// EmbeddedLoader provides the built-in themes (default, monochrome) and the
// content files describing the diagram, the technology table and the
// references section.
//
// FilesystemLoader allows users to provide custom assets from a directory.
// Files are opened through os.Root.
//
// AssetResolver is the primary loader used by the converter. It asks a
// custom loader (usually a FilesystemLoader) first and falls back to
// EmbeddedLoader only when the asset is not found. This enables overriding a single file (for example only
// references.yaml) while keeping every other default.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── themes/
//	│   └── {name}.yaml          # fonts, sizes, colours, chroma style
//	└── content/
//	    ├── diagram.yaml         # architecture diagram replacement
//	    ├── techstack.yaml       # technology table replacement
//	    └── references.yaml      # appended bibliography
//
// Loaders return raw YAML; decoding and validation happen in the consumer.
//
// # Security
//
// Asset names must be plain identifiers (no separators or dots). Reads are
// capped at yamlutil.MaxInputSize, and FilesystemLoader rejects symlinks
// pointing outside its directory.
package assets
