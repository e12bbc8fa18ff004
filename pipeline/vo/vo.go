package vo

type Markdown string

// Document ties a logical tree path to its source page and its output file.
type Document struct {
	Path        string `json:"path"`        // Dotted tree path, e.g. "extract.API"
	Source      string `json:"source"`      // HTML input, relative to the root
	Destination string `json:"destination"` // Markdown output, relative to the root
}

type Page struct {
	Title    string   `json:"title"` // Contents of <title>, empty if missing
	Markdown Markdown `json:"markdown,omitempty"`
}
