// Package report records what a downscale run did: source and result
// dimensions, content hashes and how far the mean color moved.
package report

// Report is the JSON document written by `tgadown --report`.
type Report struct {
	Version     int       `json:"version"`
	GeneratedAt string    `json:"generated_at"`
	Algorithm   string    `json:"algorithm"`
	Workers     int       `json:"workers"`
	Input       ImageInfo `json:"input"`
	Output      ImageInfo `json:"output"`
	ColorDrift  float64   `json:"color_drift"` // CIEDE2000 between input and output mean colors
	ElapsedMS   float64   `json:"elapsed_ms"`
}

// ImageInfo describes one TGA file.
type ImageInfo struct {
	Path      string `json:"path,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Depth     int    `json:"depth"`
	Format    string `json:"format"`     // e.g. "R8G8B8A8"
	Size      int64  `json:"size"`       // bytes on disk
	Hash      string `json:"hash"`       // first 16 hex chars of xxhash64
	MeanColor string `json:"mean_color"` // #rrggbb
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
