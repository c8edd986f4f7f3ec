package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"artbot/internal/domain"
	"artbot/internal/media"
	"artbot/pkg/zip"
)

const (
	// ArchiveName is the fixed filename of the bulk export download.
	ArchiveName = "artbot-image-export.zip"
	// ManifestName is the JSON manifest bundled into every archive.
	ManifestName = "_image_details.json"

	maxFilenameLength = 128
)

// Record is the per-image metadata written to the archive manifest.
type Record struct {
	Prompt            string   `json:"prompt"`
	Sampler           string   `json:"sampler"`
	Model             string   `json:"model"`
	Height            int      `json:"height"`
	Width             int      `json:"width"`
	Steps             int      `json:"steps"`
	CfgScale          float64  `json:"cfg_scale"`
	Seed              string   `json:"seed,omitempty"`
	DenoisingStrength *float64 `json:"denoising_strength,omitempty"`
}

func recordFrom(img domain.GeneratedImage) Record {
	return Record{
		Prompt:            img.Prompt,
		Sampler:           img.Sampler,
		Model:             img.Model,
		Height:            img.Height,
		Width:             img.Width,
		Steps:             img.Steps,
		CfgScale:          img.CfgScale,
		Seed:              img.Seed,
		DenoisingStrength: img.DenoisingStrength,
	}
}

// ProgressFunc reports sequential per-item progress during an export.
type ProgressFunc func(done, total int)

// BuildArchive converts every image to PNG, collects the metadata manifest,
// and bundles everything into a single zip. Images are processed one at a
// time; a conversion failure is logged and skipped without aborting the
// batch. The returned count is the number of images actually archived,
// which can be smaller than len(images). Returns domain.ErrEmptyArchive
// when nothing could be exported.
func BuildArchive(images []domain.GeneratedImage, log zerolog.Logger, progress ProgressFunc) ([]byte, int, error) {
	entries := make([]zip.Entry, 0, len(images)+1)
	records := make([]Record, 0, len(images))

	for i, img := range images {
		data, err := convertImage(img)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("export: skipping image")
		} else {
			name := fmt.Sprintf("%s_%d.png", SanitizeFilename(img.Prompt), i+1)
			entries = append(entries, zip.Entry{Name: name, Data: data})
			records = append(records, recordFrom(img))
		}
		if progress != nil {
			progress(i+1, len(images))
		}
	}

	if len(records) == 0 {
		return nil, 0, domain.ErrEmptyArchive
	}

	manifest, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, 0, fmt.Errorf("export: marshal manifest: %w", err)
	}
	entries = append([]zip.Entry{{Name: ManifestName, Data: manifest}}, entries...)
	data, err := zip.Archive(entries)
	if err != nil {
		return nil, 0, err
	}
	return data, len(records), nil
}

// ImagePNG converts a single image for the standalone PNG download path,
// returning the payload together with its sanitized filename.
func ImagePNG(img domain.GeneratedImage) ([]byte, string, error) {
	data, err := convertImage(img)
	if err != nil {
		return nil, "", err
	}
	return data, SanitizeFilename(img.Prompt) + ".png", nil
}

func convertImage(img domain.GeneratedImage) ([]byte, error) {
	raw, err := media.FromBase64(img.Base64)
	if err != nil {
		return nil, err
	}
	return media.ToPNG(raw)
}

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeFilename derives a filesystem-safe name from a prompt: diacritics
// folded to their base letters, lowercased, runs of non-alphanumerics
// collapsed to a single underscore, length-capped.
func SanitizeFilename(prompt string) string {
	if folded, _, err := transform.String(diacriticFolder, prompt); err == nil {
		prompt = folded
	}
	prompt = strings.ToLower(prompt)

	var b strings.Builder
	lastUnderscore := false
	for _, r := range prompt {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		name = "image"
	}
	if len(name) > maxFilenameLength {
		name = name[:maxFilenameLength]
		name = strings.TrimRight(name, "_")
	}
	return name
}
