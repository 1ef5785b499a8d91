package configuration

import (
	"go.uber.org/zap"

	"github.com/alenalex/mcutil/internal/chat"
	"github.com/alenalex/mcutil/internal/document"
	"github.com/alenalex/mcutil/internal/enum"
	"github.com/alenalex/mcutil/internal/location"
	"github.com/alenalex/mcutil/internal/provision"
	"github.com/alenalex/mcutil/internal/utility"
)

// Base holds the document of one configuration file and exposes typed,
// colorized accessors over it. Absent or invalid values are reported through
// the ok result, never as errors; only Location returns an error.
//
// Base is owned by one goroutine; it does no locking.
type Base struct {
	utils  *utility.Manager
	doc    document.Document
	logger *zap.Logger
}

// NewBase returns a Base with no document loaded.
//
// Precondition: utils must be non-nil.
func NewBase(utils *utility.Manager) *Base {
	return &Base{
		utils:  utils,
		logger: utils.Logger().Named("configuration"),
	}
}

// InitFiles provisions the backing file and loads it. With isConfig set the
// plugin's config.yml is used and the other arguments are ignored. Otherwise
// fileName is created inside folder, seeded from resource when resource is
// not blank. On failure the previously loaded document is kept.
func (b *Base) InitFiles(isConfig bool, fileName, folder, resource string) bool {
	files := b.utils.Files()

	var (
		doc *document.YAML
		err error
	)
	switch {
	case isConfig:
		fileName = provision.ConfigFile
		doc, err = files.CreateConfiguration(b.utils.Plugin().Version)
	case chat.IsBlank(resource):
		doc, err = files.CreateYAMLIn(fileName, folder)
	default:
		doc, err = files.CreateYAMLFromResource(resource, fileName, folder)
	}
	if err != nil {
		b.logger.Error("provisioning configuration file",
			zap.String("file", fileName),
			zap.String("folder", folder),
			zap.String("resource", resource),
			zap.Error(err),
		)
		return false
	}
	b.doc = doc
	return true
}

// SetDocument replaces the loaded document.
func (b *Base) SetDocument(doc document.Document) { b.doc = doc }

// Document returns the loaded document, or nil before a successful InitFiles.
func (b *Base) Document() document.Document { return b.doc }

// Utilities returns the helpers this configuration reads through.
func (b *Base) Utilities() *utility.Manager { return b.utils }

// Logger returns the configuration's logger.
func (b *Base) Logger() *zap.Logger { return b.logger }

// Clear empties the loaded values without touching the file.
func (b *Base) Clear() {
	if b.doc != nil {
		b.doc.Clear()
	}
}

// Raw returns the uncolorized scalar at path.
func (b *Base) Raw(path string) (string, bool) {
	if b.doc == nil {
		return "", false
	}
	return b.doc.String(path)
}

// String returns the colorized scalar at path. Missing and blank values
// report false.
func (b *Base) String(path string) (string, bool) {
	raw, ok := b.Raw(path)
	if !ok {
		return "", false
	}
	return b.utils.Chat().Colorize(raw)
}

// StringList returns the list at path with every element colorized. Blank
// elements are kept as empty strings so indexes line up with the file.
func (b *Base) StringList(path string) []string {
	if b.doc == nil {
		return nil
	}
	raw := b.doc.StringList(path)
	if raw == nil {
		return nil
	}
	out := make([]string, len(raw))
	for i, s := range raw {
		out[i], _ = b.utils.Chat().Colorize(s)
	}
	return out
}

// Location decodes the location string at path. exact also reads yaw and
// pitch. Codec errors are returned unchanged; a missing key decodes as blank.
func (b *Base) Location(path string, exact bool) (location.Position, error) {
	raw, _ := b.Raw(path)
	return b.utils.Locations().Decode(raw, exact)
}

// Material returns the material named at path.
func (b *Base) Material(path string) (enum.Material, bool) {
	raw, ok := b.Raw(path)
	if !ok {
		return "", false
	}
	return b.utils.Enums().Material(raw)
}

// Sound returns the sound named at path.
func (b *Base) Sound(path string) (enum.Sound, bool) {
	raw, ok := b.Raw(path)
	if !ok {
		return "", false
	}
	return b.utils.Enums().Sound(raw)
}
