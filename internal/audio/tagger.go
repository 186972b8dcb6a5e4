package audio

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"

	"github.com/handiism/audio-studio/internal/model"
)

// ErrUnsupportedFormat is returned for files the operation cannot handle,
// e.g. tagging a WAV file.
var ErrUnsupportedFormat = errors.New("audio: unsupported file format")

// versionDescription names the comment frame holding the library version.
const versionDescription = "AUDIO_STUDIO_VERSION"

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the library.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true,
//	    Title:      TagModify,      // Song title
//	    Subtitle:   TagModify,      // Mix name, take, etc.
//	    Artist:     TagModify,      // Owning project or guessed artist
//	    Version:    TagDoNotModify, // Keep any version already written
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no string tags are modified.
	ModifyTags bool

	// Title controls the TIT2 (Title) frame.
	Title TagEditAction

	// Subtitle controls the TIT3 (Subtitle/description refinement) frame.
	Subtitle TagEditAction

	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Version controls the COMM frame holding the revision number.
	Version TagEditAction
}

// DefaultTagConfig returns the default tag configuration: every field is
// set to TagModify.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Title:      TagModify,
		Subtitle:   TagModify,
		Artist:     TagModify,
		Version:    TagModify,
	}
}

// Tagger writes library metadata into MP3 files as ID3v2 tags.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	if err := tagger.SaveTags(song, "Roxy", nil); err != nil {
//	    logger.Warn("failed to tag song", zap.String("path", song.Path), zap.Error(err))
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes the song's metadata into its MP3 file.
//
// artist is written to TPE1; callers pass the owning project's name or the
// guessed artist. artwork, when not nil, replaces the front cover picture
// and must be JPEG data. Files that are not MP3 return ErrUnsupportedFormat
// and are left untouched.
func (t *Tagger) SaveTags(song *model.Song, artist string, artwork []byte) error {
	if song == nil {
		return model.ErrNilEntity
	}
	if !strings.EqualFold(filepath.Ext(song.Path), ".mp3") {
		return ErrUnsupportedFormat
	}

	tag, err := id3v2.Open(song.Path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateStringTags(tag, song, artist)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateStringTags updates text-based ID3 frames based on configuration.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, song *model.Song, artist string) {
	// Title (TIT2)
	switch t.config.Title {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(song.DisplayTitle())
	}

	// Subtitle (TIT3)
	switch t.config.Subtitle {
	case TagEmpty:
		tag.DeleteFrames("TIT3")
	case TagModify:
		tag.DeleteFrames("TIT3")
		if song.Subtitle != "" {
			tag.AddTextFrame("TIT3", id3v2.EncodingUTF8, song.Subtitle)
		}
	}

	// Artist (TPE1)
	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		tag.SetArtist(artist)
	}

	// Version (COMM)
	switch t.config.Version {
	case TagEmpty:
		deleteComment(tag, versionDescription)
	case TagModify:
		deleteComment(tag, versionDescription)
		if song.Version > 0 {
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding:    id3v2.EncodingUTF8,
				Language:    "eng",
				Description: versionDescription,
				Text:        strconv.Itoa(song.Version),
			})
		}
	}
}

// deleteComment removes the comment frames with the given description and
// keeps every other comment.
func deleteComment(tag *id3v2.Tag, description string) {
	id := tag.CommonID("Comments")
	frames := tag.GetFrames(id)
	if len(frames) == 0 {
		return
	}
	tag.DeleteFrames(id)
	for _, f := range frames {
		cf, ok := f.(id3v2.CommentFrame)
		if !ok || cf.Description == description {
			continue
		}
		tag.AddCommentFrame(cf)
	}
}

// updateArtwork embeds artwork as the front cover picture.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}

// Comment returns the text of the comment frame with the given
// description in an MP3 file, or "" if there is none.
func Comment(path, description string) (string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", err
	}
	defer tag.Close()

	for _, f := range tag.GetFrames(tag.CommonID("Comments")) {
		if cf, ok := f.(id3v2.CommentFrame); ok && cf.Description == description {
			return cf.Text, nil
		}
	}
	return "", nil
}

// VersionFromTags reads the library version written by SaveTags, or 0.
func VersionFromTags(path string) int {
	v, err := Comment(path, versionDescription)
	if err != nil {
		return 0
	}
	n, _ := strconv.Atoi(v)
	return n
}
