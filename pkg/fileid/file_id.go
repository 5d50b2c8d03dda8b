// Package fileid decodes and encodes Bot API file identifiers.
//
// A file id is URL-safe base64 over a zero run-length compressed byte
// string. The bytes start with the file type and data center, optionally
// followed by a file reference, then either a web location or the
// id/access hash pair, then, for photo-like types, a photo size source.
// The last one or two bytes carry the format version and subversion.
package fileid

import (
	"fmt"
)

// Flags stored in the high bits of the raw file type.
const (
	WebLocationFlag   uint32 = 1 << 24
	FileReferenceFlag uint32 = 1 << 25
)

// Versions written by current clients.
const (
	LatestVersion    uint8 = 4
	LatestSubVersion uint8 = 47
)

// Type is the category of the referenced remote file.
type Type uint32

const (
	TypeThumbnail Type = iota
	TypeProfilePhoto
	TypePhoto
	TypeVoice
	TypeVideo
	TypeDocument
	TypeEncrypted
	TypeTemp
	TypeSticker
	TypeAudio
	TypeAnimation
	TypeEncryptedThumbnail
	TypeWallpaper
	TypeVideoNote
	TypeSecureRaw
	TypeSecure
	TypeBackground
	TypeDocumentAsFile
	typeCount
)

var typeNames = [...]string{
	TypeThumbnail:          "thumbnail",
	TypeProfilePhoto:       "profile_photo",
	TypePhoto:              "photo",
	TypeVoice:              "voice",
	TypeVideo:              "video",
	TypeDocument:           "document",
	TypeEncrypted:          "encrypted",
	TypeTemp:               "temp",
	TypeSticker:            "sticker",
	TypeAudio:              "audio",
	TypeAnimation:          "animation",
	TypeEncryptedThumbnail: "encrypted_thumbnail",
	TypeWallpaper:          "wallpaper",
	TypeVideoNote:          "video_note",
	TypeSecureRaw:          "secure_raw",
	TypeSecure:             "secure",
	TypeBackground:         "background",
	TypeDocumentAsFile:     "document_as_file",
}

// Valid reports whether t is a known file type.
func (t Type) Valid() bool {
	return t < typeCount
}

// IsPhotoLike reports whether file ids of this type carry a photo size
// source. Photo-like types occupy the low end of the enumeration.
func (t Type) IsPhotoLike() bool {
	return t <= TypePhoto
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("type(%d)", uint32(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &UnknownTypeError{Value: uint32(t)}
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType maps a type name as returned by Type.String back to the Type.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFileType, name)
}

func parseType(raw uint32) (Type, error) {
	t := Type(raw)
	if !t.Valid() {
		return 0, &UnknownTypeError{Value: raw}
	}
	return t, nil
}

// FileID is a decoded Bot API file identifier.
//
// Optional fields are nil when absent. A FileID is a plain value: decoding
// always allocates fresh pointers and slices, and nothing in this package
// mutates a FileID after it was built.
type FileID struct {
	DCID       int32
	Type       Type
	ID         *int64
	AccessHash int64

	// PhotoSizeSource is set for photo-like types only.
	PhotoSizeSource PhotoSizeSource

	// VolumeID and LocalID address legacy photo storage.
	VolumeID *int64
	LocalID  *int32

	FileReference []byte
	URL           *string

	Version    uint8
	SubVersion uint8
}

// HasWebLocation reports whether the file is a direct web location.
func (f FileID) HasWebLocation() bool {
	return f.URL != nil
}

// HasVolumeAddress reports whether both legacy address fields are set.
func (f FileID) HasVolumeAddress() bool {
	return f.VolumeID != nil && f.LocalID != nil
}

func (f FileID) rawType() uint32 {
	raw := uint32(f.Type)
	if f.FileReference != nil {
		raw |= FileReferenceFlag
	}
	if f.URL != nil {
		raw |= WebLocationFlag
	}
	return raw
}

func qptr[T any](o T) *T {
	return &o
}
