package fileid

import (
	"encoding/binary"
	"fmt"

	"botfileid/pkg/fileid/internal/wire"
)

// SourceType is the wire discriminator of a photo size source.
type SourceType uint32

const (
	SourceLegacy SourceType = iota
	SourceThumbnail
	SourceDialogPhotoSmall
	SourceDialogPhotoBig
	SourceStickerSetThumbnail
	SourceFullLegacy
	SourceDialogPhotoSmallLegacy
	SourceDialogPhotoBigLegacy
	SourceStickerSetThumbnailLegacy
	SourceStickerSetThumbnailVersion
)

var sourceNames = [...]string{
	SourceLegacy:                     "legacy",
	SourceThumbnail:                  "thumbnail",
	SourceDialogPhotoSmall:           "dialog_photo_small",
	SourceDialogPhotoBig:             "dialog_photo_big",
	SourceStickerSetThumbnail:        "sticker_set_thumbnail",
	SourceFullLegacy:                 "full_legacy",
	SourceDialogPhotoSmallLegacy:     "dialog_photo_small_legacy",
	SourceDialogPhotoBigLegacy:       "dialog_photo_big_legacy",
	SourceStickerSetThumbnailLegacy:  "sticker_set_thumbnail_legacy",
	SourceStickerSetThumbnailVersion: "sticker_set_thumbnail_version",
}

func (t SourceType) String() string {
	if int(t) >= len(sourceNames) {
		return fmt.Sprintf("source(%d)", uint32(t))
	}
	return sourceNames[t]
}

// Extended reports whether the discriminator is a legacy-extended form,
// which carries the volume/local address of the owning file id.
func (t SourceType) Extended() bool {
	switch t {
	case SourceFullLegacy, SourceDialogPhotoSmallLegacy, SourceDialogPhotoBigLegacy, SourceStickerSetThumbnailLegacy:
		return true
	default:
		return false
	}
}

// PhotoSizeSource describes where a photo-like file comes from. The set of
// implementations is closed: Legacy, Thumbnail, DialogPhotoSmall,
// DialogPhotoBig, StickerSetThumbnail and StickerSetThumbnailVersion.
type PhotoSizeSource interface {
	// SourceType returns the discriminator written for this source; the
	// extended form is used when the file id carries a volume address.
	SourceType(extended bool) (SourceType, bool)

	encode(w *wire.Writer) error
}

type Legacy struct {
	Secret int64
}

func (Legacy) SourceType(extended bool) (SourceType, bool) {
	if extended {
		return SourceFullLegacy, true
	}
	return SourceLegacy, true
}

func (s Legacy) encode(w *wire.Writer) error {
	w.PutInt64(s.Secret)
	return nil
}

// Thumbnail is a thumbnail of a file of FileType. ThumbnailType is the
// size tag, up to four bytes long ("s", "m", "x", ...).
type Thumbnail struct {
	FileType      Type
	ThumbnailType string
}

func (Thumbnail) SourceType(extended bool) (SourceType, bool) {
	return SourceThumbnail, !extended
}

func (s Thumbnail) encode(w *wire.Writer) error {
	if len(s.ThumbnailType) > 4 {
		return invalid("thumbnail type %q is longer than 4 bytes", s.ThumbnailType)
	}
	var tag [4]byte
	copy(tag[:], s.ThumbnailType)
	w.PutUint32(uint32(s.FileType))
	w.PutUint32(binary.LittleEndian.Uint32(tag[:]))
	return nil
}

func decodeThumbnailType(v uint32) string {
	var tag [4]byte
	binary.LittleEndian.PutUint32(tag[:], v)
	n := len(tag)
	for n > 0 && tag[n-1] == 0 {
		n--
	}
	return string(tag[:n])
}

// DialogPhoto is the shared payload of small and big chat photos.
type DialogPhoto struct {
	DialogID         int64
	DialogAccessHash int64
}

func (s DialogPhoto) encode(w *wire.Writer) error {
	w.PutInt64(s.DialogID)
	w.PutInt64(s.DialogAccessHash)
	return nil
}

type DialogPhotoSmall struct {
	DialogPhoto
}

func (DialogPhotoSmall) SourceType(extended bool) (SourceType, bool) {
	if extended {
		return SourceDialogPhotoSmallLegacy, true
	}
	return SourceDialogPhotoSmall, true
}

type DialogPhotoBig struct {
	DialogPhoto
}

func (DialogPhotoBig) SourceType(extended bool) (SourceType, bool) {
	if extended {
		return SourceDialogPhotoBigLegacy, true
	}
	return SourceDialogPhotoBig, true
}

type StickerSetThumbnail struct {
	StickerSetID         int64
	StickerSetAccessHash int64
}

func (StickerSetThumbnail) SourceType(extended bool) (SourceType, bool) {
	if extended {
		return SourceStickerSetThumbnailLegacy, true
	}
	return SourceStickerSetThumbnail, true
}

func (s StickerSetThumbnail) encode(w *wire.Writer) error {
	w.PutInt64(s.StickerSetID)
	w.PutInt64(s.StickerSetAccessHash)
	return nil
}

type StickerSetThumbnailVersion struct {
	StickerSetID         int64
	StickerSetAccessHash int64
	Version              int32
}

func (StickerSetThumbnailVersion) SourceType(extended bool) (SourceType, bool) {
	return SourceStickerSetThumbnailVersion, !extended
}

func (s StickerSetThumbnailVersion) encode(w *wire.Writer) error {
	w.PutInt64(s.StickerSetID)
	w.PutInt64(s.StickerSetAccessHash)
	w.PutInt32(s.Version)
	return nil
}

// volumeAddress is the legacy volume/local storage address.
type volumeAddress struct {
	VolumeID int64
	LocalID  int32
}

func readVolumeAddress(r *wire.Reader) (*volumeAddress, error) {
	volumeID, err := r.Int64()
	if err != nil {
		return nil, fmt.Errorf("volume id: %w", err)
	}
	localID, err := r.Int32()
	if err != nil {
		return nil, fmt.Errorf("local id: %w", err)
	}
	return &volumeAddress{VolumeID: volumeID, LocalID: localID}, nil
}

func (a *volumeAddress) encode(w *wire.Writer) {
	w.PutInt64(a.VolumeID)
	w.PutInt32(a.LocalID)
}

// writeSource writes the discriminator and payload of source. A non-nil
// address selects the extended discriminator and is appended after the
// payload; the full legacy form wraps the secret between the two halves.
func writeSource(w *wire.Writer, source PhotoSizeSource, address *volumeAddress) error {
	t, ok := source.SourceType(address != nil)
	if !ok {
		return invalid("%T has no volume-addressed form", source)
	}
	w.PutUint32(uint32(t))

	if address != nil && t == SourceFullLegacy {
		w.PutInt64(address.VolumeID)
		if err := source.encode(w); err != nil {
			return err
		}
		w.PutInt32(address.LocalID)
		return nil
	}

	if err := source.encode(w); err != nil {
		return err
	}
	if address != nil {
		address.encode(w)
	}
	return nil
}

// readSource reads the payload selected by t. The returned address is set
// only for extended discriminators.
func readSource(r *wire.Reader, t SourceType) (PhotoSizeSource, *volumeAddress, error) {
	switch t {
	case SourceLegacy:
		secret, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("secret: %w", err)
		}
		return Legacy{Secret: secret}, nil, nil

	case SourceFullLegacy:
		volumeID, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("volume id: %w", err)
		}
		secret, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("secret: %w", err)
		}
		localID, err := r.Int32()
		if err != nil {
			return nil, nil, fmt.Errorf("local id: %w", err)
		}
		return Legacy{Secret: secret}, &volumeAddress{VolumeID: volumeID, LocalID: localID}, nil

	case SourceThumbnail:
		rawType, err := r.Uint32()
		if err != nil {
			return nil, nil, fmt.Errorf("thumbnail file type: %w", err)
		}
		fileType, err := parseType(rawType)
		if err != nil {
			return nil, nil, fmt.Errorf("thumbnail file type: %w", err)
		}
		tag, err := r.Uint32()
		if err != nil {
			return nil, nil, fmt.Errorf("thumbnail type: %w", err)
		}
		return Thumbnail{FileType: fileType, ThumbnailType: decodeThumbnailType(tag)}, nil, nil

	case SourceDialogPhotoSmall, SourceDialogPhotoBig, SourceDialogPhotoSmallLegacy, SourceDialogPhotoBigLegacy:
		dialogID, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("dialog id: %w", err)
		}
		dialogAccessHash, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("dialog access hash: %w", err)
		}
		base := DialogPhoto{DialogID: dialogID, DialogAccessHash: dialogAccessHash}

		var source PhotoSizeSource = DialogPhotoBig{DialogPhoto: base}
		if t == SourceDialogPhotoSmall || t == SourceDialogPhotoSmallLegacy {
			source = DialogPhotoSmall{DialogPhoto: base}
		}
		if !t.Extended() {
			return source, nil, nil
		}
		address, err := readVolumeAddress(r)
		if err != nil {
			return nil, nil, err
		}
		return source, address, nil

	case SourceStickerSetThumbnail, SourceStickerSetThumbnailLegacy:
		id, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("sticker set id: %w", err)
		}
		accessHash, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("sticker set access hash: %w", err)
		}
		source := StickerSetThumbnail{StickerSetID: id, StickerSetAccessHash: accessHash}
		if t == SourceStickerSetThumbnail {
			return source, nil, nil
		}
		address, err := readVolumeAddress(r)
		if err != nil {
			return nil, nil, err
		}
		return source, address, nil

	case SourceStickerSetThumbnailVersion:
		id, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("sticker set id: %w", err)
		}
		accessHash, err := r.Int64()
		if err != nil {
			return nil, nil, fmt.Errorf("sticker set access hash: %w", err)
		}
		version, err := r.Int32()
		if err != nil {
			return nil, nil, fmt.Errorf("sticker set version: %w", err)
		}
		return StickerSetThumbnailVersion{StickerSetID: id, StickerSetAccessHash: accessHash, Version: version}, nil, nil

	default:
		return nil, nil, &UnknownSourceError{Value: uint32(t)}
	}
}
