package cli

import (
	"encoding/hex"
	"fmt"

	"botfileid/pkg/fileid"
)

// record is the JSON form of a decoded file id.
type record struct {
	DCID            int32       `json:"dc_id"`
	Type            fileid.Type `json:"type"`
	ID              *int64      `json:"id,omitempty"`
	AccessHash      int64       `json:"access_hash"`
	PhotoSizeSource *source     `json:"photo_size_source,omitempty"`
	VolumeID        *int64      `json:"volume_id,omitempty"`
	LocalID         *int32      `json:"local_id,omitempty"`
	FileReference   *string     `json:"file_reference,omitempty"`
	URL             *string     `json:"url,omitempty"`
	Version         *uint8      `json:"version,omitempty"`
	SubVersion      *uint8      `json:"sub_version,omitempty"`
}

type source struct {
	Kind                 string       `json:"kind"`
	Secret               int64        `json:"secret,omitempty"`
	FileType             *fileid.Type `json:"file_type,omitempty"`
	ThumbnailType        string       `json:"thumbnail_type,omitempty"`
	DialogID             int64        `json:"dialog_id,omitempty"`
	DialogAccessHash     int64        `json:"dialog_access_hash,omitempty"`
	StickerSetID         int64        `json:"sticker_set_id,omitempty"`
	StickerSetAccessHash int64        `json:"sticker_set_access_hash,omitempty"`
	StickerSetVersion    int32        `json:"sticker_set_version,omitempty"`
}

func toRecord(f fileid.FileID) record {
	r := record{
		DCID:       f.DCID,
		Type:       f.Type,
		ID:         f.ID,
		AccessHash: f.AccessHash,
		VolumeID:   f.VolumeID,
		LocalID:    f.LocalID,
		URL:        f.URL,
		Version:    &f.Version,
		SubVersion: &f.SubVersion,
	}
	if f.FileReference != nil {
		ref := hex.EncodeToString(f.FileReference)
		r.FileReference = &ref
	}
	if f.PhotoSizeSource != nil {
		r.PhotoSizeSource = toSource(f.PhotoSizeSource)
	}
	return r
}

func toSource(s fileid.PhotoSizeSource) *source {
	kind, _ := s.SourceType(false)
	out := &source{Kind: kind.String()}
	switch s := s.(type) {
	case fileid.Legacy:
		out.Secret = s.Secret
	case fileid.Thumbnail:
		out.FileType = &s.FileType
		out.ThumbnailType = s.ThumbnailType
	case fileid.DialogPhotoSmall:
		out.DialogID, out.DialogAccessHash = s.DialogID, s.DialogAccessHash
	case fileid.DialogPhotoBig:
		out.DialogID, out.DialogAccessHash = s.DialogID, s.DialogAccessHash
	case fileid.StickerSetThumbnail:
		out.StickerSetID, out.StickerSetAccessHash = s.StickerSetID, s.StickerSetAccessHash
	case fileid.StickerSetThumbnailVersion:
		out.StickerSetID, out.StickerSetAccessHash = s.StickerSetID, s.StickerSetAccessHash
		out.StickerSetVersion = s.Version
	}
	return out
}

// fileID converts r back; absent versions default to the latest format.
func (r record) fileID() (fileid.FileID, error) {
	f := fileid.FileID{
		DCID:       r.DCID,
		Type:       r.Type,
		ID:         r.ID,
		AccessHash: r.AccessHash,
		VolumeID:   r.VolumeID,
		LocalID:    r.LocalID,
		URL:        r.URL,
		Version:    fileid.LatestVersion,
		SubVersion: fileid.LatestSubVersion,
	}
	if r.Version != nil {
		f.Version = *r.Version
		if f.Version != fileid.LatestVersion {
			f.SubVersion = 0
		}
	}
	if r.SubVersion != nil {
		f.SubVersion = *r.SubVersion
	}
	if r.FileReference != nil {
		ref, err := hex.DecodeString(*r.FileReference)
		if err != nil {
			return fileid.FileID{}, fmt.Errorf("file reference: %w", err)
		}
		f.FileReference = ref
	}
	if r.PhotoSizeSource != nil {
		s, err := r.PhotoSizeSource.photoSizeSource()
		if err != nil {
			return fileid.FileID{}, err
		}
		f.PhotoSizeSource = s
	}
	return f, nil
}

func (s *source) photoSizeSource() (fileid.PhotoSizeSource, error) {
	switch s.Kind {
	case fileid.SourceLegacy.String():
		return fileid.Legacy{Secret: s.Secret}, nil
	case fileid.SourceThumbnail.String():
		if s.FileType == nil {
			return nil, fmt.Errorf("%w: thumbnail file_type", fileid.ErrMissingRequiredField)
		}
		return fileid.Thumbnail{FileType: *s.FileType, ThumbnailType: s.ThumbnailType}, nil
	case fileid.SourceDialogPhotoSmall.String():
		return fileid.DialogPhotoSmall{DialogPhoto: fileid.DialogPhoto{DialogID: s.DialogID, DialogAccessHash: s.DialogAccessHash}}, nil
	case fileid.SourceDialogPhotoBig.String():
		return fileid.DialogPhotoBig{DialogPhoto: fileid.DialogPhoto{DialogID: s.DialogID, DialogAccessHash: s.DialogAccessHash}}, nil
	case fileid.SourceStickerSetThumbnail.String():
		return fileid.StickerSetThumbnail{StickerSetID: s.StickerSetID, StickerSetAccessHash: s.StickerSetAccessHash}, nil
	case fileid.SourceStickerSetThumbnailVersion.String():
		return fileid.StickerSetThumbnailVersion{
			StickerSetID:         s.StickerSetID,
			StickerSetAccessHash: s.StickerSetAccessHash,
			Version:              s.StickerSetVersion,
		}, nil
	default:
		return nil, fmt.Errorf("%w: kind %q", fileid.ErrUnknownPhotoSizeSource, s.Kind)
	}
}
