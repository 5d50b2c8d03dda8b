package mtproto

import (
	"errors"
	"fmt"

	"github.com/gotd/td/tg"

	"botfileid/pkg/fileid"
)

var (
	ErrUnsupportedLocation = errors.New("file has no mtproto download location")
	ErrNoFileID            = errors.New("file has no file id")
)

// Bot API dialog ids of channels are shifted below this value.
const zeroChannelID = -1000000000000

// defaultThumbSize selects the largest regular photo size.
const defaultThumbSize = "y"

// Location returns the input location that upload.getFile expects for f.
func Location(f fileid.FileID) (tg.InputFileLocationClass, error) {
	if f.HasWebLocation() {
		return nil, fmt.Errorf("%w: web file %q", ErrUnsupportedLocation, *f.URL)
	}
	if f.ID == nil {
		return nil, ErrNoFileID
	}
	id := *f.ID

	switch f.Type {
	case fileid.TypeThumbnail, fileid.TypeProfilePhoto, fileid.TypePhoto:
		return photoLocation(f, id)
	case fileid.TypeEncrypted:
		return &tg.InputEncryptedFileLocation{ID: id, AccessHash: f.AccessHash}, nil
	case fileid.TypeSecure, fileid.TypeSecureRaw:
		return &tg.InputSecureFileLocation{ID: id, AccessHash: f.AccessHash}, nil
	case fileid.TypeTemp, fileid.TypeEncryptedThumbnail:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocation, f.Type)
	default:
		return &tg.InputDocumentFileLocation{
			ID:            id,
			AccessHash:    f.AccessHash,
			FileReference: f.FileReference,
		}, nil
	}
}

func photoLocation(f fileid.FileID, id int64) (tg.InputFileLocationClass, error) {
	switch source := f.PhotoSizeSource.(type) {
	case fileid.Legacy:
		if f.HasVolumeAddress() {
			return &tg.InputPhotoLegacyFileLocation{
				ID:            id,
				AccessHash:    f.AccessHash,
				FileReference: f.FileReference,
				VolumeID:      *f.VolumeID,
				LocalID:       int(*f.LocalID),
				Secret:        source.Secret,
			}, nil
		}
		return &tg.InputPhotoFileLocation{
			ID:            id,
			AccessHash:    f.AccessHash,
			FileReference: f.FileReference,
			ThumbSize:     defaultThumbSize,
		}, nil
	case fileid.Thumbnail:
		if source.FileType.IsPhotoLike() {
			return &tg.InputPhotoFileLocation{
				ID:            id,
				AccessHash:    f.AccessHash,
				FileReference: f.FileReference,
				ThumbSize:     source.ThumbnailType,
			}, nil
		}
		return &tg.InputDocumentFileLocation{
			ID:            id,
			AccessHash:    f.AccessHash,
			FileReference: f.FileReference,
			ThumbSize:     source.ThumbnailType,
		}, nil
	case fileid.DialogPhotoSmall:
		return dialogPhotoLocation(source.DialogPhoto, id, false)
	case fileid.DialogPhotoBig:
		return dialogPhotoLocation(source.DialogPhoto, id, true)
	case fileid.StickerSetThumbnail:
		return &tg.InputStickerSetThumb{
			Stickerset: &tg.InputStickerSetID{ID: source.StickerSetID, AccessHash: source.StickerSetAccessHash},
		}, nil
	case fileid.StickerSetThumbnailVersion:
		return &tg.InputStickerSetThumb{
			Stickerset:   &tg.InputStickerSetID{ID: source.StickerSetID, AccessHash: source.StickerSetAccessHash},
			ThumbVersion: int(source.Version),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s without photo size source", ErrUnsupportedLocation, f.Type)
	}
}

func dialogPhotoLocation(dialog fileid.DialogPhoto, photoID int64, big bool) (tg.InputFileLocationClass, error) {
	peer, err := InputPeer(dialog.DialogID, dialog.DialogAccessHash)
	if err != nil {
		return nil, err
	}
	return &tg.InputPeerPhotoFileLocation{
		Big:     big,
		Peer:    peer,
		PhotoID: photoID,
	}, nil
}

// InputPeer converts a Bot API dialog id into an MTProto peer.
func InputPeer(dialogID, accessHash int64) (tg.InputPeerClass, error) {
	switch {
	case dialogID > 0:
		return &tg.InputPeerUser{UserID: dialogID, AccessHash: accessHash}, nil
	case dialogID < zeroChannelID:
		return &tg.InputPeerChannel{ChannelID: zeroChannelID - dialogID, AccessHash: accessHash}, nil
	case dialogID < 0:
		return &tg.InputPeerChat{ChatID: -dialogID}, nil
	default:
		return nil, fmt.Errorf("invalid dialog id %d", dialogID)
	}
}
