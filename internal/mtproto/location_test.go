package mtproto

import (
	"testing"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botfileid/pkg/fileid"
)

func ptr[T any](v T) *T {
	return &v
}

func TestLocation(t *testing.T) {
	ref := []byte{1, 2, 3}
	tests := []struct {
		name string
		file fileid.FileID
		want tg.InputFileLocationClass
	}{
		{
			name: "document",
			file: fileid.FileID{Type: fileid.TypeDocument, ID: ptr(int64(10)), AccessHash: 11, FileReference: ref},
			want: &tg.InputDocumentFileLocation{ID: 10, AccessHash: 11, FileReference: ref},
		},
		{
			name: "photo thumbnail",
			file: fileid.FileID{
				Type: fileid.TypePhoto, ID: ptr(int64(10)), AccessHash: 11, FileReference: ref,
				PhotoSizeSource: fileid.Thumbnail{FileType: fileid.TypePhoto, ThumbnailType: "x"},
			},
			want: &tg.InputPhotoFileLocation{ID: 10, AccessHash: 11, FileReference: ref, ThumbSize: "x"},
		},
		{
			name: "document thumbnail",
			file: fileid.FileID{
				Type: fileid.TypeThumbnail, ID: ptr(int64(10)), AccessHash: 11,
				PhotoSizeSource: fileid.Thumbnail{FileType: fileid.TypeVideo, ThumbnailType: "m"},
			},
			want: &tg.InputDocumentFileLocation{ID: 10, AccessHash: 11, ThumbSize: "m"},
		},
		{
			name: "legacy photo",
			file: fileid.FileID{
				Type: fileid.TypePhoto, ID: ptr(int64(10)), AccessHash: 11,
				PhotoSizeSource: fileid.Legacy{Secret: 5},
				VolumeID:        ptr(int64(6)),
				LocalID:         ptr(int32(7)),
			},
			want: &tg.InputPhotoLegacyFileLocation{ID: 10, AccessHash: 11, VolumeID: 6, LocalID: 7, Secret: 5},
		},
		{
			name: "legacy photo without address",
			file: fileid.FileID{
				Type: fileid.TypePhoto, ID: ptr(int64(10)), AccessHash: 11,
				PhotoSizeSource: fileid.Legacy{Secret: 5},
			},
			want: &tg.InputPhotoFileLocation{ID: 10, AccessHash: 11, ThumbSize: "y"},
		},
		{
			name: "user profile photo",
			file: fileid.FileID{
				Type: fileid.TypeProfilePhoto, ID: ptr(int64(10)), AccessHash: 11,
				PhotoSizeSource: fileid.DialogPhotoBig{DialogPhoto: fileid.DialogPhoto{DialogID: 42, DialogAccessHash: 43}},
			},
			want: &tg.InputPeerPhotoFileLocation{
				Big:     true,
				Peer:    &tg.InputPeerUser{UserID: 42, AccessHash: 43},
				PhotoID: 10,
			},
		},
		{
			name: "channel profile photo",
			file: fileid.FileID{
				Type: fileid.TypeProfilePhoto, ID: ptr(int64(10)), AccessHash: 11,
				PhotoSizeSource: fileid.DialogPhotoSmall{DialogPhoto: fileid.DialogPhoto{DialogID: -1001234567890, DialogAccessHash: 43}},
			},
			want: &tg.InputPeerPhotoFileLocation{
				Peer:    &tg.InputPeerChannel{ChannelID: 1234567890, AccessHash: 43},
				PhotoID: 10,
			},
		},
		{
			name: "sticker set thumbnail",
			file: fileid.FileID{
				Type: fileid.TypeThumbnail, ID: ptr(int64(10)), AccessHash: 11,
				PhotoSizeSource: fileid.StickerSetThumbnailVersion{StickerSetID: 1, StickerSetAccessHash: 2, Version: 3},
			},
			want: &tg.InputStickerSetThumb{
				Stickerset:   &tg.InputStickerSetID{ID: 1, AccessHash: 2},
				ThumbVersion: 3,
			},
		},
		{
			name: "encrypted",
			file: fileid.FileID{Type: fileid.TypeEncrypted, ID: ptr(int64(10)), AccessHash: 11},
			want: &tg.InputEncryptedFileLocation{ID: 10, AccessHash: 11},
		},
		{
			name: "secure",
			file: fileid.FileID{Type: fileid.TypeSecureRaw, ID: ptr(int64(10)), AccessHash: 11},
			want: &tg.InputSecureFileLocation{ID: 10, AccessHash: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Location(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocation_Unsupported(t *testing.T) {
	_, err := Location(fileid.FileID{Type: fileid.TypeDocument, URL: ptr("https://example.com/a.pdf")})
	require.ErrorIs(t, err, ErrUnsupportedLocation)

	_, err = Location(fileid.FileID{Type: fileid.TypeTemp, ID: ptr(int64(1))})
	require.ErrorIs(t, err, ErrUnsupportedLocation)

	_, err = Location(fileid.FileID{Type: fileid.TypeDocument})
	require.ErrorIs(t, err, ErrNoFileID)
}

func TestInputPeer(t *testing.T) {
	peer, err := InputPeer(-12345, 0)
	require.NoError(t, err)
	assert.Equal(t, &tg.InputPeerChat{ChatID: 12345}, peer)

	_, err = InputPeer(0, 0)
	require.Error(t, err)
}
