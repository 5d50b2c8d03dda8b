package fileid

import (
	"fmt"
	"log/slog"

	"botfileid/pkg/fileid/internal/wire"
)

// TrailingData describes bytes left between the last decoded field and the
// version trailer. It is reported, never returned as an error.
type TrailingData struct {
	FileID   string
	Leftover int
}

func (t TrailingData) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file_id", t.FileID),
		slog.Int("leftover", t.Leftover),
	)
}

// Decoder decodes file ids and reports unconsumed trailing data to its
// logger. The zero value logs to slog.Default. A Decoder is safe for
// concurrent use.
type Decoder struct {
	logger *slog.Logger
}

func NewDecoder(logger *slog.Logger) *Decoder {
	return &Decoder{logger: logger}
}

var defaultDecoder Decoder

// Decode decodes fileID with the default decoder.
func Decode(fileID string) (FileID, error) {
	return defaultDecoder.Decode(fileID)
}

func (d *Decoder) log() *slog.Logger {
	if d.logger == nil {
		return slog.Default()
	}
	return d.logger
}

func (d *Decoder) Decode(fileID string) (FileID, error) {
	rle, err := wire.DecodeBase64(fileID)
	if err != nil {
		return FileID{}, fmt.Errorf("decoding base64: %w", err)
	}
	data, err := wire.DecodeRLE(rle)
	if err != nil {
		return FileID{}, fmt.Errorf("decompressing: %w", err)
	}
	if len(data) == 0 {
		return FileID{}, fmt.Errorf("%w: empty file id", ErrTruncatedInput)
	}

	version := data[len(data)-1]
	trailer := 1
	if version >= 4 {
		trailer = 2
	}
	if len(data) < trailer {
		return FileID{}, fmt.Errorf("%w: missing subversion", ErrTruncatedInput)
	}
	var subVersion uint8
	if version == 4 {
		subVersion = data[len(data)-2]
	}

	r := wire.NewReader(data[:len(data)-trailer])
	result, replaced, err := decodeBody(r, version, subVersion)
	if err != nil {
		return FileID{}, err
	}
	if replaced != nil {
		d.log().Warn("file id re-encodes in plain form",
			"file_id", fileID,
			slog.Group("replaced", "volume_id", replaced.VolumeID, "local_id", replaced.LocalID),
		)
	}

	if leftover := r.Len(); leftover > 0 {
		d.log().Warn("file id has leftover data", "trailing", TrailingData{FileID: fileID, Leftover: leftover})
	}
	return result, nil
}

// decodeBody returns the positional address of a pre-32 photo id when an
// extended photo size source replaced it.
func decodeBody(r *wire.Reader, version, subVersion uint8) (FileID, *volumeAddress, error) {
	rawType, err := r.Uint32()
	if err != nil {
		return FileID{}, nil, fmt.Errorf("type: %w", err)
	}
	dcID, err := r.Int32()
	if err != nil {
		return FileID{}, nil, fmt.Errorf("dc id: %w", err)
	}

	hasReference := rawType&FileReferenceFlag != 0
	hasWebLocation := rawType&WebLocationFlag != 0
	fileType, err := parseType(rawType &^ (FileReferenceFlag | WebLocationFlag))
	if err != nil {
		return FileID{}, nil, err
	}

	result := FileID{
		DCID:       dcID,
		Type:       fileType,
		Version:    version,
		SubVersion: subVersion,
	}

	if hasReference {
		if result.FileReference, err = r.Bytes(); err != nil {
			return FileID{}, nil, fmt.Errorf("file reference: %w", err)
		}
	}

	if hasWebLocation {
		url, err := r.String()
		if err != nil {
			return FileID{}, nil, fmt.Errorf("url: %w", err)
		}
		result.URL = qptr(url)
		if result.AccessHash, err = r.Int64(); err != nil {
			return FileID{}, nil, fmt.Errorf("access hash: %w", err)
		}
		return result, nil, nil
	}

	id, err := r.Int64()
	if err != nil {
		return FileID{}, nil, fmt.Errorf("id: %w", err)
	}
	result.ID = qptr(id)
	if result.AccessHash, err = r.Int64(); err != nil {
		return FileID{}, nil, fmt.Errorf("access hash: %w", err)
	}

	var replaced *volumeAddress
	if fileType.IsPhotoLike() {
		if replaced, err = decodePhoto(r, &result); err != nil {
			return FileID{}, nil, err
		}
	}
	return result, replaced, nil
}

func decodePhoto(r *wire.Reader, result *FileID) (*volumeAddress, error) {
	var address *volumeAddress
	if result.SubVersion < 32 {
		var err error
		if address, err = readVolumeAddress(r); err != nil {
			return nil, err
		}
	}

	var discriminator uint32
	if result.SubVersion >= 4 {
		var err error
		if discriminator, err = r.Uint32(); err != nil {
			return nil, fmt.Errorf("photo size source: %w", err)
		}
	}

	source, extended, err := readSource(r, SourceType(discriminator))
	if err != nil {
		return nil, err
	}
	var replaced *volumeAddress
	if extended != nil {
		replaced, address = address, extended
	}

	result.PhotoSizeSource = source
	if address != nil {
		result.VolumeID = qptr(address.VolumeID)
		result.LocalID = qptr(address.LocalID)
	}
	return replaced, nil
}
