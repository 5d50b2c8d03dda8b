package fileid

import (
	"fmt"

	"botfileid/pkg/fileid/internal/wire"
)

// Encode returns the Bot API form of f. Decoding the result yields a FileID
// equal to f.
func Encode(f FileID) (string, error) {
	raw, err := f.MarshalBinary()
	if err != nil {
		return "", err
	}
	return wire.EncodeBase64(wire.EncodeRLE(raw)), nil
}

// MarshalBinary returns the uncompressed byte layout of f, version trailer
// included.
func (f FileID) MarshalBinary() ([]byte, error) {
	if !f.Type.Valid() {
		return nil, &UnknownTypeError{Value: uint32(f.Type)}
	}
	// Only version 4 carries a subversion byte that decode reads back.
	if f.Version != 4 && f.SubVersion != 0 {
		return nil, invalid("subversion %d with version %d", f.SubVersion, f.Version)
	}

	w := wire.NewWriter()
	w.PutUint32(f.rawType())
	w.PutInt32(f.DCID)

	if f.FileReference != nil {
		if err := w.PutBytes(f.FileReference); err != nil {
			return nil, fmt.Errorf("file reference: %w", err)
		}
	}

	if f.URL != nil {
		if f.PhotoSizeSource != nil {
			return nil, invalid("web location with a photo size source")
		}
		if f.ID != nil {
			return nil, invalid("web location with an id")
		}
		if err := w.PutString(*f.URL); err != nil {
			return nil, fmt.Errorf("url: %w", err)
		}
		w.PutInt64(f.AccessHash)
	} else {
		if f.ID == nil {
			return nil, missing("id")
		}
		w.PutInt64(*f.ID)
		w.PutInt64(f.AccessHash)
		if err := f.encodePhoto(w); err != nil {
			return nil, err
		}
	}

	if f.Version >= 4 {
		w.PutByte(f.SubVersion)
	}
	w.PutByte(f.Version)
	return w.Raw(), nil
}

func (f FileID) encodePhoto(w *wire.Writer) error {
	if !f.Type.IsPhotoLike() {
		if f.PhotoSizeSource != nil {
			return invalid("%s file with a photo size source", f.Type)
		}
		if f.VolumeID != nil || f.LocalID != nil {
			return invalid("%s file with a volume address", f.Type)
		}
		return nil
	}
	if f.PhotoSizeSource == nil {
		return missing("photo size source")
	}

	address, err := f.volumeAddress()
	if err != nil {
		return err
	}

	if f.SubVersion < 32 {
		if address == nil {
			return missing("volume id")
		}
		address.encode(w)
		address = nil
	}

	if f.SubVersion < 4 {
		legacy, ok := f.PhotoSizeSource.(Legacy)
		if !ok {
			return invalid("%T requires subversion 4 or later", f.PhotoSizeSource)
		}
		return legacy.encode(w)
	}
	return writeSource(w, f.PhotoSizeSource, address)
}

func (f FileID) volumeAddress() (*volumeAddress, error) {
	switch {
	case f.VolumeID == nil && f.LocalID == nil:
		return nil, nil
	case f.VolumeID == nil:
		return nil, missing("volume id")
	case f.LocalID == nil:
		return nil, missing("local id")
	}
	return &volumeAddress{VolumeID: *f.VolumeID, LocalID: *f.LocalID}, nil
}
