package fileid

import "botfileid/pkg/fileid/internal/wire"

func pack(raw []byte) string {
	return wire.EncodeBase64(wire.EncodeRLE(raw))
}

// rawBuilder writes file id bytes field by field.
type rawBuilder struct {
	w *wire.Writer
}

func newRaw() *rawBuilder {
	return &rawBuilder{w: wire.NewWriter()}
}

func (b *rawBuilder) u32(v uint32) *rawBuilder {
	b.w.PutUint32(v)
	return b
}

func (b *rawBuilder) i32(v int32) *rawBuilder {
	b.w.PutInt32(v)
	return b
}

func (b *rawBuilder) i64(v int64) *rawBuilder {
	b.w.PutInt64(v)
	return b
}

func (b *rawBuilder) str(s string) *rawBuilder {
	if err := b.w.PutString(s); err != nil {
		panic(err)
	}
	return b
}

func (b *rawBuilder) raw(v ...byte) *rawBuilder {
	for _, c := range v {
		b.w.PutByte(c)
	}
	return b
}

func (b *rawBuilder) bytes() []byte {
	return b.w.Raw()
}

// header writes type, dc, id and access hash of a non-web file.
func (b *rawBuilder) header(t Type, dc int32, id, accessHash int64) *rawBuilder {
	return b.u32(uint32(t)).i32(dc).i64(id).i64(accessHash)
}

func photoID(subVersion uint8, source PhotoSizeSource) FileID {
	return FileID{
		DCID:            4,
		Type:            TypePhoto,
		ID:              qptr(int64(5_000_000_001)),
		AccessHash:      -77,
		PhotoSizeSource: source,
		Version:         4,
		SubVersion:      subVersion,
	}
}
