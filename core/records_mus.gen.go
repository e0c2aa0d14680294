// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ = ord.NewSliceSer[string](ord.String)
	slicewEbKXObsXGbfAEFc23yAKgΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var MediaRecordMUS = mediaRecordMUS{}

type mediaRecordMUS struct{}

func (s mediaRecordMUS) Marshal(v MediaRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.SourceKey, bs[n:])
	n += ord.String.Marshal(v.BlobId, bs[n:])
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += ord.String.Marshal(v.Language, bs[n:])
	n += ord.String.Marshal(v.LanguageIso, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += ord.Bool.Marshal(v.Explicit, bs[n:])
	n += slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Marshal(v.Keywords, bs[n:])
	n += slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Marshal(v.Moods, bs[n:])
	n += slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Marshal(v.Themes, bs[n:])
	n += ord.ByteSlice.Marshal(v.Flags, bs[n:])
	n += slicewEbKXObsXGbfAEFc23yAKgΞΞ.Marshal(v.Embedding, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
}

func (s mediaRecordMUS) Unmarshal(bs []byte) (v MediaRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SourceKey, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BlobId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Language, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LanguageIso, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Explicit, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Moods, n1, err = slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Themes, n1, err = slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Flags, n1, err = ord.ByteSlice.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embedding, n1, err = slicewEbKXObsXGbfAEFc23yAKgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s mediaRecordMUS) Size(v MediaRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.SourceKey)
	size += ord.String.Size(v.BlobId)
	size += ord.String.Size(v.Filename)
	size += ord.String.Size(v.Language)
	size += ord.String.Size(v.LanguageIso)
	size += ord.String.Size(v.Summary)
	size += ord.Bool.Size(v.Explicit)
	size += slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Size(v.Keywords)
	size += slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Size(v.Moods)
	size += slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Size(v.Themes)
	size += ord.ByteSlice.Size(v.Flags)
	size += slicewEbKXObsXGbfAEFc23yAKgΞΞ.Size(v.Embedding)
	return size + raw.TimeUnixMicro.Size(v.CreatedAt)
}

func (s mediaRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0vu0ΔhjC1S62OPv5hN2vxwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.ByteSlice.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicewEbKXObsXGbfAEFc23yAKgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
