// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package embed

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// TermRecord is the persisted form of one vocabulary entry.
type TermRecord struct {
	Term   string
	Vector []float32
}

// ModelMeta is the persisted summary of a model: the vector dimension and
// the number of term records that follow it.
type ModelMeta struct {
	Dim   int
	Terms int
}

var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

// TermRecordMUS is the MUS serializer for TermRecord.
var TermRecordMUS = termRecordMUS{}

type termRecordMUS struct{}

func (s termRecordMUS) Marshal(v TermRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Term, bs)
	return n + vectorMUS.Marshal(v.Vector, bs[n:])
}

func (s termRecordMUS) Unmarshal(bs []byte) (v TermRecord, n int, err error) {
	v.Term, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s termRecordMUS) Size(v TermRecord) (size int) {
	size = ord.String.Size(v.Term)
	return size + vectorMUS.Size(v.Vector)
}

func (s termRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}

// ModelMetaMUS is the MUS serializer for ModelMeta.
var ModelMetaMUS = modelMetaMUS{}

type modelMetaMUS struct{}

func (s modelMetaMUS) Marshal(v ModelMeta, bs []byte) (n int) {
	n = varint.Int.Marshal(v.Dim, bs)
	return n + varint.Int.Marshal(v.Terms, bs[n:])
}

func (s modelMetaMUS) Unmarshal(bs []byte) (v ModelMeta, n int, err error) {
	v.Dim, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Terms, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s modelMetaMUS) Size(v ModelMeta) (size int) {
	size = varint.Int.Size(v.Dim)
	return size + varint.Int.Size(v.Terms)
}

func (s modelMetaMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

// MarshalTermRecord serializes a TermRecord to bytes.
func MarshalTermRecord(record TermRecord) []byte {
	buf := make([]byte, TermRecordMUS.Size(record))
	TermRecordMUS.Marshal(record, buf)
	return buf
}

// UnmarshalTermRecord deserializes a TermRecord from bytes.
func UnmarshalTermRecord(data []byte) (TermRecord, error) {
	record, _, err := TermRecordMUS.Unmarshal(data)
	return record, err
}

// MarshalModelMeta serializes a ModelMeta to bytes.
func MarshalModelMeta(meta ModelMeta) []byte {
	buf := make([]byte, ModelMetaMUS.Size(meta))
	ModelMetaMUS.Marshal(meta, buf)
	return buf
}

// UnmarshalModelMeta deserializes a ModelMeta from bytes.
func UnmarshalModelMeta(data []byte) (ModelMeta, error) {
	meta, _, err := ModelMetaMUS.Unmarshal(data)
	return meta, err
}
