// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package writeconcern defines write concerns for MongoDB operations.
//
// For more information about MongoDB write concerns, see
// https://www.mongodb.com/docs/manual/reference/write-concern/
package writeconcern

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// ErrInconsistent indicates that an inconsistent write concern was specified.
var ErrInconsistent = errors.New("a write concern cannot have both w=0 and j=true")

// ErrNegativeW indicates that a negative integer `w` field was specified.
var ErrNegativeW = errors.New("write concern `w` field cannot be a negative number")

// ErrNegativeWTimeout indicates that a negative WTimeout was specified.
var ErrNegativeWTimeout = errors.New("write concern `wtimeout` field cannot be negative")

// ErrEmptyWriteConcern indicates that a nil write concern was marshaled.
var ErrEmptyWriteConcern = errors.New("empty write concern")

// WriteConcern describes the level of acknowledgement requested from MongoDB for write operations
// to a standalone mongod or to replica sets or to sharded clusters.
//
// A nil *WriteConcern means "no concern specified": operations inherit the
// concern of the object issuing them. A non-nil concern with no fields set is
// an explicit request for the server default.
type WriteConcern struct {
	w        interface{}
	j        *bool
	wTimeout time.Duration
}

// Option is an option to provide when creating a WriteConcern.
type Option func(concern *WriteConcern)

// New constructs a new WriteConcern.
func New(options ...Option) *WriteConcern {
	concern := &WriteConcern{}

	for _, option := range options {
		option(concern)
	}

	return concern
}

// W requests acknowledgement that write operations propagate to the specified number of mongod
// instances.
func W(w int) Option {
	return func(concern *WriteConcern) {
		concern.w = w
	}
}

// WMajority requests acknowledgement that write operations propagate to the majority of mongod
// instances.
func WMajority() Option {
	return func(concern *WriteConcern) {
		concern.w = "majority"
	}
}

// WTagSet requests acknowledgement that write operations propagate to instances with the
// specified tag.
func WTagSet(tag string) Option {
	return func(concern *WriteConcern) {
		concern.w = tag
	}
}

// J requests acknowledgement from MongoDB that write operations are written to
// the journal.
func J(j bool) Option {
	return func(concern *WriteConcern) {
		concern.j = &j
	}
}

// WTimeout specifies a time limit for the write concern.
func WTimeout(d time.Duration) Option {
	return func(concern *WriteConcern) {
		concern.wTimeout = d
	}
}

// FromDocument constructs a WriteConcern from a document. The "w" element may
// be an integer or a string naming a tag set. The journal flag is read from
// "j" or "journal" and the timeout from "wtimeout" or "wtimeoutMS", first
// present wins in each pair. The resulting concern is validated before it is
// returned.
func FromDocument(doc bsoncore.Document) (*WriteConcern, error) {
	var opts []Option

	val, err := doc.LookupErr("w")
	switch {
	case errors.Is(err, bsoncore.ErrElementNotFound):
	case err != nil:
		return nil, err
	default:
		switch val.Type {
		case bsontype.Int32, bsontype.Int64, bsontype.Double:
			i64, ok := val.AsInt64OK()
			if !ok {
				return nil, fmt.Errorf("write concern `w` field must be an integer, but is %s", val)
			}
			if i64 < 0 {
				return nil, ErrNegativeW
			}
			if int64(int(i64)) != i64 {
				return nil, fmt.Errorf("write concern `w` field overflows int: %d", i64)
			}
			opts = append(opts, W(int(i64)))
		case bsontype.String:
			opts = append(opts, WTagSet(val.StringValue()))
		default:
			return nil, fmt.Errorf("write concern `w` field must be an integer or a string, but is a BSON %s", val.Type)
		}
	}

	if val, ok := lookupFirst(doc, "j", "journal"); ok {
		j, ok := val.BooleanOK()
		if !ok {
			return nil, fmt.Errorf("write concern journal field must be a boolean, but is a BSON %s", val.Type)
		}
		opts = append(opts, J(j))
	}

	if val, ok := lookupFirst(doc, "wtimeout", "wtimeoutMS"); ok {
		ms, ok := val.AsInt64OK()
		if !ok {
			return nil, fmt.Errorf("write concern timeout field must be an integer, but is a BSON %s", val.Type)
		}
		if ms < 0 {
			return nil, ErrNegativeWTimeout
		}
		opts = append(opts, WTimeout(time.Duration(ms) * time.Millisecond))
	}

	concern := New(opts...)
	if !concern.IsValid() {
		return nil, ErrInconsistent
	}

	return concern, nil
}

// lookupFirst returns the value for the first of the given keys present in
// the document. The key order is fixed by the caller; a later spelling is
// ignored once an earlier one is found.
func lookupFirst(doc bsoncore.Document, keys ...string) (bsoncore.Value, bool) {
	for _, key := range keys {
		val, err := doc.LookupErr(key)
		if err == nil {
			return val, true
		}
	}
	return bsoncore.Value{}, false
}

// GetW returns the write concern w level, either an int or a string naming a
// tag set, or nil if no w has been requested.
func (wc *WriteConcern) GetW() interface{} {
	if wc == nil {
		return nil
	}
	return wc.w
}

// GetWNumber returns the number of instances that must acknowledge writes,
// and whether w was set to a number at all.
func (wc *WriteConcern) GetWNumber() (int, bool) {
	if wc == nil {
		return 0, false
	}
	w, ok := wc.w.(int)
	return w, ok
}

// GetWTag returns the tag set writes must propagate to, and whether w was set
// to a tag at all.
func (wc *WriteConcern) GetWTag() (string, bool) {
	if wc == nil {
		return "", false
	}
	tag, ok := wc.w.(string)
	return tag, ok
}

// GetJ returns the journal flag, or nil if the flag was never set.
func (wc *WriteConcern) GetJ() *bool {
	if wc == nil {
		return nil
	}
	return wc.j
}

// GetWTimeout returns the write concern timeout.
func (wc *WriteConcern) GetWTimeout() time.Duration {
	if wc == nil {
		return 0
	}
	return wc.wTimeout
}

// IsDefault reports whether the write concern requests the default
// acknowledgement behavior, with no field explicitly set.
func (wc *WriteConcern) IsDefault() bool {
	return wc == nil || (wc.w == nil && wc.j == nil && wc.wTimeout == 0)
}

// Acknowledged indicates whether or not a write with the given write concern will be acknowledged.
func (wc *WriteConcern) Acknowledged() bool {
	if wc == nil || (wc.j != nil && *wc.j) {
		return true
	}

	switch v := wc.w.(type) {
	case int:
		if v == 0 {
			return false
		}
	}

	return true
}

// IsValid checks whether the write concern is invalid. Requesting a journal
// commit while asking zero nodes to acknowledge the write is contradictory.
func (wc *WriteConcern) IsValid() bool {
	if wc == nil || wc.j == nil || !*wc.j {
		return true
	}

	switch v := wc.w.(type) {
	case int:
		if v == 0 {
			return false
		}
	}

	return true
}

// Equal reports whether two write concerns serialize to the same document.
// Concerns built through different constructors compare equal as long as
// their wire representations match.
func (wc *WriteConcern) Equal(other *WriteConcern) bool {
	return bytes.Equal(wc.marshal(), other.marshal())
}

func (wc *WriteConcern) marshal() []byte {
	if wc == nil {
		return bsoncore.BuildDocument(nil, nil)
	}

	var elems []byte

	if wc.w != nil {
		switch t := wc.w.(type) {
		case int:
			elems = bsoncore.AppendInt32Element(elems, "w", int32(t))
		case string:
			elems = bsoncore.AppendStringElement(elems, "w", t)
		}
	}

	if wc.j != nil {
		elems = bsoncore.AppendBooleanElement(elems, "j", *wc.j)
	}

	if wc.wTimeout != 0 {
		elems = bsoncore.AppendInt64Element(elems, "wtimeout", int64(wc.wTimeout/time.Millisecond))
	}

	return bsoncore.BuildDocument(nil, elems)
}

// MarshalBSONValue implements the bson.ValueMarshaler interface. A concern
// with no fields set marshals to an empty document. The journal flag is
// emitted whenever it was set, including j=false.
func (wc *WriteConcern) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if wc == nil {
		return 0, nil, ErrEmptyWriteConcern
	}

	if !wc.IsValid() {
		return 0, nil, ErrInconsistent
	}

	if w, ok := wc.w.(int); ok && w < 0 {
		return 0, nil, ErrNegativeW
	}

	if wc.wTimeout < 0 {
		return 0, nil, ErrNegativeWTimeout
	}

	return bsontype.EmbeddedDocument, wc.marshal(), nil
}

// AckWrite returns true if a write concern represents an acknowledged write
func AckWrite(wc *WriteConcern) bool {
	return wc == nil || wc.Acknowledged()
}

// String implements the fmt.Stringer interface.
func (wc *WriteConcern) String() string {
	return bsoncore.Document(wc.marshal()).String()
}
