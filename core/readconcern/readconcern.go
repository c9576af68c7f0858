// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package readconcern defines read concerns for MongoDB operations.
//
// For more information about MongoDB read concerns, see
// https://www.mongodb.com/docs/manual/reference/read-concern/
package readconcern

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// ErrEmptyReadConcern indicates that a nil read concern was marshaled.
var ErrEmptyReadConcern = errors.New("empty read concern")

// ErrInvalidLevel indicates that a level string outside the known read
// concern levels was given to a validating constructor.
var ErrInvalidLevel = errors.New("invalid read concern level")

// The levels the server defines. Levels outside this set are accepted by
// the Level option for forward compatibility with future servers, but are
// rejected by NewFromLevel.
const (
	LevelLocal        = "local"
	LevelAvailable    = "available"
	LevelMajority     = "majority"
	LevelLinearizable = "linearizable"
	LevelSnapshot     = "snapshot"
)

// A ReadConcern defines a MongoDB read concern, which allows you to control the consistency and
// isolation properties of the data read from replica sets and replica set shards.
//
// A nil *ReadConcern means "no concern specified": operations inherit the
// concern of the object issuing them. A non-nil concern with no level is an
// explicit request for the server default.
//
// For more information about MongoDB read concerns, see
// https://www.mongodb.com/docs/manual/reference/read-concern/
type ReadConcern struct {
	level string
}

// Option is an option to provide when creating a ReadConcern.
type Option func(concern *ReadConcern)

// New constructs a new ReadConcern.
func New(options ...Option) *ReadConcern {
	concern := &ReadConcern{}

	for _, option := range options {
		option(concern)
	}

	return concern
}

// Level creates an option that sets the level of a ReadConcern. Any string is
// accepted so that levels added by future server versions can be used.
func Level(level string) Option {
	return func(concern *ReadConcern) {
		concern.level = level
	}
}

// NewFromLevel constructs a ReadConcern from a raw level string, such as one
// supplied by configuration. The string must be one of the levels the server
// defines.
func NewFromLevel(level string) (*ReadConcern, error) {
	switch level {
	case LevelLocal, LevelAvailable, LevelMajority, LevelLinearizable, LevelSnapshot:
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidLevel, level)
	}
	return New(Level(level)), nil
}

// FromDocument constructs a ReadConcern from a document with an optional
// "level" string element. A missing element produces a concern with no level.
// Level strings are not validated here; documents are the landing point for
// values parsed out of connection strings, which may name levels this package
// does not know about.
func FromDocument(doc bsoncore.Document) (*ReadConcern, error) {
	val, err := doc.LookupErr("level")
	if errors.Is(err, bsoncore.ErrElementNotFound) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}

	level, ok := val.StringValueOK()
	if !ok {
		return nil, fmt.Errorf("read concern \"level\" must be a string, but is a BSON %s", val.Type)
	}

	return New(Level(level)), nil
}

// Local returns a ReadConcern that requests data from the instance with no guarantee that the data
// has been written to a majority of the replica set members (i.e. may be rolled back).
//
// For more information about read concern "local", see
// https://www.mongodb.com/docs/manual/reference/read-concern-local/
func Local() *ReadConcern {
	return New(Level(LevelLocal))
}

// Available returns a ReadConcern that requests data from an instance with no guarantee that the
// data has been written to a majority of the replica set members (i.e. may be rolled back).
//
// For more information about read concern "available", see
// https://www.mongodb.com/docs/manual/reference/read-concern-available/
func Available() *ReadConcern {
	return New(Level(LevelAvailable))
}

// Majority returns a ReadConcern that requests data that has been acknowledged by a majority of the
// replica set members (i.e. the documents read are durable and guaranteed not to roll back).
//
// For more information about read concern "majority", see
// https://www.mongodb.com/docs/manual/reference/read-concern-majority/
func Majority() *ReadConcern {
	return New(Level(LevelMajority))
}

// Linearizable returns a ReadConcern that requests data that reflects all successful
// majority-acknowledged writes that completed prior to the start of the read operation.
//
// For more information about read concern "linearizable", see
// https://www.mongodb.com/docs/manual/reference/read-concern-linearizable/
func Linearizable() *ReadConcern {
	return New(Level(LevelLinearizable))
}

// Snapshot returns a ReadConcern that requests majority-committed data as it appears across shards
// from a specific single point in time in the recent past.
//
// For more information about read concern "snapshot", see
// https://www.mongodb.com/docs/manual/reference/read-concern-snapshot/
func Snapshot() *ReadConcern {
	return New(Level(LevelSnapshot))
}

// GetLevel returns the read concern level, or an empty string if no level is
// set.
func (rc *ReadConcern) GetLevel() string {
	if rc == nil {
		return ""
	}
	return rc.level
}

// IsDefault reports whether the read concern requests the server default,
// either because it is nil or because no level is set.
func (rc *ReadConcern) IsDefault() bool {
	return rc == nil || rc.level == ""
}

// Equal reports whether two read concerns have the same level. A nil concern
// compares equal to a concern with no level.
func (rc *ReadConcern) Equal(other *ReadConcern) bool {
	return rc.GetLevel() == other.GetLevel()
}

// MarshalBSONValue implements the bson.ValueMarshaler interface. A concern
// with no level marshals to an empty document, which is how an explicit
// request for the server default is expressed on the wire.
func (rc *ReadConcern) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if rc == nil {
		return 0, nil, ErrEmptyReadConcern
	}

	var elems []byte
	if len(rc.level) > 0 {
		elems = bsoncore.AppendStringElement(elems, "level", rc.level)
	}

	return bsontype.EmbeddedDocument, bsoncore.BuildDocument(nil, elems), nil
}

// String implements the fmt.Stringer interface.
func (rc *ReadConcern) String() string {
	if rc == nil || rc.level == "" {
		return "{}"
	}
	return fmt.Sprintf("{level: %q}", rc.level)
}
