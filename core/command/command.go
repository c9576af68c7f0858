// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package command contains the logic that decides whether a read or write
// concern belongs in an outgoing command document and appends it when it
// does. A concern only appears on the wire when it changes behavior the
// server would otherwise apply: commands stay minimal and match the shapes
// the conformance fixtures assert.
package command

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/virushuo/mongo-go-concern/core/readconcern"
	"github.com/virushuo/mongo-go-concern/core/writeconcern"
)

// ResolveReadConcern decides whether the read concern requested for a single
// operation must be written into the command document being built for it.
//
// A nil requested concern means the operation inherits from its caller, the
// client, database, or collection the operation was issued against; nothing
// is appended because the caller's concern is already what the server will
// apply. If both the requested and the caller's concern are the server
// default, nothing is appended either. In every other case the requested
// concern is appended under "readConcern", replacing any element already
// present under that key. An explicitly constructed default concern with a
// non-default caller appends an empty subdocument, which is how "override
// the inherited concern back to the server default" is expressed.
//
// When cmd is nil and an append is required, a new document is created.
func ResolveReadConcern(requested, caller *readconcern.ReadConcern, cmd bsoncore.Document) (bsoncore.Document, error) {
	if requested == nil {
		return cmd, nil
	}
	if requested.IsDefault() && caller.IsDefault() {
		return cmd, nil
	}

	_, data, err := requested.MarshalBSONValue()
	if err != nil {
		return nil, err
	}

	return replaceElement(cmd, "readConcern", data)
}

// ResolveWriteConcern is the write concern counterpart of
// ResolveReadConcern, comparing whole-concern defaultness rather than a
// single level field and appending under "writeConcern".
func ResolveWriteConcern(requested, caller *writeconcern.WriteConcern, cmd bsoncore.Document) (bsoncore.Document, error) {
	if requested == nil {
		return cmd, nil
	}
	if requested.IsDefault() && caller.IsDefault() {
		return cmd, nil
	}

	_, data, err := requested.MarshalBSONValue()
	if err != nil {
		return nil, err
	}

	return replaceElement(cmd, "writeConcern", data)
}

// replaceElement rebuilds cmd with a subdocument element appended under key.
// An existing element with the same key is dropped, so the appended value
// wins regardless of what the base document carried.
func replaceElement(cmd bsoncore.Document, key string, sub []byte) (bsoncore.Document, error) {
	idx, dst := bsoncore.AppendDocumentStart(nil)

	if cmd != nil {
		elems, err := cmd.Elements()
		if err != nil {
			return nil, errors.Wrap(err, "unable to read options document")
		}
		for _, elem := range elems {
			if elem.Key() == key {
				continue
			}
			dst = bsoncore.AppendValueElement(dst, elem.Key(), elem.Value())
		}
	}

	dst = bsoncore.AppendDocumentElement(dst, key, sub)

	dst, err := bsoncore.AppendDocumentEnd(dst, idx)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to append %s", key)
	}

	return dst, nil
}
