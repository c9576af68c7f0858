// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package mongo models the client, database, and collection hierarchy along
// which read and write concerns are inherited, and builds the command
// documents that carry a concern when one must be sent. The package performs
// no I/O; dispatching the built documents belongs to a transport layer.
package mongo

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// ErrNilDocument is returned when a nil document is passed where one is
// required.
var ErrNilDocument = errors.New("document is nil")

// transformDocument turns the given value into a document. bsoncore and raw
// BSON values are used as-is; anything else goes through bson.Marshal.
func transformDocument(document interface{}) (bsoncore.Document, error) {
	switch t := document.(type) {
	case nil:
		return bsoncore.BuildDocument(nil, nil), nil
	case bsoncore.Document:
		return t, nil
	case bson.Raw:
		return bsoncore.Document(t), nil
	case []byte:
		return bsoncore.Document(t), nil
	default:
		b, err := bson.Marshal(document)
		if err != nil {
			return nil, errors.Wrap(err, "unable to transform document")
		}
		return b, nil
	}
}

// transformValue is like transformDocument but for values that are not
// top-level documents, such as an aggregation pipeline.
func transformValue(val interface{}) (bsoncore.Value, error) {
	if val == nil {
		return bsoncore.Value{}, ErrNilDocument
	}

	t, data, err := bson.MarshalValue(val)
	if err != nil {
		return bsoncore.Value{}, errors.Wrap(err, "unable to transform value")
	}

	return bsoncore.Value{Type: t, Data: data}, nil
}
