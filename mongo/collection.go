// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/virushuo/mongo-go-concern/core/command"
	"github.com/virushuo/mongo-go-concern/core/readconcern"
	"github.com/virushuo/mongo-go-concern/core/writeconcern"
	"github.com/virushuo/mongo-go-concern/mongo/options"
)

// Collection performs operations on a given collection.
//
// Like Database, a Collection stores its own effective concerns, copied from
// the database at construction time or overridden through CollectionOptions.
type Collection struct {
	client       *Client
	db           *Database
	name         string
	readConcern  *readconcern.ReadConcern
	writeConcern *writeconcern.WriteConcern
}

func newCollection(db *Database, name string, opts ...*options.CollectionOptions) *Collection {
	collOpt := options.MergeCollectionOptions(opts...)

	rc := db.readConcern
	if collOpt.ReadConcern != nil {
		rc = collOpt.ReadConcern
	}

	wc := db.writeConcern
	if collOpt.WriteConcern != nil {
		wc = collOpt.WriteConcern
	}

	return &Collection{
		client:       db.client,
		db:           db,
		name:         name,
		readConcern:  rc,
		writeConcern: wc,
	}
}

func (coll *Collection) copy() *Collection {
	return &Collection{
		client:       coll.client,
		db:           coll.db,
		name:         coll.name,
		readConcern:  coll.readConcern,
		writeConcern: coll.writeConcern,
	}
}

// Clone creates a copy of this collection with updated options, if any are given.
func (coll *Collection) Clone(opts ...*options.CollectionOptions) *Collection {
	copyColl := coll.copy()
	collOpt := options.MergeCollectionOptions(opts...)

	if collOpt.ReadConcern != nil {
		copyColl.readConcern = collOpt.ReadConcern
	}

	if collOpt.WriteConcern != nil {
		copyColl.writeConcern = collOpt.WriteConcern
	}

	return copyColl
}

// Name returns the name of the collection.
func (coll *Collection) Name() string {
	return coll.name
}

// Database returns the Database the collection was created from.
func (coll *Collection) Database() *Database {
	return coll.db
}

// Namespace returns the fully qualified namespace of the collection.
func (coll *Collection) Namespace() string {
	return coll.db.name + "." + coll.name
}

// ReadConcern returns the effective read concern of the collection.
func (coll *Collection) ReadConcern() *readconcern.ReadConcern {
	return coll.readConcern
}

// WriteConcern returns the effective write concern of the collection.
func (coll *Collection) WriteConcern() *writeconcern.WriteConcern {
	return coll.writeConcern
}

// AggregateDocument builds the aggregate command for the given pipeline.
// Aggregation both reads and, with stages such as $out and $merge, writes,
// so concerns of both kinds supplied through the options are resolved
// against the collection's.
func (coll *Collection) AggregateDocument(pipeline interface{}, opts ...*options.AggregateOptions) (bsoncore.Document, error) {
	aggOpt := options.MergeAggregateOptions(opts...)

	pipelineVal, err := transformValue(pipeline)
	if err != nil {
		return nil, err
	}

	idx, cmd := bsoncore.AppendDocumentStart(nil)
	cmd = bsoncore.AppendStringElement(cmd, "aggregate", coll.name)
	cmd = bsoncore.AppendValueElement(cmd, "pipeline", pipelineVal)
	cmd = bsoncore.AppendDocumentElement(cmd, "cursor", bsoncore.BuildDocument(nil, nil))
	cmd, err = bsoncore.AppendDocumentEnd(cmd, idx)
	if err != nil {
		return nil, err
	}

	doc, err := command.ResolveReadConcern(aggOpt.ReadConcern, coll.readConcern, cmd)
	if err != nil {
		return nil, err
	}

	return command.ResolveWriteConcern(aggOpt.WriteConcern, coll.writeConcern, doc)
}

// DropDocument builds the drop command for the collection, resolving the
// write concern against the collection's.
func (coll *Collection) DropDocument(opts ...*options.DropCollectionOptions) (bsoncore.Document, error) {
	dropOpt := options.MergeDropCollectionOptions(opts...)

	idx, cmd := bsoncore.AppendDocumentStart(nil)
	cmd = bsoncore.AppendStringElement(cmd, "drop", coll.name)
	cmd, err := bsoncore.AppendDocumentEnd(cmd, idx)
	if err != nil {
		return nil, err
	}

	return command.ResolveWriteConcern(dropOpt.WriteConcern, coll.writeConcern, cmd)
}
