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

// Database performs operations on a given database.
//
// A Database stores its own effective concerns, copied from the client at
// construction time. Replacing a concern on the client afterwards has no
// effect on databases that already exist.
type Database struct {
	client       *Client
	name         string
	readConcern  *readconcern.ReadConcern
	writeConcern *writeconcern.WriteConcern
}

func newDatabase(client *Client, name string, opts ...*options.DatabaseOptions) *Database {
	dbOpt := options.MergeDatabaseOptions(opts...)

	db := &Database{
		client:       client,
		name:         name,
		readConcern:  client.readConcern,
		writeConcern: client.writeConcern,
	}

	if dbOpt.ReadConcern != nil {
		db.readConcern = dbOpt.ReadConcern
	}
	if dbOpt.WriteConcern != nil {
		db.writeConcern = dbOpt.WriteConcern
	}

	return db
}

// Client returns the Client the database was created from.
func (db *Database) Client() *Client {
	return db.client
}

// Name returns the name of the database.
func (db *Database) Name() string {
	return db.name
}

// ReadConcern returns the effective read concern of the database.
func (db *Database) ReadConcern() *readconcern.ReadConcern {
	return db.readConcern
}

// WriteConcern returns the effective write concern of the database.
func (db *Database) WriteConcern() *writeconcern.WriteConcern {
	return db.writeConcern
}

// Collection gets a handle for a given collection in the database.
func (db *Database) Collection(name string, opts ...*options.CollectionOptions) *Collection {
	return newCollection(db, name, opts...)
}

// RunCommandDocument builds the command document for a generic command run
// against this database. Concerns supplied through the options are resolved
// against the database's effective concerns and appended only when they
// change what the server would do; a command run without explicit concerns
// is emitted exactly as given.
func (db *Database) RunCommandDocument(runCommand interface{}, opts ...*options.RunCmdOptions) (bsoncore.Document, error) {
	runCmdOpt := options.MergeRunCmdOptions(opts...)

	cmd, err := transformDocument(runCommand)
	if err != nil {
		return nil, err
	}

	cmd, err = command.ResolveReadConcern(runCmdOpt.ReadConcern, db.readConcern, cmd)
	if err != nil {
		return nil, err
	}

	return command.ResolveWriteConcern(runCmdOpt.WriteConcern, db.writeConcern, cmd)
}

// CreateCollectionDocument builds the create command for a new collection in
// this database, resolving the write concern against the database's.
func (db *Database) CreateCollectionDocument(name string, opts ...*options.CreateCollectionOptions) (bsoncore.Document, error) {
	createOpt := options.MergeCreateCollectionOptions(opts...)

	idx, cmd := bsoncore.AppendDocumentStart(nil)
	cmd = bsoncore.AppendStringElement(cmd, "create", name)
	cmd, err := bsoncore.AppendDocumentEnd(cmd, idx)
	if err != nil {
		return nil, err
	}

	return command.ResolveWriteConcern(createOpt.WriteConcern, db.writeConcern, cmd)
}
