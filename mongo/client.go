// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"github.com/virushuo/mongo-go-concern/core/connstring"
	"github.com/virushuo/mongo-go-concern/core/readconcern"
	"github.com/virushuo/mongo-go-concern/core/writeconcern"
	"github.com/virushuo/mongo-go-concern/mongo/options"
)

// Client is the root of the concern inheritance hierarchy. Its read and
// write concern come from the connection string or from explicit options,
// and every Database created from it starts out with a snapshot of them.
type Client struct {
	connString   connstring.ConnString
	readConcern  *readconcern.ReadConcern
	writeConcern *writeconcern.WriteConcern
}

// NewClient creates a new client for the cluster specified by the uri.
func NewClient(uri string, opts ...*options.ClientOptions) (*Client, error) {
	cs, err := connstring.Parse(uri)
	if err != nil {
		return nil, err
	}

	return NewClientFromConnString(cs, opts...)
}

// NewClientFromConnString creates a new client with configuration specified
// by the connection string. If the same option is configured in both the
// connection string and the manual options, the manual option wins.
func NewClientFromConnString(cs connstring.ConnString, opts ...*options.ClientOptions) (*Client, error) {
	clientOpt := options.MergeClientOptions(opts...)

	client := &Client{
		connString:   cs,
		readConcern:  clientOpt.ReadConcern,
		writeConcern: clientOpt.WriteConcern,
	}

	if client.readConcern == nil {
		client.readConcern = readConcernFromConnString(&cs)
	}
	if client.writeConcern == nil {
		wc, err := writeConcernFromConnString(&cs)
		if err != nil {
			return nil, err
		}
		client.writeConcern = wc
	}

	return client, nil
}

func readConcernFromConnString(cs *connstring.ConnString) *readconcern.ReadConcern {
	if len(cs.ReadConcernLevel) == 0 {
		return nil
	}

	return readconcern.New(readconcern.Level(cs.ReadConcernLevel))
}

func writeConcernFromConnString(cs *connstring.ConnString) (*writeconcern.WriteConcern, error) {
	var opts []writeconcern.Option

	if len(cs.WString) > 0 {
		opts = append(opts, writeconcern.WTagSet(cs.WString))
	} else if cs.WNumberSet {
		opts = append(opts, writeconcern.W(cs.WNumber))
	}

	if cs.JSet {
		opts = append(opts, writeconcern.J(cs.J))
	}

	if cs.WTimeoutSet {
		opts = append(opts, writeconcern.WTimeout(cs.WTimeout))
	}

	if len(opts) == 0 {
		return nil, nil
	}

	wc := writeconcern.New(opts...)
	if !wc.IsValid() {
		return nil, writeconcern.ErrInconsistent
	}

	return wc, nil
}

// ConnectionString returns the connection string of the cluster the client is connected to.
func (c *Client) ConnectionString() string {
	return c.connString.Original
}

// ReadConcern returns the read concern of the client, or nil if none is
// configured.
func (c *Client) ReadConcern() *readconcern.ReadConcern {
	return c.readConcern
}

// WriteConcern returns the write concern of the client, or nil if none is
// configured.
func (c *Client) WriteConcern() *writeconcern.WriteConcern {
	return c.writeConcern
}

// Database returns a handle for a given database.
func (c *Client) Database(name string, opts ...*options.DatabaseOptions) *Database {
	return newDatabase(c, name, opts...)
}
