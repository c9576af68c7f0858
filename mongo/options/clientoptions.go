// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/virushuo/mongo-go-concern/core/readconcern"
	"github.com/virushuo/mongo-go-concern/core/writeconcern"
)

// ClientOptions contains options to configure a Client instance.
type ClientOptions struct {
	// The read concern to use for operations executed on the Client. The default value is nil, which means that the
	// read concern from the connection string, if any, will be used.
	ReadConcern *readconcern.ReadConcern

	// The write concern to use for operations executed on the Client. The default value is nil, which means that the
	// write concern from the connection string, if any, will be used.
	WriteConcern *writeconcern.WriteConcern
}

// Client creates a new ClientOptions instance.
func Client() *ClientOptions {
	return &ClientOptions{}
}

// SetReadConcern sets the value for the ReadConcern field.
func (c *ClientOptions) SetReadConcern(rc *readconcern.ReadConcern) *ClientOptions {
	c.ReadConcern = rc
	return c
}

// SetWriteConcern sets the value for the WriteConcern field.
func (c *ClientOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *ClientOptions {
	c.WriteConcern = wc
	return c
}

// MergeClientOptions combines the given ClientOptions instances into a single ClientOptions
// in a last-one-wins fashion.
func MergeClientOptions(opts ...*ClientOptions) *ClientOptions {
	c := Client()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.ReadConcern != nil {
			c.ReadConcern = opt.ReadConcern
		}
		if opt.WriteConcern != nil {
			c.WriteConcern = opt.WriteConcern
		}
	}

	return c
}
