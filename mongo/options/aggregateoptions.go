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

// AggregateOptions represents options that can be used to configure an Aggregate operation.
type AggregateOptions struct {
	// The read concern to attach to the aggregate command. The default value is nil, which means the command runs
	// under the read concern of the Collection it is issued against.
	ReadConcern *readconcern.ReadConcern

	// The write concern to attach to the aggregate command, applied when the pipeline writes through stages such
	// as $out or $merge. The default value is nil, which means the command runs under the write concern of the
	// Collection it is issued against.
	WriteConcern *writeconcern.WriteConcern
}

// Aggregate creates a new AggregateOptions instance.
func Aggregate() *AggregateOptions {
	return &AggregateOptions{}
}

// SetReadConcern sets the value for the ReadConcern field.
func (a *AggregateOptions) SetReadConcern(rc *readconcern.ReadConcern) *AggregateOptions {
	a.ReadConcern = rc
	return a
}

// SetWriteConcern sets the value for the WriteConcern field.
func (a *AggregateOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *AggregateOptions {
	a.WriteConcern = wc
	return a
}

// MergeAggregateOptions combines the given AggregateOptions instances into a single AggregateOptions
// in a last-one-wins fashion.
func MergeAggregateOptions(opts ...*AggregateOptions) *AggregateOptions {
	a := Aggregate()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.ReadConcern != nil {
			a.ReadConcern = opt.ReadConcern
		}
		if opt.WriteConcern != nil {
			a.WriteConcern = opt.WriteConcern
		}
	}

	return a
}
