// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/virushuo/mongo-go-concern/core/writeconcern"
)

// DropCollectionOptions represents options that can be used to configure a Drop operation.
type DropCollectionOptions struct {
	// The write concern to attach to the drop command. The default value is nil, which means the command runs
	// under the write concern of the Collection it is issued against.
	WriteConcern *writeconcern.WriteConcern
}

// DropCollection creates a new DropCollectionOptions instance.
func DropCollection() *DropCollectionOptions {
	return &DropCollectionOptions{}
}

// SetWriteConcern sets the value for the WriteConcern field.
func (d *DropCollectionOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *DropCollectionOptions {
	d.WriteConcern = wc
	return d
}

// MergeDropCollectionOptions combines the given DropCollectionOptions instances into a single
// DropCollectionOptions in a last-one-wins fashion.
func MergeDropCollectionOptions(opts ...*DropCollectionOptions) *DropCollectionOptions {
	d := DropCollection()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.WriteConcern != nil {
			d.WriteConcern = opt.WriteConcern
		}
	}

	return d
}
